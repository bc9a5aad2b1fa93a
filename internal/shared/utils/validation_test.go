package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		required bool
		wantErr  bool
	}{
		{"instance key", "terminal-01ARZ3NDEKTSV4RRFFQ69G5FAV", true, false},
		{"underscore", "image_viewer", true, false},
		{"empty required", "", true, true},
		{"empty optional", "", false, false},
		{"path traversal", "../etc", true, true},
		{"space", "about me", true, true},
		{"too long", strings.Repeat("a", MaxIDLength+1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id, "id", tt.required)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStorageKey(t *testing.T) {
	assert.NoError(t, ValidateStorageKey("nooros_windows_v2"))
	assert.Error(t, ValidateStorageKey(""))
	assert.Error(t, ValidateStorageKey("Nooros"))
	assert.Error(t, ValidateStorageKey("a/b"))
	assert.Error(t, ValidateStorageKey(strings.Repeat("k", MaxStorageKeyLength+1)))
}

func TestValidateChatMessage(t *testing.T) {
	assert.NoError(t, ValidateChatMessage("hi"))
	assert.Error(t, ValidateChatMessage(""))
	assert.Error(t, ValidateChatMessage("a\x00b"))
}
