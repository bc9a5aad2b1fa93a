package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nooros/backend/internal/shared/types"
)

func TestTouchTapBelowThreshold(t *testing.T) {
	p := NewPress(types.AppAbout, PointerTouch, types.Point{X: 100, Y: 100})

	assert.Equal(t, types.Point{}, p.Move(types.Point{X: 102, Y: 101}))
	assert.Equal(t, types.Point{}, p.Move(types.Point{X: 103, Y: 102}))
	assert.Equal(t, 5, p.Travel())
	assert.True(t, p.IsTap())
}

func TestTouchDragPastThreshold(t *testing.T) {
	p := NewPress(types.AppAbout, PointerPen, types.Point{X: 0, Y: 0})

	assert.Equal(t, types.Point{}, p.Move(types.Point{X: 3, Y: 0}))
	assert.Equal(t, types.Point{X: 7, Y: 0}, p.Move(types.Point{X: 7, Y: 0}), "held movement is flushed")
	assert.Equal(t, types.Point{X: 1, Y: 2}, p.Move(types.Point{X: 8, Y: 2}))
	assert.False(t, p.IsTap())
}

func TestMouseNeverTaps(t *testing.T) {
	p := NewPress(types.AppAbout, PointerMouse, types.Point{X: 0, Y: 0})

	assert.Equal(t, types.Point{X: 1, Y: 0}, p.Move(types.Point{X: 1, Y: 0}))
	assert.False(t, p.IsTap())
}

func TestParsePointerType(t *testing.T) {
	tests := []struct {
		in      string
		want    PointerType
		wantErr bool
	}{
		{"", PointerMouse, false},
		{"touch", PointerTouch, false},
		{"pen", PointerPen, false},
		{"stylus", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePointerType(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
