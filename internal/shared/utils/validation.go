package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxIDLength          = 128
	MaxStorageKeyLength  = 64
	MaxChatMessageLength = 16 * 1024
	MaxChatMessages      = 50
)

var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// StorageKeyPattern restricts persisted slot names so they are safe file names
	StorageKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateStorageKey validates a persistence slot name
func ValidateStorageKey(key string) error {
	if err := ValidateString(key, "key", 1, MaxStorageKeyLength, true); err != nil {
		return err
	}
	if !StorageKeyPattern.MatchString(key) {
		return fmt.Errorf("key %q contains invalid characters (only lowercase alphanumeric and underscores allowed)", key)
	}
	return nil
}

// ValidateChatMessage validates a single chat turn
func ValidateChatMessage(message string) error {
	return ValidateString(message, "message", 1, MaxChatMessageLength, true)
}
