package errors

import (
	"strings"
	"unicode"
)

// MaxIDLength is the longest block id accepted by ValidateID.
const MaxIDLength = 256

// ValidateID validates a block identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No leading or trailing whitespace
//   - Maximum length of MaxIDLength bytes
//
// Ids are otherwise opaque: they may reference blocks outside the current
// batch, so existence is never checked here.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "block id cannot be empty")
	}

	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidInput, "block id too long (max %d characters)", MaxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "block id %q contains invalid control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "block id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateIDs validates every id in ids and returns the first failure.
func ValidateIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}
