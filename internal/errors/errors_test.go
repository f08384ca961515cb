package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("no tables on page 3")
	err := NewExtractionError("page extraction failed", cause)

	assert.Equal(t, ErrTypeExtraction, err.Type)
	assert.Contains(t, err.Error(), "EXTRACTION")
	assert.Contains(t, err.Error(), "no tables on page 3")
	assert.ErrorIs(t, err, cause)
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewParsingError("identity line malformed", nil)
	assert.Equal(t, "[PARSING] identity line malformed", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWithContext(t *testing.T) {
	err := NewCoercionError("cell not numeric", nil).
		WithContext("column", "Vault_Score").
		WithContext("row", 7)

	assert.Equal(t, "Vault_Score", err.Context["column"])
	assert.Equal(t, 7, err.Context["row"])
}

func TestIsType(t *testing.T) {
	err := NewValidationError("bad NOC", nil)
	wrapped := fmt.Errorf("record 4: %w", err)

	assert.True(t, IsType(wrapped, ErrTypeValidation))
	assert.False(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsType(errors.New("plain"), ErrTypeValidation))
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("run failed: %w", ErrNothingExtracted)
	assert.ErrorIs(t, err, ErrNothingExtracted)
	assert.NotErrorIs(t, err, ErrSourceUnreadable)
}
