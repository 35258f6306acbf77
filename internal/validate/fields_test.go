package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-events/internal/validate"
)

func TestIsNonEmpty(t *testing.T) {
	assert.True(t, validate.IsNonEmpty("x"))
	assert.True(t, validate.IsNonEmpty("  x  "))
	assert.False(t, validate.IsNonEmpty(""))
	assert.False(t, validate.IsNonEmpty("   "))
	assert.False(t, validate.IsNonEmpty("\t\n"))
}

func TestIsNonEmptySlice(t *testing.T) {
	assert.True(t, validate.IsNonEmptySlice([]string{"keynote"}))
	assert.True(t, validate.IsNonEmptySlice([]string{"a", "b"}))
	assert.False(t, validate.IsNonEmptySlice(nil))
	assert.False(t, validate.IsNonEmptySlice([]string{}))
	assert.False(t, validate.IsNonEmptySlice([]string{"a", " "}))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+c@sub.example.org",
		"foo@bar.co",
	}
	for _, email := range valid {
		assert.True(t, validate.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"missing@dot",
		"@example.com",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validate.IsValidEmail(email), email)
	}
}
