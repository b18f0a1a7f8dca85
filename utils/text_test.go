package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSingleLine(t *testing.T) {
	assert.Equal(t, "De Storm", SanitizeSingleLine("  De Storm \n"))
	assert.Equal(t, "a b", SanitizeSingleLine("a\r\nb"))
	assert.Equal(t, "", SanitizeSingleLine(" \n\r "))
	assert.Equal(t, "unchanged", SanitizeSingleLine("unchanged"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abcdef", 3))
	assert.Equal(t, "abc", TruncateRunes("abc", 10))
	assert.Equal(t, "", TruncateRunes("abc", 0))
	// Cuts on rune boundaries, not bytes.
	assert.Equal(t, "héé", TruncateRunes("héééé", 3))
}
