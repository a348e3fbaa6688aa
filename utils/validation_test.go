package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	n, ok := ParsePositiveInt(" 5 ")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	for _, bad := range []string{"0", "-3", "2.5", "abc", ""} {
		_, ok := ParsePositiveInt(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestParsePositiveFloat(t *testing.T) {
	f, ok := ParsePositiveFloat("3.5")
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)

	for _, bad := range []string{"0", "-1.5", "abc", ""} {
		_, ok := ParsePositiveFloat(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
