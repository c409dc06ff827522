package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPhone(t *testing.T) {
	h := HashPhone("+33612345678")
	assert.True(t, strings.HasPrefix(h, "sha256:"))
	assert.Equal(t, h, HashPhone("+33612345678"), "hashing is deterministic")
	assert.Equal(t, h, HashPhone(" +33612345678 "), "whitespace is normalized")
	assert.NotEqual(t, h, HashPhone("+33612345679"))
}

func TestHashPhone_PassesThroughHashedInput(t *testing.T) {
	h := HashPhone("+33612345678")
	assert.Equal(t, h, HashPhone(h))
}

func TestGenerateSecureCode(t *testing.T) {
	a, err := GenerateSecureCode()
	assert.NoError(t, err)
	b, err := GenerateSecureCode()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
