// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("driver@example.com"))
	assert.True(t, IsValidEmail("nome.sobrenome+tag@sub.dominio.br"))
	assert.False(t, IsValidEmail("driver@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Abc123"))
	assert.True(t, IsValidPassword("senha#1"))
	assert.False(t, IsValidPassword("abc12"))    // too short
	assert.False(t, IsValidPassword("abcdefgh")) // single character type
	assert.False(t, IsValidPassword("abc123"))   // only two types
}
