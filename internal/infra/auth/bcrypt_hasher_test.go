package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("garden-shed-42")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "garden-shed-42", hash)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("garden-shed-42")
	assert.NoError(t, err)

	assert.True(t, hasher.Check("garden-shed-42", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("garden-shed-42", "not-a-bcrypt-hash"))
}
