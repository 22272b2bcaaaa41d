package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("s3cret!", hash)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	assert.NoError(t, err)

	ok, err := VerifyPassword("autre-mot-de-passe", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsEachHash(t *testing.T) {
	h1, err := HashPassword("s3cret!")
	assert.NoError(t, err)
	h2, err := HashPassword("s3cret!")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	_, err := VerifyPassword("s3cret!", "pas-un-hash")
	assert.Error(t, err)
}
