package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("dispatch123", bcrypt.MinCost)
	require.NoError(t, err)

	v := BcryptVerifier{}
	assert.True(t, v.Verify(hash, "dispatch123"))
	assert.False(t, v.Verify(hash, "wrong"))
	assert.False(t, v.Verify("not-a-hash", "dispatch123"))
}
