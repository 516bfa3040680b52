package auth

import (
	"strings"
	"testing"

	"holocron/config"
	"holocron/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("use-the-force")
	require.NoError(t, err)
	assert.NotEqual(t, "use-the-force", hash)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("use-the-force")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("use-the-dark-side")))

	again, err := hasher.Hash("use-the-force")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("use-the-force")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_DefaultsAndClamping(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(&config.Config{}).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithCost(1).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithCost(99).(*bcryptHasher).cost)
}

func TestBcryptHasher_RejectsOverlongPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)

	// 25 three-byte runes pass a 72 character limit but not bcrypt's 72 byte one.
	_, err = hasher.Hash(strings.Repeat("ア", 25))
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
}
