package auth

import (
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(4))

	password := "s3cret-portfolio"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(4))

	first, err := hasher.Hash("same-input")
	require.NoError(t, err)
	second, err := hasher.Hash("same-input")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-input", first))
	assert.True(t, hasher.Check("same-input", second))
}

func TestBcryptHasher_InvalidDigest(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(4))

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-digest"))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	// Costs outside bcrypt's supported range fall back to the default.
	hasher := NewBcryptHasher(newTestHasherConfig(99))

	hash, err := hasher.Hash("still-works")
	require.NoError(t, err)
	assert.True(t, hasher.Check("still-works", hash))
}
