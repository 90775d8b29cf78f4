package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		hash, err := HashPassword("secret-password")

		assert.NoError(t, err)
		assert.NotEqual(t, "secret-password", hash)
		assert.True(t, CheckPasswordHash("secret-password", hash))
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		hash, err := HashPassword("secret-password")

		assert.NoError(t, err)
		assert.False(t, CheckPasswordHash("other-password", hash))
	})
}

func TestSessionJWT(t *testing.T) {
	const secret = "test-jwt-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-id-123", secret, 1)
		assert.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-id-123", sessionID)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-id-123", secret, 1)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}

func TestGenerateMeetingRoomID(t *testing.T) {
	id := GenerateMeetingRoomID()

	assert.Len(t, id, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", id)

	other := GenerateMeetingRoomID()
	assert.NotEqual(t, id, other)
}
