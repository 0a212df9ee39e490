package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-testing-only-32b!", 15, 1440)
}

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("42", "budi")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "access", claims.TokenUse)
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("42")
	assert.NoError(t, err)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "refresh", claims.TokenUse)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("a-completely-different-secret-key!!!", 15, 1440)

	token, err := m.GenerateAccessToken("42", "budi")
	assert.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	m := NewManager("test-secret-key-for-testing-only-32b!", -1, 1440)

	token, err := m.GenerateAccessToken("42", "budi")
	assert.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	m := newTestManager()

	_, err := m.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
