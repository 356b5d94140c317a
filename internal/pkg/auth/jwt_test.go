package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Storefront"},
		Session: config.SessionConfig{
			Secret:      "a-test-secret-that-is-long-enough-for-hs256",
			TokenExpiry: time.Hour,
		},
	}
}

func TestIssueAndValidate(t *testing.T) {
	m := NewSessionManager(testConfig())

	token, err := m.Issue("6f1c0f9e-1111-4d3c-9d59-3a1e2c0b7f00")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "6f1c0f9e-1111-4d3c-9d59-3a1e2c0b7f00", claims.SessionID)
	assert.Equal(t, TokenTypeSession, claims.TokenType)
	assert.Equal(t, "Storefront", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager(testConfig())
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue("expired")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewSessionManager(testConfig())
	token, err := issuer.Issue("abc")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Session.Secret = "a-completely-different-secret-of-some-length"
	_, err = NewSessionManager(cfg).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongTokenType(t *testing.T) {
	cfg := testConfig()
	m := NewSessionManager(cfg)

	claims := &Claims{
		SessionID: "abc",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.App.Name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewSessionManager(testConfig()).Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def", ExtractTokenFromHeader("Bearer abc.def"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
