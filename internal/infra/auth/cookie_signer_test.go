package auth

import (
	"testing"
	"time"

	"secrets/config"
	"secrets/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string) *jwtCookieSigner {
	t.Helper()
	signer, err := NewCookieSigner(&config.Config{Session: &config.SessionConfig{Secret: secret}})
	require.NoError(t, err)

	return signer.(*jwtCookieSigner)
}

func TestNewCookieSigner_RequiresSecret(t *testing.T) {
	_, err := NewCookieSigner(&config.Config{})
	assert.Error(t, err)

	_, err = NewCookieSigner(&config.Config{Session: &config.SessionConfig{}})
	assert.Error(t, err)
}

func TestCookieSigner_SessionRoundTrip(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")
	sessionID := uuid.New()

	token, err := signer.SignSession(sessionID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	got, err := signer.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestCookieSigner_RejectsTamperedToken(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")
	token, err := signer.SignSession(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	other := newTestSigner(t, "another-secret")
	_, err = other.VerifySession(token)
	assert.True(t, errors.Is(err, ErrInvalidCookie))

	_, err = signer.VerifySession(token + "x")
	assert.True(t, errors.Is(err, ErrInvalidCookie))

	_, err = signer.VerifySession("")
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestCookieSigner_RejectsExpiredSession(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")
	token, err := signer.SignSession(uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = signer.VerifySession(token)
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestCookieSigner_RejectsForeignAlgorithm(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")
	claims := cookieClaims{
		Type: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = signer.VerifySession(token)
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestCookieSigner_StateRoundTrip(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")

	token, err := signer.SignState("nonce-123", 5*time.Minute)
	require.NoError(t, err)

	state, err := signer.VerifyState(token)
	require.NoError(t, err)
	assert.Equal(t, "nonce-123", state)
}

func TestCookieSigner_TokenTypesAreNotInterchangeable(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")

	stateToken, err := signer.SignState("nonce", time.Minute)
	require.NoError(t, err)
	_, err = signer.VerifySession(stateToken)
	assert.True(t, errors.Is(err, ErrInvalidCookie))

	sessionToken, err := signer.SignSession(uuid.New(), time.Now().Add(time.Minute))
	require.NoError(t, err)
	_, err = signer.VerifyState(sessionToken)
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}

func TestCookieSigner_StateExpires(t *testing.T) {
	signer := newTestSigner(t, "s3cr3t")
	now := time.Now()
	signer.now = func() time.Time { return now }

	token, err := signer.SignState("nonce", time.Minute)
	require.NoError(t, err)

	signer.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = signer.VerifyState(token)
	assert.True(t, errors.Is(err, ErrInvalidCookie))
}
