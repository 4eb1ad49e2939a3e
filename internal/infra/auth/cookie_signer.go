package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"secrets/config"
	"secrets/internal/domain/service"
	"secrets/internal/errors"
)

const (
	tokenTypeSession = "session"
	tokenTypeState   = "oauth_state"
)

// ErrInvalidCookie is returned for any cookie value that fails verification.
var ErrInvalidCookie = errors.New("invalid signed cookie")

// cookieClaims is the payload sealed into every signed cookie value.
type cookieClaims struct {
	Type  string `json:"typ"`
	State string `json:"state,omitempty"`
	jwt.RegisteredClaims
}

// jwtCookieSigner is a concrete implementation of the CookieSigner interface using HS256 JWTs.
type jwtCookieSigner struct {
	secret []byte
	now    func() time.Time
}

// NewCookieSigner is the constructor for jwtCookieSigner.
// It requires session.secret to be configured.
func NewCookieSigner(cfg *config.Config) (service.CookieSigner, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtCookieSigner{
		secret: []byte(cfg.Session.Secret),
		now:    time.Now,
	}, nil
}

// SignSession seals the session id as the token subject.
func (s *jwtCookieSigner) SignSession(sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	return s.sign(cookieClaims{
		Type: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
}

// VerifySession checks the signature, expiry and type, then parses the session id.
func (s *jwtCookieSigner) VerifySession(token string) (uuid.UUID, error) {
	claims, err := s.parse(token, tokenTypeSession)
	if err != nil {
		return uuid.Nil, err
	}

	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidCookie, "malformed session id")
	}

	return sessionID, nil
}

// SignState seals an OAuth state nonce for ttl.
func (s *jwtCookieSigner) SignState(state string, ttl time.Duration) (string, error) {
	now := s.now()

	return s.sign(cookieClaims{
		Type:  tokenTypeState,
		State: state,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
}

// VerifyState returns the sealed nonce.
func (s *jwtCookieSigner) VerifyState(token string) (string, error) {
	claims, err := s.parse(token, tokenTypeState)
	if err != nil {
		return "", err
	}
	if claims.State == "" {
		return "", errors.Wrap(ErrInvalidCookie, "empty state")
	}

	return claims.State, nil
}

func (s *jwtCookieSigner) sign(claims cookieClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign cookie")
	}

	return signed, nil
}

func (s *jwtCookieSigner) parse(token, tokenType string) (*cookieClaims, error) {
	if token == "" {
		return nil, ErrInvalidCookie
	}

	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidCookie, err.Error())
	}
	if claims.Type != tokenType {
		return nil, errors.Wrapf(ErrInvalidCookie, "unexpected token type %q", claims.Type)
	}

	return claims, nil
}
