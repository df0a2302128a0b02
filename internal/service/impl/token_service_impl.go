package impl

import (
	"errors"
	"time"

	"telemetry/internal/domain"
	"telemetry/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenConfig struct {
	Issuer     string
	Audience   string
	DefaultTTL time.Duration // applied when Issue gets ttl <= 0
	SigningKey []byte        // HS256 secret
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenServiceImpl issues self-contained HS256 session tokens. There is no
// refresh flow and no revocation list; rotating the signing key invalidates
// every outstanding token.
type TokenServiceImpl struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		cfg: cfg,
		now: func() time.Time { return time.Now().UTC() },
	}
}

var _ service.TokenService = (*TokenServiceImpl)(nil)

func (t *TokenServiceImpl) DefaultTTL() time.Duration { return t.cfg.DefaultTTL }

func (t *TokenServiceImpl) Issue(userID domain.UserID, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = t.cfg.DefaultTTL
	}
	now := t.now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

func (t *TokenServiceImpl) Verify(tokenStr string) (*service.Claims, error) {
	claims := &sessionClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !tok.Valid {
		return nil, domain.ErrTokenMalformed
	}
	// Issuer/audience checks kept explicit, as elsewhere in the codebase.
	if claims.Issuer != t.cfg.Issuer {
		return nil, domain.ErrTokenMalformed
	}
	if !containsAudience(claims.Audience, t.cfg.Audience) {
		return nil, domain.ErrTokenMalformed
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	return &service.Claims{UserID: userID, Email: claims.Email}, nil
}

func containsAudience(aud jwt.ClaimStrings, expected string) bool {
	for _, a := range aud {
		if a == expected {
			return true
		}
	}
	return false
}
