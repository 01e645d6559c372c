// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/quotevault/internal/config"
	"github.com/carterperez-dev/quotevault/internal/core"
	"github.com/carterperez-dev/quotevault/internal/middleware"
)

// TokenService issues and verifies HS256-signed session tokens carrying
// {userId, role}. It is stateless: nothing is persisted and verification
// never consults the store.
type TokenService struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenService{
		key:    key,
		config: cfg,
	}, nil
}

func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(s.config.Issuer).
		Audience([]string{s.config.Audience}).
		Subject(userID).
		IssuedAt(now).
		Expiration(now.Add(s.config.TokenExpire)).
		NotBefore(now).
		Claim("role", role).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

func (s *TokenService) Verify(
	ctx context.Context,
	tokenString string,
) (*middleware.Claims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), s.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var roleStr string
	if err := token.Get("role", &roleStr); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.Claims{
		UserID: subject,
		Role:   roleStr,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

var _ middleware.TokenVerifier = (*TokenService)(nil)
