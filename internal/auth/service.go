// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/quotevault/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

type UserInfo struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, username, passwordHash string) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	users  UserProvider
	tokens *TokenService
}

func NewService(users UserProvider, tokens *TokenService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new identity. Duplicate usernames surface as
// ErrUsernameExists with no store mutation; uniqueness is enforced by the
// database constraint rather than a racy check-then-insert.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, req.Username, passwordHash); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return ErrUsernameExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// still burn a hash verification so response timing does not reveal
// whether an account exists.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing equalization only
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return "", ErrInvalidCredentials
	}

	if newHash != "" {
		// Opportunistic upgrade of hashes produced under older parameters;
		// login already succeeded, so a failure here is not surfaced.
		//nolint:errcheck
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

func (s *Service) CurrentUser(
	ctx context.Context,
	userID string,
) (*UserInfo, error) {
	if userID == "" {
		return nil, fmt.Errorf("current user: %w", core.ErrUnauthorized)
	}

	return s.users.GetByID(ctx, userID)
}
