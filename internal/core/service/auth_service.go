package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/orders-api/internal/core/domain"
	"github.com/orderdesk/orders-api/internal/core/ports"
)

// PasswordHasher abstracts the keyed password hash.
type PasswordHasher interface {
	Hash(password string) (hash, salt []byte, err error)
	Verify(password string, hash, salt []byte) bool
}

// TokenIssuer abstracts bearer token minting.
type TokenIssuer interface {
	Issue(user *domain.User) (string, time.Time, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher PasswordHasher, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register stores a new identity and returns a token for it. The email is
// compared exactly as given.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		s.log.Warn().Str("email", email).Msg("registration rejected: email already exists")
		return nil, domain.ErrDuplicateEmail
	}

	hash, salt, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return s.authResult(created)
}

// Login verifies the credentials. An unknown email and a wrong password
// both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("email", email).Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash, user.PasswordSalt) {
		s.log.Warn().Str("email", email).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *AuthService) authResult(user *domain.User) (*ports.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{
		Token:     token,
		Email:     user.Email,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}
