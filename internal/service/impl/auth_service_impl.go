package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"telemetry/internal/domain"
	"telemetry/internal/dto"
	"telemetry/internal/observability/metrics"
	"telemetry/internal/observability/middleware"
	"telemetry/internal/service"
	"telemetry/internal/store"
)

type AuthServiceImpl struct {
	store     *store.Store
	passwords service.PasswordService
	tokens    service.TokenService
}

func NewAuthServiceImpl(st *store.Store, passwords service.PasswordService, tokens service.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{store: st, passwords: passwords, tokens: tokens}
}

var _ service.AuthService = (*AuthServiceImpl)(nil)

func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*dto.TokenResponse, error) {
	result := "success"
	defer func() { metrics.AuthRegistrationsTotal.WithLabelValues(result).Inc() }()

	email, err := normalizeEmail(r.Email)
	if err != nil {
		result = "failure"
		return nil, err
	}
	if r.Password == "" {
		result = "failure"
		return nil, ErrEmptyPassword
	}

	// Hashing is the expensive step; keep it outside the transaction.
	digest, err := a.passwords.Hash(r.Password)
	if err != nil {
		result = "failure"
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		PasswordDigest: digest,
		CreatedAt:      time.Now().UTC(),
	}
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		if _, err := tx.Users().GetByEmail(ctx, email); err == nil {
			return domain.ErrEmailTaken
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			return err
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			// Racing registration of the same email loses on the unique index.
			if errors.Is(err, store.ErrDuplicateKey) {
				return domain.ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	token, err := a.tokens.Issue(user.ID, user.Email, 0)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("registered user",
		"user_id", user.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(a.tokens.DefaultTTL().Seconds()),
	}, nil
}

func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (*dto.TokenResponse, error) {
	result := "success"
	defer func() { metrics.AuthLoginsTotal.WithLabelValues(result).Inc() }()

	email, err := normalizeEmail(r.Email)
	if err != nil {
		result = "failure"
		return nil, err
	}
	if r.Password == "" {
		result = "failure"
		return nil, ErrEmptyPassword
	}

	user, err := a.store.Users().GetByEmail(ctx, email)
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			// Same error as a wrong password; callers cannot probe for accounts.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !a.passwords.Verify(r.Password, user.PasswordDigest) {
		result = "failure"
		return nil, domain.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID, user.Email, 0)
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("logged in user",
		"user_id", user.ID,
		"request_id", middleware.RequestIDFromContext(ctx),
	)
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(a.tokens.DefaultTTL().Seconds()),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrEmptyEmail
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}
	return email, nil
}
