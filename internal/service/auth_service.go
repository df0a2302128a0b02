package service

import (
	"context"

	"telemetry/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, r dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, r dto.LoginRequest) (*dto.TokenResponse, error)
}
