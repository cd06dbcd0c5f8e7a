package service

import (
	"context"

	"freehost/internal/domain"
	"freehost/internal/dto"
)

type AuthService interface {
	// Register always creates a fresh user, even when the email is already
	// taken, and makes it the current session.
	Register(ctx context.Context, r dto.RegisterRequest) (*domain.User, error)
	// Login returns (nil, nil) when no user carries the email. Passwords are
	// never verified.
	Login(ctx context.Context, r dto.LoginRequest) (*domain.User, error)
	// GoogleLogin simulates the external OAuth round trip and resolves to the
	// canned demo account, marked Drive-connected.
	GoogleLogin(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
	// CurrentUser returns (nil, nil) when nobody is signed in.
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetGoogleConnection(ctx context.Context, userID string, connect bool) error
}
