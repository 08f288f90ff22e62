package ports

import (
	"context"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
}

// AuthService defines the use-case operations of the auth gateway.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, uid string) error
	// CurrentUser returns the profile document for uid, fabricating it from
	// the identity record when the mirror is missing.
	CurrentUser(ctx context.Context, uid string) (*domain.UserProfile, error)
}
