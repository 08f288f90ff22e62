package ports

import (
	"context"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// NewAccount carries the data needed to create an identity record.
type NewAccount struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
}

// IdentityProvider is the capability interface over the external identity
// service: account records plus token issue/verify/revoke by user id. Any
// token-auth provider satisfies the contract.
type IdentityProvider interface {
	// CreateAccount registers a new identity record. Returns
	// domain.ErrEmailExists when the email is already taken.
	CreateAccount(ctx context.Context, in NewAccount) (*domain.Account, error)
	// VerifyPassword checks a credential pair. Returns
	// domain.ErrInvalidCredentials on unknown email, bad password, or a
	// disabled account.
	VerifyPassword(ctx context.Context, email, password string) (*domain.Account, error)
	Account(ctx context.Context, uid string) (*domain.Account, error)
	IssueToken(ctx context.Context, uid string) (string, error)
	// VerifyToken returns the uid the token was issued for, or
	// domain.ErrTokenInvalid.
	VerifyToken(ctx context.Context, token string) (string, error)
	// RevokeTokens invalidates every token issued to uid before now.
	RevokeTokens(ctx context.Context, uid string) error
}
