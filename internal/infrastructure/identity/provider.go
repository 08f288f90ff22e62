// Package identity implements the identity-provider capability: credential
// records hashed with bcrypt, HS256 session tokens, and epoch-based session
// revocation.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

// AccountRepository is the persistence the provider needs for credential
// records.
type AccountRepository interface {
	Insert(ctx context.Context, a *domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByUID(ctx context.Context, uid string) (*domain.Account, error)
}

// RevocationStore tracks per-user revocation epochs. Tokens issued at or
// before the epoch are rejected.
type RevocationStore interface {
	Revoke(ctx context.Context, uid string, at time.Time) error
	RevokedAfter(ctx context.Context, uid string) (time.Time, error)
}

// Config holds token issuance settings.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Provider implements ports.IdentityProvider.
type Provider struct {
	accounts AccountRepository
	revoked  RevocationStore
	secret   []byte
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

func NewProvider(accounts AccountRepository, revoked RevocationStore, cfg Config) *Provider {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Provider{
		accounts: accounts,
		revoked:  revoked,
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (p *Provider) CreateAccount(ctx context.Context, in ports.NewAccount) (*domain.Account, error) {
	if _, err := p.accounts.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &domain.Account{
		UID:          newUID(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		PhoneNumber:  in.PhoneNumber,
		CreatedAt:    p.now().UTC(),
	}

	// The unique email index catches the race between the probe above and
	// this insert.
	if err := p.accounts.Insert(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

func (p *Provider) VerifyPassword(ctx context.Context, email, password string) (*domain.Account, error) {
	acct, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if acct.Disabled {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return acct, nil
}

func (p *Provider) Account(ctx context.Context, uid string) (*domain.Account, error) {
	return p.accounts.FindByUID(ctx, uid)
}

func (p *Provider) IssueToken(_ context.Context, uid string) (string, error) {
	now := p.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (p *Provider) VerifyToken(ctx context.Context, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}

	epoch, err := p.revoked.RevokedAfter(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	if !epoch.IsZero() && claims.IssuedAt != nil && !claims.IssuedAt.Time.After(epoch) {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}

func (p *Provider) RevokeTokens(ctx context.Context, uid string) error {
	return p.revoked.Revoke(ctx, uid, p.now().UTC())
}

// newUID returns a random 28-character hex user id.
func newUID() string {
	b := make([]byte, 14)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%028x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
