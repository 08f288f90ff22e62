package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
	"github.com/ibretsam/eCommerce-API/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements the auth gateway: registration, credential login,
// token verification, session revocation, and the profile mirror.
type AuthService struct {
	identity ports.IdentityProvider
	profiles ports.UserRepository
	logger   zerolog.Logger
}

func NewAuthService(identity ports.IdentityProvider, profiles ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{identity: identity, profiles: profiles, logger: logger}
}

// Register creates an identity record and mirrors a profile document for it.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewValidation("email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidation("email is not a valid address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.NewValidation("password must be at least 6 characters")
	}

	acct, err := s.identity.CreateAccount(ctx, ports.NewAccount{
		Email:       email,
		Password:    in.Password,
		DisplayName: in.DisplayName,
		PhoneNumber: in.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	profile := profileFromAccount(acct)
	if err := s.profiles.Insert(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("uid", acct.UID).Msg("failed to persist user profile")
		return nil, err
	}

	s.logger.Info().Str("uid", acct.UID).Msg("user registered")
	return profile, nil
}

// Login exchanges an email/password pair for a session token. The last-login
// timestamp is updated best-effort: a failure is logged, never surfaced.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	acct, err := s.identity.VerifyPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return "", err
	}

	token, err := s.identity.IssueToken(ctx, acct.UID)
	if err != nil {
		return "", err
	}

	if err := s.profiles.SetLastLogin(ctx, acct.UID, time.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Str("uid", acct.UID).Msg("failed to update last login")
	}

	return token, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domain.NewValidation("token is required")
	}
	return s.identity.VerifyToken(ctx, token)
}

// Logout revokes every outstanding session for the user.
func (s *AuthService) Logout(ctx context.Context, uid string) error {
	if uid == "" {
		return domain.NewValidation("user id is required")
	}
	if err := s.identity.RevokeTokens(ctx, uid); err != nil {
		return err
	}
	s.logger.Info().Str("uid", uid).Msg("sessions revoked")
	return nil
}

// CurrentUser returns the mirrored profile. When the mirror document is
// missing but the identity record exists, the profile is fabricated from the
// identity record and persisted before returning.
func (s *AuthService) CurrentUser(ctx context.Context, uid string) (*domain.UserProfile, error) {
	profile, err := s.profiles.FindByID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	acct, err := s.identity.Account(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	profile = profileFromAccount(acct)
	if err := s.profiles.Insert(ctx, profile); err != nil {
		// The fabricated profile is still valid; persisting it again next
		// time is fine.
		s.logger.Warn().Err(err).Str("uid", uid).Msg("failed to persist fabricated profile")
	} else {
		s.logger.Info().Str("uid", uid).Msg("profile fabricated from identity record")
	}

	return profile, nil
}

func profileFromAccount(acct *domain.Account) *domain.UserProfile {
	createdAt := acct.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return &domain.UserProfile{
		ID:          acct.UID,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		PhotoURL:    acct.PhotoURL,
		PhoneNumber: acct.PhoneNumber,
		IsActive:    !acct.Disabled,
		CreatedAt:   createdAt,
	}
}
