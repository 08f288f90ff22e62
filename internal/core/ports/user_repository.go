package ports

import (
	"context"
	"time"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// UserRepository defines persistence operations for mirrored user profiles,
// keyed by the identity provider uid.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.UserProfile) error
	FindByID(ctx context.Context, uid string) (*domain.UserProfile, error)
	SetLastLogin(ctx context.Context, uid string, at time.Time) error
}
