package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository persists the mirrored user profiles. The document key is the
// identity provider uid.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID          string     `bson:"_id"`
	Email       string     `bson:"email"`
	DisplayName string     `bson:"display_name,omitempty"`
	PhotoURL    string     `bson:"photo_url,omitempty"`
	PhoneNumber string     `bson:"phone_number,omitempty"`
	IsActive    bool       `bson:"is_active"`
	CreatedAt   time.Time  `bson:"created_at"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty"`
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Profile already mirrored; not an error for callers.
			return nil
		}
		return fmt.Errorf("insert user profile: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, uid string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user profile: %w", err)
	}

	return &domain.UserProfile{
		ID:          doc.ID,
		Email:       doc.Email,
		DisplayName: doc.DisplayName,
		PhotoURL:    doc.PhotoURL,
		PhoneNumber: doc.PhoneNumber,
		IsActive:    doc.IsActive,
		CreatedAt:   doc.CreatedAt,
		LastLoginAt: doc.LastLoginAt,
	}, nil
}

func (r *UserRepository) SetLastLogin(ctx context.Context, uid string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, uid, bson.M{"$set": bson.M{"last_login_at": at}})
	if err != nil {
		return fmt.Errorf("set last login: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
