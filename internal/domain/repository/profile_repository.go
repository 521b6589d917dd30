package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	// SetUsername stores the username and flips the onboarded flag on the
	// first successful save.
	SetUsername(ctx context.Context, id, username string) error
	// IncrementPoints atomically adds amount to the point total and
	// recomputes the level inside a store transaction, returning the
	// updated profile.
	IncrementPoints(ctx context.Context, id string, amount int) (*entity.Profile, error)
}
