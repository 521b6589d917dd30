package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *entity.Volunteer) error
	List(ctx context.Context, limit, offset int) ([]*entity.Volunteer, int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
