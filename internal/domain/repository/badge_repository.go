package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type BadgeRepository interface {
	Award(ctx context.Context, badge *entity.UserBadge) error
	ListByUser(ctx context.Context, userID string) ([]*entity.UserBadge, error)
	HasBadge(ctx context.Context, userID, badgeName string) (bool, error)
}
