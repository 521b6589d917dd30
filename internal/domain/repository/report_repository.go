package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.WetlandReport) error
	ListByUser(ctx context.Context, userID string) ([]*entity.WetlandReport, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
