package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type StatisticsRepository interface {
	Get(ctx context.Context) (*entity.WetlandStatistics, error)
	// The increments run inside a store transaction and return the updated
	// aggregate for broadcasting to live subscribers.
	IncrementReportsSubmitted(ctx context.Context) (*entity.WetlandStatistics, error)
	IncrementVolunteersEngaged(ctx context.Context) (*entity.WetlandStatistics, error)
}
