package usecase

import (
	"context"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/internal/infrastructure/realtime"
	"wetlandwarden/pkg/logger"
)

type StatisticsUseCase struct {
	statsRepo repository.StatisticsRepository
	publisher ChangePublisher
}

func NewStatisticsUseCase(statsRepo repository.StatisticsRepository, publisher ChangePublisher) *StatisticsUseCase {
	return &StatisticsUseCase{
		statsRepo: statsRepo,
		publisher: publisher,
	}
}

// Get returns the singleton aggregate row, degrading to zeros when the
// fetch fails.
func (uc *StatisticsUseCase) Get(ctx context.Context) *entity.WetlandStatistics {
	stats, err := uc.statsRepo.Get(ctx)
	if err != nil {
		logger.Error("Failed to fetch wetland statistics: %v", err)
		return &entity.WetlandStatistics{}
	}
	return stats
}

// RecordReportSubmitted bumps the reports counter and pushes the updated
// aggregate to live subscribers. Failures are logged only; the caller's
// write path already succeeded.
func (uc *StatisticsUseCase) RecordReportSubmitted(ctx context.Context) {
	stats, err := uc.statsRepo.IncrementReportsSubmitted(ctx)
	if err != nil {
		logger.Error("Failed to increment reports_submitted: %v", err)
		return
	}
	uc.publisher.Publish(realtime.Event{
		Topic:  realtime.TopicWetlandStatistics,
		Action: realtime.ActionUpdate,
		Data:   stats,
	})
}

// RecordVolunteerEngaged bumps the volunteers counter and pushes the
// updated aggregate to live subscribers.
func (uc *StatisticsUseCase) RecordVolunteerEngaged(ctx context.Context) {
	stats, err := uc.statsRepo.IncrementVolunteersEngaged(ctx)
	if err != nil {
		logger.Error("Failed to increment volunteers_engaged: %v", err)
		return
	}
	uc.publisher.Publish(realtime.Event{
		Topic:  realtime.TopicWetlandStatistics,
		Action: realtime.ActionUpdate,
		Data:   stats,
	})
}
