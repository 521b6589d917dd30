package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

// statisticsDocID is the singleton aggregate row.
const statisticsDocID = "global"

type firestoreStatisticsRepository struct {
	client *firestore.Client
}

func NewFirestoreStatisticsRepository(client *firestore.Client) repository.StatisticsRepository {
	return &firestoreStatisticsRepository{
		client: client,
	}
}

func (r *firestoreStatisticsRepository) Get(ctx context.Context) (*entity.WetlandStatistics, error) {
	doc, err := r.client.Collection("wetland_statistics").Doc(statisticsDocID).Get(ctx)
	if err != nil {
		return nil, err
	}

	var stats entity.WetlandStatistics
	if err := doc.DataTo(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *firestoreStatisticsRepository) IncrementReportsSubmitted(ctx context.Context) (*entity.WetlandStatistics, error) {
	return r.increment(ctx, func(stats *entity.WetlandStatistics) {
		stats.ReportsSubmitted++
	})
}

func (r *firestoreStatisticsRepository) IncrementVolunteersEngaged(ctx context.Context) (*entity.WetlandStatistics, error) {
	return r.increment(ctx, func(stats *entity.WetlandStatistics) {
		stats.VolunteersEngaged++
	})
}

func (r *firestoreStatisticsRepository) increment(ctx context.Context, apply func(*entity.WetlandStatistics)) (*entity.WetlandStatistics, error) {
	docRef := r.client.Collection("wetland_statistics").Doc(statisticsDocID)

	var updated entity.WetlandStatistics
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var stats entity.WetlandStatistics

		doc, err := tx.Get(docRef)
		switch {
		case status.Code(err) == codes.NotFound:
			// First increment bootstraps the aggregate row.
			stats = entity.WetlandStatistics{ID: statisticsDocID}
		case err != nil:
			return err
		default:
			if err := doc.DataTo(&stats); err != nil {
				return err
			}
		}

		apply(&stats)
		stats.LastUpdated = time.Now()

		updated = stats
		return tx.Set(docRef, stats)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
