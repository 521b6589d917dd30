package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.WetlandReport) error {
	_, err := r.client.Collection("wetland_reports").Doc(report.ID).Set(ctx, report)
	return err
}

func (r *firestoreReportRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WetlandReport, error) {
	iter := r.client.Collection("wetland_reports").
		Where("userID", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var reports []*entity.WetlandReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var report entity.WetlandReport
		if err := doc.DataTo(&report); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}

	return reports, nil
}

func (r *firestoreReportRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("wetland_reports").Where("userID", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
