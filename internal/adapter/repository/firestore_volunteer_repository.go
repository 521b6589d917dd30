package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreVolunteerRepository struct {
	client *firestore.Client
}

func NewFirestoreVolunteerRepository(client *firestore.Client) repository.VolunteerRepository {
	return &firestoreVolunteerRepository{
		client: client,
	}
}

func (r *firestoreVolunteerRepository) Create(ctx context.Context, volunteer *entity.Volunteer) error {
	_, err := r.client.Collection("volunteers").Doc(volunteer.ID).Set(ctx, volunteer)
	return err
}

func (r *firestoreVolunteerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Volunteer, int64, error) {
	query := r.client.Collection("volunteers").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var volunteers []*entity.Volunteer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var volunteer entity.Volunteer
		if err := doc.DataTo(&volunteer); err != nil {
			return nil, 0, err
		}
		volunteers = append(volunteers, &volunteer)
	}

	return volunteers, total, nil
}

func (r *firestoreVolunteerRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("volunteers").Where("userID", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
