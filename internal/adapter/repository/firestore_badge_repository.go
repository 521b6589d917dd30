package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreBadgeRepository struct {
	client *firestore.Client
}

func NewFirestoreBadgeRepository(client *firestore.Client) repository.BadgeRepository {
	return &firestoreBadgeRepository{
		client: client,
	}
}

func (r *firestoreBadgeRepository) Award(ctx context.Context, badge *entity.UserBadge) error {
	_, err := r.client.Collection("user_badges").Doc(badge.ID).Set(ctx, badge)
	return err
}

func (r *firestoreBadgeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserBadge, error) {
	iter := r.client.Collection("user_badges").Where("userID", "==", userID).Documents(ctx)

	var badges []*entity.UserBadge
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var badge entity.UserBadge
		if err := doc.DataTo(&badge); err != nil {
			return nil, err
		}
		badges = append(badges, &badge)
	}

	return badges, nil
}

func (r *firestoreBadgeRepository) HasBadge(ctx context.Context, userID, badgeName string) (bool, error) {
	iter := r.client.Collection("user_badges").
		Where("userID", "==", userID).
		Where("badgeName", "==", badgeName).
		Limit(1).
		Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
