package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	return err
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	return err
}

func (r *firestoreProfileRepository) SetUsername(ctx context.Context, id, username string) error {
	_, err := r.client.Collection("profiles").Doc(id).Set(ctx, map[string]interface{}{
		"username":  username,
		"onboarded": true,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	return err
}

func (r *firestoreProfileRepository) IncrementPoints(ctx context.Context, id string, amount int) (*entity.Profile, error) {
	docRef := r.client.Collection("profiles").Doc(id)

	var updated entity.Profile
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			return err
		}

		profile.Points += amount
		profile.Level = entity.LevelForPoints(profile.Points)
		profile.UpdatedAt = time.Now()

		updated = profile
		return tx.Set(docRef, profile)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
