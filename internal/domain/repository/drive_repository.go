package repository

import (
	"context"
	"errors"

	"wetlandwarden/internal/domain/entity"
)

// ErrAlreadyParticipant is returned when the store rejects a duplicate
// (user, drive) participation row.
var ErrAlreadyParticipant = errors.New("participation row already exists")

type DriveRepository interface {
	Create(ctx context.Context, drive *entity.CommunityDrive) error
	GetByID(ctx context.Context, id string) (*entity.CommunityDrive, error)
	List(ctx context.Context, limit, offset int) ([]*entity.CommunityDrive, int64, error)
	ListByCreator(ctx context.Context, userID string) ([]*entity.CommunityDrive, error)

	AddParticipant(ctx context.Context, participant *entity.DriveParticipant) error
	// RemoveParticipant deletes exactly the (user, drive) row; missing row
	// is an error.
	RemoveParticipant(ctx context.Context, userID, driveID string) error
	GetParticipant(ctx context.Context, userID, driveID string) (*entity.DriveParticipant, error)
	ListParticipationsByUser(ctx context.Context, userID string) ([]*entity.DriveParticipant, error)
	CountParticipants(ctx context.Context, driveID string) (int64, error)
}
