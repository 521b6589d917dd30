package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	apperrors "wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

type DriveUseCase struct {
	driveRepo repository.DriveRepository
}

func NewDriveUseCase(driveRepo repository.DriveRepository) *DriveUseCase {
	return &DriveUseCase{
		driveRepo: driveRepo,
	}
}

type CreateDriveInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
}

type DriveView struct {
	*entity.CommunityDrive
	Participants int64 `json:"participants"`
	Joined       bool  `json:"joined"`
}

func (uc *DriveUseCase) Create(ctx context.Context, creatorID string, input CreateDriveInput) (*entity.CommunityDrive, error) {
	drive := &entity.CommunityDrive{
		ID:          uuid.New().String(),
		CreatorID:   creatorID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		CreatedAt:   time.Now(),
	}

	if err := uc.driveRepo.Create(ctx, drive); err != nil {
		return nil, apperrors.Internal("Failed to create community drive", err)
	}

	return drive, nil
}

// List returns drives with participant counts. When userID is set, the
// caller's joined flag is resolved by first fetching the drives and then
// the caller's participation rows.
func (uc *DriveUseCase) List(ctx context.Context, userID string, limit, offset int) ([]*DriveView, int64, error) {
	drives, total, err := uc.driveRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list community drives", err)
	}

	joined := make(map[string]bool)
	if userID != "" {
		participations, err := uc.driveRepo.ListParticipationsByUser(ctx, userID)
		if err != nil {
			logger.Error("Failed to resolve joined drives for %s: %v", userID, err)
		} else {
			for _, p := range participations {
				joined[p.DriveID] = true
			}
		}
	}

	views := make([]*DriveView, 0, len(drives))
	for _, drive := range drives {
		count, err := uc.driveRepo.CountParticipants(ctx, drive.ID)
		if err != nil {
			logger.Warn("Failed to count participants for drive %s: %v", drive.ID, err)
		}
		views = append(views, &DriveView{
			CommunityDrive: drive,
			Participants:   count,
			Joined:         joined[drive.ID],
		})
	}

	return views, total, nil
}

// Join inserts the participation row. A duplicate (user, drive) pair is
// surfaced as a conflict, not a second row. The response carries the
// refreshed participant count.
func (uc *DriveUseCase) Join(ctx context.Context, userID, driveID string) (int64, error) {
	if _, err := uc.driveRepo.GetByID(ctx, driveID); err != nil {
		return 0, apperrors.NotFound("Community drive", err)
	}

	participant := &entity.DriveParticipant{
		ID:       uuid.New().String(),
		DriveID:  driveID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	if err := uc.driveRepo.AddParticipant(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrAlreadyParticipant) {
			return 0, apperrors.Conflict("Already joined this drive")
		}
		return 0, apperrors.Internal("Failed to join community drive", err)
	}

	return uc.participantCount(ctx, driveID), nil
}

// Leave removes exactly the (user, drive) row.
func (uc *DriveUseCase) Leave(ctx context.Context, userID, driveID string) (int64, error) {
	if err := uc.driveRepo.RemoveParticipant(ctx, userID, driveID); err != nil {
		return 0, apperrors.NotFound("Drive participation", err)
	}

	return uc.participantCount(ctx, driveID), nil
}

func (uc *DriveUseCase) participantCount(ctx context.Context, driveID string) int64 {
	count, err := uc.driveRepo.CountParticipants(ctx, driveID)
	if err != nil {
		logger.Warn("Failed to count participants for drive %s: %v", driveID, err)
	}
	return count
}
