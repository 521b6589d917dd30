package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

type VolunteerUseCase struct {
	volunteerRepo repository.VolunteerRepository
	profileUC     *ProfileUseCase
	statsUC       *StatisticsUseCase
}

func NewVolunteerUseCase(
	volunteerRepo repository.VolunteerRepository,
	profileUC *ProfileUseCase,
	statsUC *StatisticsUseCase,
) *VolunteerUseCase {
	return &VolunteerUseCase{
		volunteerRepo: volunteerRepo,
		profileUC:     profileUC,
		statsUC:       statsUC,
	}
}

type RegisterVolunteerInput struct {
	Name         string
	Email        string
	Expertise    string
	Availability string
	Location     string
	Bio          string
}

type RegisterVolunteerResult struct {
	Volunteer *entity.Volunteer `json:"volunteer"`
	Profile   *entity.Profile   `json:"profile,omitempty"`
}

// Register inserts a volunteer entry. Signed-in users get the row attached
// to their identity plus the fixed point award; anonymous registration is
// allowed and a user may register multiple entries.
func (uc *VolunteerUseCase) Register(ctx context.Context, userID string, input RegisterVolunteerInput) (*RegisterVolunteerResult, error) {
	volunteer := &entity.Volunteer{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         input.Name,
		Email:        input.Email,
		Expertise:    input.Expertise,
		Availability: input.Availability,
		Location:     input.Location,
		Bio:          input.Bio,
		CreatedAt:    time.Now(),
	}

	if err := uc.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, errors.Internal("Failed to register volunteer", err)
	}

	result := &RegisterVolunteerResult{Volunteer: volunteer}

	if userID != "" {
		profile, err := uc.profileUC.AwardPoints(ctx, userID, PointsVolunteerRegistration, "volunteer_registration")
		if err != nil {
			logger.Error("Volunteer registered but point award failed for %s: %v", userID, err)
		} else {
			result.Profile = profile
		}

		if err := uc.profileUC.AwardBadgeOnce(ctx, userID, entity.BadgeHelpingHand); err != nil {
			logger.Warn("Failed to award badge to %s: %v", userID, err)
		}
	}

	uc.statsUC.RecordVolunteerEngaged(ctx)

	return result, nil
}

func (uc *VolunteerUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Volunteer, int64, error) {
	volunteers, total, err := uc.volunteerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list volunteers", err)
	}
	if volunteers == nil {
		volunteers = []*entity.Volunteer{}
	}
	return volunteers, total, nil
}
