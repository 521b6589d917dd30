package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	reportRepo  repository.ReportRepository
	driveRepo   repository.DriveRepository
	badgeRepo   repository.BadgeRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	reportRepo repository.ReportRepository,
	driveRepo repository.DriveRepository,
	badgeRepo repository.BadgeRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		reportRepo:  reportRepo,
		driveRepo:   driveRepo,
		badgeRepo:   badgeRepo,
	}
}

type ProfileView struct {
	*entity.Profile
	NeedsSetup      bool `json:"needs_setup"`
	NextLevelPoints int  `json:"next_level_points"`
}

// Get returns the caller's profile. A fetch failure degrades to the
// zero-value profile rather than surfacing an error; profile-dependent UI
// shows fallback values.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) *ProfileView {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch profile %s: %v", userID, err)
		profile = &entity.Profile{
			ID:    userID,
			Level: entity.LevelForPoints(0),
		}
	}

	return &ProfileView{
		Profile:         profile,
		NeedsSetup:      profile.NeedsSetup(),
		NextLevelPoints: profile.Level * entity.PointsPerLevel,
	}
}

// SetUsername saves the username chosen in the first-login prompt and
// flips the onboarded flag.
func (uc *ProfileUseCase) SetUsername(ctx context.Context, userID, username string) (*ProfileView, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.BadRequest("Username must not be empty", nil)
	}

	if err := uc.profileRepo.SetUsername(ctx, userID, username); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}

	return uc.Get(ctx, userID), nil
}

// AwardPoints is the single point-awarding operation. The increment runs
// atomically in the store, so concurrent awards cannot lose an update.
func (uc *ProfileUseCase) AwardPoints(ctx context.Context, userID string, amount int, reason string) (*entity.Profile, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Award amount must be positive", nil)
	}

	profile, err := uc.profileRepo.IncrementPoints(ctx, userID, amount)
	if err != nil {
		return nil, errors.Internal("Failed to award points", err)
	}

	logger.Info("Awarded %d points to %s (%s), total now %d", amount, userID, reason, profile.Points)
	return profile, nil
}

// AwardBadgeOnce grants a named badge if the user does not hold it yet.
func (uc *ProfileUseCase) AwardBadgeOnce(ctx context.Context, userID, badgeName string) error {
	has, err := uc.badgeRepo.HasBadge(ctx, userID, badgeName)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	return uc.badgeRepo.Award(ctx, &entity.UserBadge{
		ID:        uuid.New().String(),
		UserID:    userID,
		BadgeName: badgeName,
		AwardedAt: time.Now(),
	})
}

func (uc *ProfileUseCase) Badges(ctx context.Context, userID string) ([]*entity.UserBadge, error) {
	badges, err := uc.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to list badges", err)
	}
	if badges == nil {
		badges = []*entity.UserBadge{}
	}
	return badges, nil
}

// Activity merges the user's submitted reports and joined drives into one
// feed sorted by date, newest first.
func (uc *ProfileUseCase) Activity(ctx context.Context, userID string) ([]entity.Activity, error) {
	reports, err := uc.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}

	participations, err := uc.driveRepo.ListParticipationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to list joined drives", err)
	}

	activities := make([]entity.Activity, 0, len(reports)+len(participations))

	for _, report := range reports {
		activities = append(activities, entity.Activity{
			Type:   "report",
			Title:  fmt.Sprintf("Reported an issue at %s", report.Location),
			Date:   report.CreatedAt,
			Points: PointsReportSubmission,
		})
	}

	for _, participation := range participations {
		title := "Joined a community drive"
		if drive, err := uc.driveRepo.GetByID(ctx, participation.DriveID); err == nil {
			title = fmt.Sprintf("Joined %s", drive.Title)
		}
		activities = append(activities, entity.Activity{
			Type:  "drive",
			Title: title,
			Date:  participation.JoinedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	return activities, nil
}
