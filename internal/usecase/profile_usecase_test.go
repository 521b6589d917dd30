package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetlandwarden/internal/domain/entity"
	apperrors "wetlandwarden/pkg/errors"
)

func TestAwardPointsUpdatesLevel(t *testing.T) {
	uc, profileRepo, _ := newTestProfileUseCase()
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1", Points: 90, Level: 1}

	profile, err := uc.AwardPoints(context.Background(), "u1", 200, "report_submission")
	require.NoError(t, err)

	assert.Equal(t, 290, profile.Points)
	assert.Equal(t, 3, profile.Level)
}

func TestAwardPointsRejectsNonPositive(t *testing.T) {
	uc, profileRepo, _ := newTestProfileUseCase()
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1"}

	_, err := uc.AwardPoints(context.Background(), "u1", 0, "nothing")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.AwardPoints(context.Background(), "u1", -5, "nothing")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestSetUsernameFlipsOnboarded(t *testing.T) {
	uc, profileRepo, _ := newTestProfileUseCase()
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1", Onboarded: false}

	view, err := uc.SetUsername(context.Background(), "u1", "  marsh_fan  ")
	require.NoError(t, err)

	assert.Equal(t, "marsh_fan", view.Username)
	assert.True(t, view.Onboarded)
	assert.False(t, view.NeedsSetup)
}

func TestSetUsernameRejectsEmpty(t *testing.T) {
	uc, _, _ := newTestProfileUseCase()

	_, err := uc.SetUsername(context.Background(), "u1", "   ")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestGetDegradesToZeroProfile(t *testing.T) {
	uc, profileRepo, _ := newTestProfileUseCase()
	profileRepo.failGet = true

	view := uc.Get(context.Background(), "u1")

	assert.Equal(t, "u1", view.ID)
	assert.Equal(t, 0, view.Points)
	assert.Equal(t, 1, view.Level)
	assert.True(t, view.NeedsSetup)
}

func TestGetReportsNextLevelPoints(t *testing.T) {
	uc, profileRepo, _ := newTestProfileUseCase()
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1", Points: 150, Level: 2, Onboarded: true}

	view := uc.Get(context.Background(), "u1")

	assert.Equal(t, 200, view.NextLevelPoints)
}

func TestAwardBadgeOnceIsIdempotent(t *testing.T) {
	uc, _, badgeRepo := newTestProfileUseCase()
	ctx := context.Background()

	require.NoError(t, uc.AwardBadgeOnce(ctx, "u1", entity.BadgeQuizMaster))
	require.NoError(t, uc.AwardBadgeOnce(ctx, "u1", entity.BadgeQuizMaster))

	badges, err := uc.Badges(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, entity.BadgeQuizMaster, badges[0].BadgeName)
	assert.Len(t, badgeRepo.badges, 1)
}

func TestActivityMergesNewestFirst(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	reportRepo := &fakeReportRepo{}
	driveRepo := newFakeDriveRepo()
	uc := NewProfileUseCase(profileRepo, reportRepo, driveRepo, &fakeBadgeRepo{})
	ctx := context.Background()

	driveRepo.drives["d1"] = &entity.CommunityDrive{ID: "d1", Title: "Mangrove Cleanup"}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reportRepo.reports = append(reportRepo.reports, &entity.WetlandReport{
		UserID:    "u1",
		Location:  "North Marsh",
		Pollution: true,
		CreatedAt: base,
	})
	driveRepo.participants[participantKey("u1", "d1")] = &entity.DriveParticipant{
		DriveID:  "d1",
		UserID:   "u1",
		JoinedAt: base.Add(24 * time.Hour),
	}

	activities, err := uc.Activity(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "drive", activities[0].Type)
	assert.Equal(t, "Joined Mangrove Cleanup", activities[0].Title)
	assert.Equal(t, "report", activities[1].Type)
	assert.Equal(t, PointsReportSubmission, activities[1].Points)
}
