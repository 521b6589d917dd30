package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	storage    ImageStorage
	profileUC  *ProfileUseCase
	statsUC    *StatisticsUseCase
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	storage ImageStorage,
	profileUC *ProfileUseCase,
	statsUC *StatisticsUseCase,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		storage:    storage,
		profileUC:  profileUC,
		statsUC:    statsUC,
	}
}

type SubmitReportInput struct {
	Description     string
	Location        string
	Pollution       bool
	InvasiveSpecies bool
	Drainage        bool
	Illegal         bool
	Development     bool
	Image           io.Reader
	ImageType       string
}

type SubmitReportResult struct {
	Report  *entity.WetlandReport `json:"report"`
	Profile *entity.Profile       `json:"profile,omitempty"`
}

// Submit validates the report client-side rules before any store call,
// uploads the optional photo, inserts the row and awards the fixed points.
func (uc *ReportUseCase) Submit(ctx context.Context, userID string, input SubmitReportInput) (*SubmitReportResult, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.BadRequest("Description must not be empty", nil)
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.BadRequest("Location must not be empty", nil)
	}

	report := &entity.WetlandReport{
		ID:              uuid.New().String(),
		UserID:          userID,
		Description:     input.Description,
		Location:        input.Location,
		Pollution:       input.Pollution,
		InvasiveSpecies: input.InvasiveSpecies,
		Drainage:        input.Drainage,
		Illegal:         input.Illegal,
		Development:     input.Development,
		Status:          entity.ReportStatusSubmitted,
		CreatedAt:       time.Now(),
	}

	if !report.HasIssueType() {
		return nil, errors.BadRequest("Please select at least one issue type", nil)
	}

	if input.Image != nil {
		imageURL, err := uc.storage.UploadReportImage(ctx, input.Image, input.ImageType, userID)
		if err != nil {
			return nil, errors.Internal("Failed to upload report image", err)
		}
		report.ImageURL = imageURL
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Internal("Failed to submit report", err)
	}

	result := &SubmitReportResult{Report: report}

	profile, err := uc.profileUC.AwardPoints(ctx, userID, PointsReportSubmission, "report_submission")
	if err != nil {
		logger.Error("Report stored but point award failed for %s: %v", userID, err)
	} else {
		result.Profile = profile
	}

	if err := uc.profileUC.AwardBadgeOnce(ctx, userID, entity.BadgeWetlandReporter); err != nil {
		logger.Warn("Failed to award badge to %s: %v", userID, err)
	}

	uc.statsUC.RecordReportSubmitted(ctx)

	return result, nil
}

func (uc *ReportUseCase) ListByUser(ctx context.Context, userID string) ([]*entity.WetlandReport, error) {
	reports, err := uc.reportRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}
	if reports == nil {
		reports = []*entity.WetlandReport{}
	}
	return reports, nil
}
