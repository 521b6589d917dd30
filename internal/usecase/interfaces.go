package usecase

import (
	"context"
	"io"

	"wetlandwarden/internal/infrastructure/realtime"
)

// AuthProvider is the hosted identity provider surface the app depends on.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, string, error)
	RefreshIDToken(refreshToken string) (string, string, error)
}

// ImageStorage uploads report photos and returns their public URL.
type ImageStorage interface {
	UploadReportImage(ctx context.Context, file io.Reader, contentType, userID string) (string, error)
}

// ChangePublisher pushes table change events to live subscribers.
type ChangePublisher interface {
	Publish(event realtime.Event)
}

// Fixed point awards per activity.
const (
	PointsVolunteerRegistration = 100
	PointsReportSubmission      = 200
	PointsQuizCompletionBonus   = 50
	PointsPerCorrectAnswer      = 10
)
