package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetlandwarden/internal/domain/entity"
	apperrors "wetlandwarden/pkg/errors"
)

func TestRegisterProvisionsProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	provider := newFakeAuthProvider()
	uc := NewAuthUseCase(profileRepo, provider)

	result, err := uc.Register(context.Background(), "heron@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "uid-heron@example.com", result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)

	require.NotNil(t, result.Profile)
	assert.False(t, result.Profile.Onboarded)
	assert.Equal(t, 0, result.Profile.Points)
	assert.Equal(t, 1, result.Profile.Level)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	provider := newFakeAuthProvider()
	uc := NewAuthUseCase(profileRepo, provider)
	ctx := context.Background()

	_, err := uc.Register(ctx, "heron@example.com", "password123")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "heron@example.com", "password456")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestLoginProvisionsMissingProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	provider := newFakeAuthProvider()
	provider.users["egret@example.com"] = "password123"
	provider.uids["egret@example.com"] = "uid-egret@example.com"
	uc := NewAuthUseCase(profileRepo, provider)

	result, err := uc.Login(context.Background(), "egret@example.com", "password123")
	require.NoError(t, err)

	require.NotNil(t, result.Profile)
	assert.True(t, result.Profile.NeedsSetup())
	assert.Contains(t, profileRepo.profiles, "uid-egret@example.com")
}

func TestLoginKeepsExistingProfile(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	provider := newFakeAuthProvider()
	provider.users["egret@example.com"] = "password123"
	provider.uids["egret@example.com"] = "uid-egret@example.com"
	profileRepo.profiles["uid-egret@example.com"] = &entity.Profile{
		ID:        "uid-egret@example.com",
		Username:  "egret",
		Points:    340,
		Level:     4,
		Onboarded: true,
	}
	uc := NewAuthUseCase(profileRepo, provider)

	result, err := uc.Login(context.Background(), "egret@example.com", "password123")
	require.NoError(t, err)

	require.NotNil(t, result.Profile)
	assert.Equal(t, "egret", result.Profile.Username)
	assert.Equal(t, 340, result.Profile.Points)
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc := NewAuthUseCase(newFakeProfileRepo(), newFakeAuthProvider())

	_, err := uc.Login(context.Background(), "nobody@example.com", "wrong")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestLoginUnconfirmedEmail(t *testing.T) {
	provider := newFakeAuthProvider()
	provider.users["ibis@example.com"] = "password123"
	provider.unconfirmed["ibis@example.com"] = true
	uc := NewAuthUseCase(newFakeProfileRepo(), provider)

	_, err := uc.Login(context.Background(), "ibis@example.com", "password123")
	assert.True(t, apperrors.Is(err, "EMAIL_NOT_CONFIRMED"))
}

func TestRefreshRotatesToken(t *testing.T) {
	provider := newFakeAuthProvider()
	provider.users["heron@example.com"] = "password123"
	uc := NewAuthUseCase(newFakeProfileRepo(), provider)

	token, refreshToken, err := uc.Refresh(context.Background(), "refresh-heron@example.com")
	require.NoError(t, err)
	assert.Equal(t, "token-heron@example.com", token)
	assert.Equal(t, "refresh-heron@example.com", refreshToken)

	_, _, err = uc.Refresh(context.Background(), "bogus")
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}
