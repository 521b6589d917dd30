package usecase

import (
	"context"
	"strings"
	"time"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	authProvider AuthProvider
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, authProvider AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		authProvider: authProvider,
	}
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResult struct {
	User         SessionUser
	Profile      *entity.Profile
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	uid, err := uc.authProvider.CreateUser(ctx, email, password)
	if err != nil {
		if strings.Contains(err.Error(), "EMAIL_EXISTS") {
			return nil, errors.BadRequest("Email already in use", err)
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	profile, err := uc.ensureProfile(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to provision profile", err)
	}

	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         SessionUser{ID: uid, Email: email},
		Profile:      profile,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(email, password)
	if err != nil {
		if strings.Contains(err.Error(), "EMAIL_NOT_CONFIRMED") {
			return nil, errors.EmailNotConfirmed(err)
		}
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	// Profile provisioning covers identities created out of band; a fetch
	// failure degrades silently, never failing the sign-in.
	profile, err := uc.ensureProfile(ctx, uid)
	if err != nil {
		logger.Error("Failed to load profile for %s: %v", uid, err)
		profile = nil
	}

	return &AuthResult{
		User:         SessionUser{ID: uid, Email: email},
		Profile:      profile,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	token, newRefreshToken, err := uc.authProvider.RefreshIDToken(refreshToken)
	if err != nil {
		return "", "", errors.Unauthorized("Invalid refresh token", err)
	}
	return token, newRefreshToken, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	// Sessions live in the provider; revocation happens client-side by
	// discarding the token.
	return nil
}

// ensureProfile guarantees every signed-in identity has a profile row,
// provisioning one on first sight with onboarded=false so the client
// opens the username-entry prompt.
func (uc *AuthUseCase) ensureProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err == nil {
		return profile, nil
	}

	now := time.Now()
	profile = &entity.Profile{
		ID:        uid,
		Username:  "",
		Points:    0,
		Level:     entity.LevelForPoints(0),
		Onboarded: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Provisioned profile for new identity %s", uid)
	return profile, nil
}
