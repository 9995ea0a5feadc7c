package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/repos"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

type ProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error)
	Upsert(ctx context.Context, profile *types.Profile) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	userRepo    repos.UserRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, userRepo repos.UserRepo) ProfileService {
	return &profileService{
		db:          db,
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetByUserID returns basic user info when no profile row exists yet, and
// ErrProfileNotFound only when the user itself is unknown.
func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return &types.ProfileResponse{
			UserID: user.ID,
			Email:  user.Email,
		}, nil
	}

	updatedAt := profile.UpdatedAt
	return &types.ProfileResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: profile.FirstName,
		Surname:   profile.Surname,
		GoalTitle: profile.GoalTitle,
		Skills:    profile.Skills,
		Interests: profile.Interests,
		UpdatedAt: &updatedAt,
	}, nil
}

func (s *profileService) Upsert(ctx context.Context, profile *types.Profile) (*types.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, nil, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile.UpdatedAt = time.Now()
	saved, err := s.profileRepo.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("Profile saved", "user_id", profile.UserID)
	return saved, nil
}
