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

type RoadmapService interface {
	GenerateAndSave(ctx context.Context, profile *types.Profile) (*types.RoadmapPlan, error)
	GetByID(ctx context.Context, roadmapID uuid.UUID) (*types.RoadmapPlan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error)
	Delete(ctx context.Context, roadmapID, userID uuid.UUID) error
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	provider    RoadmapProvider
	userRepo    repos.UserRepo
	roadmapRepo repos.RoadmapRepo
}

func NewRoadmapService(
	db *gorm.DB,
	log *logger.Logger,
	provider RoadmapProvider,
	userRepo repos.UserRepo,
	roadmapRepo repos.RoadmapRepo,
) RoadmapService {
	return &roadmapService{
		db:          db,
		log:         log.With("service", "RoadmapService"),
		provider:    provider,
		userRepo:    userRepo,
		roadmapRepo: roadmapRepo,
	}
}

// GenerateAndSave runs the full generation pipeline and persists the plan's
// canonical serialized form as an immutable blob. Two concurrent calls for
// the same user each perform their own model call and their own write.
func (s *roadmapService) GenerateAndSave(ctx context.Context, profile *types.Profile) (*types.RoadmapPlan, error) {
	user, err := s.userRepo.GetByID(ctx, nil, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	plan, err := s.provider.GenerateRoadmap(ctx, profile)
	if err != nil {
		return nil, err
	}

	raw, err := types.SerializeRoadmapPlan(plan)
	if err != nil {
		// Serializing a plan we just built is unrecoverable, not a
		// generation-kind failure.
		return nil, err
	}

	row := &types.Roadmap{
		ID:          uuid.New(),
		UserID:      profile.UserID,
		Title:       plan.TargetRole,
		RawAIOutput: raw,
		CreatedAt:   time.Now(),
	}
	if _, err := s.roadmapRepo.Create(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("save roadmap: %w", err)
	}

	s.log.Info("Roadmap generated and saved", "roadmap_id", row.ID, "user_id", profile.UserID, "stages", len(plan.Stages))
	return plan, nil
}

// GetByID deserializes the stored blob. On this single-roadmap path a
// corrupt blob is fatal to the request; only the dashboard listing degrades.
func (s *roadmapService) GetByID(ctx context.Context, roadmapID uuid.UUID) (*types.RoadmapPlan, error) {
	row, err := s.roadmapRepo.GetByID(ctx, nil, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if row == nil {
		return nil, ErrRoadmapNotFound
	}
	plan, err := types.DeserializeRoadmapPlan(row.RawAIOutput)
	if err != nil {
		s.log.Error("Stored roadmap failed to deserialize", "roadmap_id", roadmapID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRoadmapCorrupted, err)
	}
	return plan, nil
}

func (s *roadmapService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error) {
	return s.roadmapRepo.GetByUserID(ctx, nil, userID)
}

func (s *roadmapService) Delete(ctx context.Context, roadmapID, userID uuid.UUID) error {
	row, err := s.roadmapRepo.GetByID(ctx, nil, roadmapID)
	if err != nil {
		return fmt.Errorf("load roadmap: %w", err)
	}
	if row == nil {
		return ErrRoadmapNotFound
	}
	if row.UserID != userID {
		return ErrNotOwner
	}
	if err := s.roadmapRepo.DeleteByID(ctx, nil, roadmapID); err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}
	s.log.Info("Roadmap deleted", "roadmap_id", roadmapID, "user_id", userID)
	return nil
}
