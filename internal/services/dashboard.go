package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/repos"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

// placeholderSummary is what a roadmap row degrades to when its stored blob
// no longer deserializes. One corrupt roadmap must not fail the listing.
const placeholderSummary = "No summary available"

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error)
}

type dashboardService struct {
	log            *logger.Logger
	profileService ProfileService
	roadmapRepo    repos.RoadmapRepo
}

func NewDashboardService(log *logger.Logger, profileService ProfileService, roadmapRepo repos.RoadmapRepo) DashboardService {
	return &dashboardService{
		log:            log.With("service", "DashboardService"),
		profileService: profileService,
		roadmapRepo:    roadmapRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*types.DashboardResponse, error) {
	profile, err := s.profileService.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.roadmapRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load roadmaps: %w", err)
	}

	summaries := make([]types.RoadmapSummary, 0, len(rows))
	totalStages := 0
	completedStages := 0
	for _, row := range rows {
		summary := summarizeRoadmap(row)
		totalStages += summary.TotalStages
		completedStages += summary.CompletedStages
		summaries = append(summaries, summary)
	}

	return &types.DashboardResponse{
		Profile:  profile,
		Roadmaps: summaries,
		Stats: types.DashboardStats{
			TotalRoadmaps:        len(rows),
			TotalStagesCompleted: completedStages,
			TotalStages:          totalStages,
		},
	}, nil
}

// summarizeRoadmap recomputes every derived count from the stored raw blob.
// Nothing is cached; the result always reflects what is actually persisted.
func summarizeRoadmap(row *types.Roadmap) types.RoadmapSummary {
	summary := types.RoadmapSummary{
		ID:        row.ID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
	}

	plan, err := types.DeserializeRoadmapPlan(row.RawAIOutput)
	if err != nil {
		summary.Summary = placeholderSummary
		return summary
	}

	summary.Summary = plan.Summary
	summary.TotalStages = len(plan.Stages)

	stats := types.RoadmapStats{}
	stageSummaries := make([]types.StageSummary, 0, len(plan.Stages))
	for _, stage := range plan.Stages {
		totalCourses := len(stage.Items)
		completedCourses := 0
		for _, item := range stage.Items {
			hours := 0.0
			if item.EstimatedHours != nil {
				hours = *item.EstimatedHours
			}
			stats.TotalEstimatedHours += hours
			if item.Status == types.CourseStatusCompleted {
				completedCourses++
				stats.CompletedHours += hours
			}
		}

		progressPercent := 0.0
		if totalCourses > 0 {
			progressPercent = float64(completedCourses) * 100.0 / float64(totalCourses)
		}
		if progressPercent == 100 {
			summary.CompletedStages++
		}

		stats.TotalCourses += totalCourses
		stats.CompletedCourses += completedCourses

		stageSummaries = append(stageSummaries, types.StageSummary{
			StageID:          stage.StageID,
			Order:            stage.Order,
			Title:            stage.Title,
			Description:      stage.Description,
			TotalCourses:     totalCourses,
			CompletedCourses: completedCourses,
			ProgressPercent:  progressPercent,
		})
	}

	summary.Stages = stageSummaries
	summary.Stats = &stats
	return summary
}
