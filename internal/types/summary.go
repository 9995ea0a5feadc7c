package types

import (
	"time"

	"github.com/google/uuid"
)

// Derived dashboard views. Nothing here is persisted; summaries are
// recomputed from raw_ai_output on every read.

type RoadmapSummary struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Summary         string         `json:"summary"`
	CreatedAt       time.Time      `json:"createdAt"`
	TotalStages     int            `json:"totalStages"`
	CompletedStages int            `json:"completedStages"`
	Stages          []StageSummary `json:"stages,omitempty"`
	Stats           *RoadmapStats  `json:"stats,omitempty"`
}

type StageSummary struct {
	StageID          string  `json:"stageId"`
	Order            int     `json:"order"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	TotalCourses     int     `json:"totalCourses"`
	CompletedCourses int     `json:"completedCourses"`
	ProgressPercent  float64 `json:"progressPercent"`
}

type RoadmapStats struct {
	TotalCourses        int     `json:"totalCourses"`
	CompletedCourses    int     `json:"completedCourses"`
	TotalEstimatedHours float64 `json:"totalEstimatedHours"`
	CompletedHours      float64 `json:"completedHours"`
}

type DashboardStats struct {
	TotalRoadmaps        int `json:"totalRoadmaps"`
	TotalStagesCompleted int `json:"totalStagesCompleted"`
	TotalStages          int `json:"totalStages"`
}

type DashboardResponse struct {
	Profile  *ProfileResponse `json:"profile"`
	Roadmaps []RoadmapSummary `json:"roadmaps"`
	Stats    DashboardStats   `json:"stats"`
}
