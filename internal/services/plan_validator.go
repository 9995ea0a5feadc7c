package services

import (
	"fmt"
	"strings"

	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

func joinViolations(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}

// validateRoadmapPlan applies every field constraint in one pass and
// collects all violations instead of failing fast. Stage order values are
// only bound-checked; uniqueness and contiguity are caller-supplied and not
// enforced.
func validateRoadmapPlan(plan *types.RoadmapPlan) []Violation {
	var violations []Violation
	add := func(field, message string) {
		violations = append(violations, Violation{Field: field, Message: message})
	}

	if plan == nil {
		add("roadmap", "must not be nil")
		return violations
	}

	if strings.TrimSpace(plan.RoadmapID) == "" {
		add("roadmapId", "must not be blank")
	}
	if strings.TrimSpace(plan.UserID) == "" {
		add("userId", "must not be blank")
	}
	if strings.TrimSpace(plan.TargetRole) == "" {
		add("targetRole", "must not be blank")
	}
	if strings.TrimSpace(plan.Summary) == "" {
		add("summary", "must not be blank")
	}
	if len(plan.Stages) == 0 {
		add("stages", "must not be empty")
	}

	for i, stage := range plan.Stages {
		path := fmt.Sprintf("stages[%d]", i)
		if strings.TrimSpace(stage.StageID) == "" {
			add(path+".stageId", "must not be blank")
		}
		if stage.Order < 1 {
			add(path+".order", "must be greater than or equal to 1")
		}
		if strings.TrimSpace(stage.Title) == "" {
			add(path+".title", "must not be blank")
		}
		if stage.Progress == nil {
			add(path+".progress", "must not be null")
		} else {
			if stage.Progress.TotalSteps < 1 {
				add(path+".progress.totalSteps", "must be greater than or equal to 1")
			}
			if stage.Progress.CurrentStep < 1 {
				add(path+".progress.currentStep", "must be greater than or equal to 1")
			}
			if stage.Progress.Percent < 0 || stage.Progress.Percent > 100 {
				add(path+".progress.percent", "must be between 0 and 100")
			}
		}
		if len(stage.Items) == 0 {
			add(path+".items", "must not be empty")
		}
		for j, item := range stage.Items {
			itemPath := fmt.Sprintf("%s.items[%d]", path, j)
			if strings.TrimSpace(item.ItemID) == "" {
				add(itemPath+".itemId", "must not be blank")
			}
			if item.Order < 1 {
				add(itemPath+".order", "must be greater than or equal to 1")
			}
			if strings.TrimSpace(item.Title) == "" {
				add(itemPath+".title", "must not be blank")
			}
			if strings.TrimSpace(item.URL) == "" {
				add(itemPath+".url", "must not be blank")
			}
			if item.EstimatedHours != nil && *item.EstimatedHours < 0 {
				add(itemPath+".estimatedHours", "must be greater than or equal to 0.0")
			}
			if item.Status == "" {
				add(itemPath+".status", "must not be empty")
			}
		}
	}

	return violations
}
