package services

import (
	"testing"

	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

func validPlanForTest() *types.RoadmapPlan {
	hours := 5.0
	return &types.RoadmapPlan{
		RoadmapID:  "r1",
		UserID:     "u1",
		TargetRole: "Backend Engineer",
		Summary:    "A plan",
		Stages: []types.Stage{
			{
				StageID:  "stage-1",
				Order:    1,
				Title:    "Foundations",
				Progress: &types.StageProgress{TotalSteps: 3, CurrentStep: 1, Percent: 0},
				Items: []types.CourseItem{
					{
						ItemID:         "course-1",
						Order:          1,
						Title:          "Intro",
						URL:            "https://example.com",
						EstimatedHours: &hours,
						Status:         types.CourseStatusNotStarted,
					},
				},
			},
		},
	}
}

func TestValidateRoadmapPlan_ValidPlanHasNoViolations(t *testing.T) {
	violations := validateRoadmapPlan(validPlanForTest())
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateRoadmapPlan_MissingStageTitleNamesField(t *testing.T) {
	plan := validPlanForTest()
	plan.Stages[0].Title = "   "
	violations := validateRoadmapPlan(plan)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}
	if violations[0].Field != "stages[0].title" {
		t.Fatalf("expected field stages[0].title, got %q", violations[0].Field)
	}
}

func TestValidateRoadmapPlan_ZeroStagesInvalid(t *testing.T) {
	plan := validPlanForTest()
	plan.Stages = nil
	violations := validateRoadmapPlan(plan)
	if len(violations) != 1 || violations[0].Field != "stages" {
		t.Fatalf("expected a single stages violation, got %v", violations)
	}
}

func TestValidateRoadmapPlan_CollectsAllViolationsInOnePass(t *testing.T) {
	plan := validPlanForTest()
	plan.RoadmapID = ""
	plan.Stages[0].Progress.Percent = 150
	plan.Stages[0].Items[0].URL = ""
	violations := validateRoadmapPlan(plan)
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %v", violations)
	}
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	for _, want := range []string{"roadmapId", "stages[0].progress.percent", "stages[0].items[0].url"} {
		if !fields[want] {
			t.Fatalf("expected violation for %s, got %v", want, violations)
		}
	}
}

func TestValidateRoadmapPlan_NilProgressIsViolation(t *testing.T) {
	plan := validPlanForTest()
	plan.Stages[0].Progress = nil
	violations := validateRoadmapPlan(plan)
	if len(violations) != 1 || violations[0].Field != "stages[0].progress" {
		t.Fatalf("expected stages[0].progress violation, got %v", violations)
	}
}

func TestValidateRoadmapPlan_NegativeHoursIsViolation(t *testing.T) {
	plan := validPlanForTest()
	negative := -1.0
	plan.Stages[0].Items[0].EstimatedHours = &negative
	violations := validateRoadmapPlan(plan)
	if len(violations) != 1 || violations[0].Field != "stages[0].items[0].estimatedHours" {
		t.Fatalf("expected estimatedHours violation, got %v", violations)
	}
}

func TestValidateRoadmapPlan_DuplicateStageOrderAllowed(t *testing.T) {
	plan := validPlanForTest()
	second := plan.Stages[0]
	second.StageID = "stage-2"
	plan.Stages = append(plan.Stages, second)
	// Both stages carry order 1; order uniqueness is caller-supplied and
	// deliberately unchecked.
	if violations := validateRoadmapPlan(plan); len(violations) != 0 {
		t.Fatalf("expected duplicate orders to be allowed, got %v", violations)
	}
}
