package types

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func fullPlan() *RoadmapPlan {
	created := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	generated := time.Date(2025, 3, 10, 12, 30, 5, 0, time.UTC)
	hours := 12.5
	return &RoadmapPlan{
		RoadmapID:  "r1",
		UserID:     "u1",
		TargetRole: "Backend Engineer",
		Summary:    "A plan",
		CreatedAt:  &created,
		GenerationDetails: &GenerationDetails{
			Provider:    "OLLAMA",
			Model:       "llama3.2",
			GeneratedAt: &generated,
		},
		Stages: []Stage{
			{
				StageID:     "stage-1",
				Order:       1,
				Title:       "Foundations",
				Description: "Basics",
				Progress:    &StageProgress{TotalSteps: 3, CurrentStep: 1, Percent: 0},
				Items: []CourseItem{
					{
						ItemID:         "course-1",
						Order:          1,
						Title:          "Intro",
						Description:    "Course description",
						Details:        "Additional details",
						URL:            "https://example.com",
						EstimatedHours: &hours,
						Status:         CourseStatusNotStarted,
					},
					{
						ItemID: "course-2",
						Order:  2,
						Title:  "Deep dive",
						URL:    "https://example.com/2",
						Status: CourseStatusCompleted,
					},
				},
			},
		},
	}
}

func TestRoadmapPlan_RoundTrip(t *testing.T) {
	original := fullPlan()

	raw, err := SerializeRoadmapPlan(original)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	restored, err := DeserializeRoadmapPlan(raw)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	if !restored.CreatedAt.Equal(*original.CreatedAt) {
		t.Fatalf("createdAt changed: %v vs %v", restored.CreatedAt, original.CreatedAt)
	}
	if !restored.GenerationDetails.GeneratedAt.Equal(*original.GenerationDetails.GeneratedAt) {
		t.Fatalf("generatedAt changed")
	}
	if restored.RoadmapID != original.RoadmapID ||
		restored.UserID != original.UserID ||
		restored.TargetRole != original.TargetRole ||
		restored.Summary != original.Summary {
		t.Fatalf("top-level fields changed: %+v", restored)
	}
	if restored.GenerationDetails.Provider != "OLLAMA" || restored.GenerationDetails.Model != "llama3.2" {
		t.Fatalf("generation details changed: %+v", restored.GenerationDetails)
	}
	if !reflect.DeepEqual(restored.Stages, original.Stages) {
		t.Fatalf("stages changed:\n%+v\nvs\n%+v", restored.Stages, original.Stages)
	}
}

func TestDeserializeRoadmapPlan_RejectsUnknownFields(t *testing.T) {
	raw, err := SerializeRoadmapPlan(fullPlan())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	tampered := strings.Replace(raw, `"roadmapId"`, `"extraField": 1, "roadmapId"`, 1)

	if _, err := DeserializeRoadmapPlan(tampered); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestDeserializeRoadmapPlan_RejectsInvalidStatus(t *testing.T) {
	raw, err := SerializeRoadmapPlan(fullPlan())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	tampered := strings.Replace(raw, `"NOT_STARTED"`, `"PAUSED"`, 1)

	if _, err := DeserializeRoadmapPlan(tampered); err == nil {
		t.Fatalf("expected invalid status to be rejected")
	}
}

func TestDeserializeRoadmapPlan_RejectsGarbage(t *testing.T) {
	if _, err := DeserializeRoadmapPlan("not json at all"); err == nil {
		t.Fatalf("expected garbage to be rejected")
	}
}

func TestCourseStatus_AcceptsAllEnumValues(t *testing.T) {
	for _, status := range []CourseStatus{CourseStatusNotStarted, CourseStatusInProgress, CourseStatusCompleted} {
		var s CourseStatus
		if err := s.UnmarshalJSON([]byte(`"` + string(status) + `"`)); err != nil {
			t.Fatalf("expected %s to be accepted: %v", status, err)
		}
		if s != status {
			t.Fatalf("expected %s, got %s", status, s)
		}
	}
}
