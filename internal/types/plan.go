package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type CourseStatus string

const (
	CourseStatusNotStarted CourseStatus = "NOT_STARTED"
	CourseStatusInProgress CourseStatus = "IN_PROGRESS"
	CourseStatusCompleted  CourseStatus = "COMPLETED"
)

// UnmarshalJSON rejects unknown status values so a bad enum fails the whole
// deserialization instead of leaking through as an empty string.
func (s *CourseStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch CourseStatus(raw) {
	case CourseStatusNotStarted, CourseStatusInProgress, CourseStatusCompleted:
		*s = CourseStatus(raw)
		return nil
	}
	return fmt.Errorf("invalid course status %q", raw)
}

// RoadmapPlan is the wire schema the model is instructed to emit and the
// canonical form persisted in roadmaps.raw_ai_output.
type RoadmapPlan struct {
	RoadmapID         string             `json:"roadmapId"`
	UserID            string             `json:"userId"`
	TargetRole        string             `json:"targetRole"`
	Summary           string             `json:"summary"`
	CreatedAt         *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time         `json:"updatedAt,omitempty"`
	GenerationDetails *GenerationDetails `json:"generationDetails,omitempty"`
	Stages            []Stage            `json:"stages"`
}

type GenerationDetails struct {
	Provider    string     `json:"provider,omitempty"`
	Model       string     `json:"model,omitempty"`
	Prompt      string     `json:"prompt,omitempty"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

type Stage struct {
	StageID     string         `json:"stageId"`
	Order       int            `json:"order"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Progress    *StageProgress `json:"progress"`
	Items       []CourseItem   `json:"items"`
}

type StageProgress struct {
	TotalSteps  int `json:"totalSteps"`
	CurrentStep int `json:"currentStep"`
	// Percent is whatever the model reported; it is range-checked but never
	// recomputed from currentStep/totalSteps.
	Percent int `json:"percent"`
}

type CourseItem struct {
	ItemID         string       `json:"itemId"`
	Order          int          `json:"order"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Details        string       `json:"details,omitempty"`
	URL            string       `json:"url"`
	EstimatedHours *float64     `json:"estimatedHours,omitempty"`
	Status         CourseStatus `json:"status"`
}

func SerializeRoadmapPlan(plan *RoadmapPlan) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("serialize roadmap plan: %w", err)
	}
	return string(data), nil
}

// DeserializeRoadmapPlan fails closed: unknown fields and invalid enum
// values are errors, not partially populated plans.
func DeserializeRoadmapPlan(raw string) (*RoadmapPlan, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	var plan RoadmapPlan
	if err := dec.Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
