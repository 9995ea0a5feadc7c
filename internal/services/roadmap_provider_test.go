package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

type stubOllamaClient struct {
	text  string
	err   error
	model string
}

func (s *stubOllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubOllamaClient) Model() string { return s.model }

func TestExtractFirstJSONObject_BalancedObjectWithProse(t *testing.T) {
	in := `Sure! Here is your roadmap: {"a": {"b": 1}, "c": 2} Hope that helps!`
	got := extractFirstJSONObject(in)
	want := `{"a": {"b": 1}, "c": 2}`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractFirstJSONObject_NoBraceReturnsTrimmedInput(t *testing.T) {
	got := extractFirstJSONObject("  no json here  ")
	if got != "no json here" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
}

func TestExtractFirstJSONObject_UnclosedBraceReturnsTail(t *testing.T) {
	in := `prefix {"a": 1, "b": {"c":`
	got := extractFirstJSONObject(in)
	want := `{"a": 1, "b": {"c":`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractFirstJSONObject_EmptyObject(t *testing.T) {
	if got := extractFirstJSONObject("{}"); got != "{}" {
		t.Fatalf("expected {}, got %q", got)
	}
}

func TestBuildUserPrompt_ContainsGoalAndSchema(t *testing.T) {
	profile := &types.Profile{
		UserID:    uuid.New(),
		GoalTitle: "Backend Engineer",
		Skills:    datatypes.JSON(`["Java"]`),
		Interests: datatypes.JSON(`["APIs"]`),
	}
	prompt := buildUserPrompt(profile)
	if !strings.Contains(prompt, "Backend Engineer") {
		t.Fatalf("prompt does not contain goal title:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"roadmapId": "unique-id-here"`) {
		t.Fatalf("prompt does not contain schema instructions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Create 3-5 stages with 2-3 courses each") {
		t.Fatalf("prompt does not contain the stage directive:\n%s", prompt)
	}
}

func TestBuildUserPrompt_Deterministic(t *testing.T) {
	profile := &types.Profile{
		UserID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		GoalTitle: "Data Engineer",
		Skills:    datatypes.JSON(`["SQL"]`),
	}
	if buildUserPrompt(profile) != buildUserPrompt(profile) {
		t.Fatalf("expected identical prompts for identical profiles")
	}
}

const validPlanJSON = `{
  "roadmapId": "r1",
  "userId": "u1",
  "targetRole": "Backend Engineer",
  "summary": "A plan",
  "stages": [
    {
      "stageId": "stage-1",
      "order": 1,
      "title": "Foundations",
      "description": "Basics",
      "progress": {"totalSteps": 3, "currentStep": 1, "percent": 0},
      "items": [
        {
          "itemId": "course-1",
          "order": 1,
          "title": "Intro",
          "url": "https://example.com",
          "estimatedHours": 10.0,
          "status": "NOT_STARTED"
        }
      ]
    }
  ]
}`

func TestGenerateRoadmap_ExtractsEnrichesAndValidates(t *testing.T) {
	stub := &stubOllamaClient{
		text:  "Sure! " + validPlanJSON + " Hope that helps!",
		model: "llama3.2",
	}
	provider := NewRoadmapProvider(testLogger(t), stub)

	plan, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New(), GoalTitle: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.RoadmapID != "r1" {
		t.Fatalf("expected roadmapId r1, got %q", plan.RoadmapID)
	}
	if plan.CreatedAt == nil {
		t.Fatalf("expected createdAt to be stamped")
	}
	if plan.GenerationDetails == nil {
		t.Fatalf("expected generation details to be created")
	}
	if plan.GenerationDetails.Provider != "OLLAMA" {
		t.Fatalf("expected provider OLLAMA, got %q", plan.GenerationDetails.Provider)
	}
	if plan.GenerationDetails.Model != "llama3.2" {
		t.Fatalf("expected model llama3.2, got %q", plan.GenerationDetails.Model)
	}
	if plan.GenerationDetails.GeneratedAt == nil {
		t.Fatalf("expected generatedAt to be stamped")
	}
}

func TestGenerateRoadmap_MalformedOutput(t *testing.T) {
	stub := &stubOllamaClient{text: "Sorry, I cannot help with that.", model: "llama3.2"}
	provider := NewRoadmapProvider(testLogger(t), stub)

	_, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New()})
	if !errors.Is(err, ErrMalformedRoadmap) {
		t.Fatalf("expected ErrMalformedRoadmap, got %v", err)
	}
}

func TestGenerateRoadmap_TruncatedOutputIsMalformed(t *testing.T) {
	stub := &stubOllamaClient{text: `{"roadmapId": "r1", "userId":`, model: "llama3.2"}
	provider := NewRoadmapProvider(testLogger(t), stub)

	_, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New()})
	if !errors.Is(err, ErrMalformedRoadmap) {
		t.Fatalf("expected ErrMalformedRoadmap, got %v", err)
	}
}

func TestGenerateRoadmap_InvalidStatusIsMalformed(t *testing.T) {
	bad := strings.Replace(validPlanJSON, "NOT_STARTED", "SOMEDAY", 1)
	stub := &stubOllamaClient{text: bad, model: "llama3.2"}
	provider := NewRoadmapProvider(testLogger(t), stub)

	_, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New()})
	if !errors.Is(err, ErrMalformedRoadmap) {
		t.Fatalf("expected ErrMalformedRoadmap, got %v", err)
	}
}

func TestGenerateRoadmap_ValidationFailurePropagates(t *testing.T) {
	bad := strings.Replace(validPlanJSON, `"targetRole": "Backend Engineer"`, `"targetRole": "  "`, 1)
	stub := &stubOllamaClient{text: bad, model: "llama3.2"}
	provider := NewRoadmapProvider(testLogger(t), stub)

	_, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New()})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "targetRole") {
		t.Fatalf("expected violation to name targetRole, got %v", err)
	}
}

func TestGenerateRoadmap_UpstreamErrorPassesThrough(t *testing.T) {
	stub := &stubOllamaClient{err: ErrEmptyResponse, model: "llama3.2"}
	provider := NewRoadmapProvider(testLogger(t), stub)

	_, err := provider.GenerateRoadmap(context.Background(), &types.Profile{UserID: uuid.New()})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
