package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/types"
)

const ProviderOllama = "OLLAMA"

// RoadmapProvider turns a user profile into a validated, enriched roadmap
// plan by prompting the model endpoint.
type RoadmapProvider interface {
	GenerateRoadmap(ctx context.Context, profile *types.Profile) (*types.RoadmapPlan, error)
}

type roadmapProvider struct {
	log    *logger.Logger
	ollama OllamaClient
}

func NewRoadmapProvider(log *logger.Logger, ollama OllamaClient) RoadmapProvider {
	return &roadmapProvider{
		log:    log.With("service", "RoadmapProvider"),
		ollama: ollama,
	}
}

func (p *roadmapProvider) GenerateRoadmap(ctx context.Context, profile *types.Profile) (*types.RoadmapPlan, error) {
	prompt := buildUserPrompt(profile)

	raw, err := p.ollama.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	span := extractFirstJSONObject(raw)
	plan, err := types.DeserializeRoadmapPlan(span)
	if err != nil {
		p.log.Warn("Model output failed to deserialize", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoadmap, err)
	}

	now := time.Now()
	plan.CreatedAt = &now
	enrichGenerationDetails(plan, ProviderOllama, p.ollama.Model(), time.Now())

	if violations := validateRoadmapPlan(plan); len(violations) > 0 {
		msg := joinViolations(violations)
		p.log.Warn("Generated roadmap failed validation", "violations", msg)
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, msg)
	}

	return plan, nil
}

// enrichGenerationDetails stamps provider/model/timestamp onto the plan's
// generation metadata, creating it when the model omitted the block.
func enrichGenerationDetails(plan *types.RoadmapPlan, provider, model string, generatedAt time.Time) {
	if plan.GenerationDetails == nil {
		plan.GenerationDetails = &types.GenerationDetails{}
	}
	plan.GenerationDetails.Provider = provider
	plan.GenerationDetails.Model = model
	plan.GenerationDetails.GeneratedAt = &generatedAt
}

// buildUserPrompt renders the instruction block the model is prompted with.
// The embedded schema must stay byte-for-byte consistent with the
// types.RoadmapPlan wire schema: the output is parsed without repair.
func buildUserPrompt(profile *types.Profile) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		// Profile is a plain struct; this cannot fail for real inputs.
		profileJSON = []byte("{}")
	}

	return fmt.Sprintf(`Based on this user profile: %s

Generate a learning roadmap as valid JSON with this exact structure (no markdown, no commentary, just JSON):
{
    "roadmapId": "unique-id-here",
    "userId": "user-id-here",
    "targetRole": "the career goal from the profile",
    "summary": "a brief summary of the roadmap",
    "stages": [
        {
            "stageId": "stage-1",
            "order": 1,
            "title": "Stage Title",
            "description": "What this stage covers",
            "progress": {
                "totalSteps": 3,
                "currentStep": 1,
                "percent": 0
            },
            "items": [
                {
                    "itemId": "course-1",
                    "order": 1,
                    "title": "Course Title",
                    "description": "Course description",
                    "details": "Additional details",
                    "url": "https://example.com",
                    "estimatedHours": 10.0,
                    "status": "NOT_STARTED"
                }
            ]
        }
    ]
}

Create 3-5 stages with 2-3 courses each based on the user's goal and current skills.
`, string(profileJSON))
}

// extractFirstJSONObject returns the first balanced {...} span in s. With no
// opening brace the trimmed input is returned as-is; with an unclosed brace
// everything from it to the end is returned. Either way the caller's
// deserialization decides whether the span is usable. Braces inside string
// literals are not tracked, so a literal "{" in model prose can skew the
// span boundary.
func extractFirstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return strings.TrimSpace(s)
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			return strings.TrimSpace(s[start : i+1])
		}
	}
	return strings.TrimSpace(s[start:])
}
