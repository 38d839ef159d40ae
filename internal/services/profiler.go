package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"careerpilot/internal/models"
)

// ProfilerService turns raw resume text into a structured candidate profile.
type ProfilerService interface {
	ParseResume(ctx context.Context, resumeText string) (*models.CandidateProfile, error)
}

type profilerService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewProfilerService(completion CompletionService, prompts *PromptBuilder) ProfilerService {
	return &profilerService{
		completion: completion,
		prompts:    prompts,
	}
}

// ParseResume implements ProfilerService. Blank input short-circuits to the
// typed empty profile without a model call.
func (s *profilerService) ParseResume(ctx context.Context, resumeText string) (*models.CandidateProfile, error) {
	if strings.TrimSpace(resumeText) == "" {
		return models.EmptyCandidateProfile(), nil
	}

	prompt := s.prompts.BuildResumeParserPrompt(resumeText)

	var profile models.CandidateProfile
	if err := s.completion.CompleteJSON(ctx, prompt, resumeParserSystem, 4000, 0.2, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}

	profile.Normalize()
	log.Printf("✅ Resume parsed: %d skills, %d positions\n", len(profile.Skills), len(profile.Experience))

	return &profile, nil
}
