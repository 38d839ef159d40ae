package services

import (
	"context"
	"fmt"
	"log"

	"careerpilot/internal/models"
)

// ConsultantService produces the career improvement roadmap and the smaller
// coaching outputs built on the gap analysis.
type ConsultantService interface {
	GenerateRoadmap(ctx context.Context, analysis *models.GapAnalysis, profile *models.CandidateProfile, jobTitle, company string) (*models.RoadmapPlan, error)
	QuickTips(analysis *models.GapAnalysis) []string
	SuggestProjects(ctx context.Context, skillGaps []models.SkillGap, jobTitle string) ([]models.ProjectSuggestion, error)
}

type consultantService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewConsultantService(completion CompletionService, prompts *PromptBuilder) ConsultantService {
	return &consultantService{
		completion: completion,
		prompts:    prompts,
	}
}

// GenerateRoadmap implements ConsultantService.
func (s *consultantService) GenerateRoadmap(ctx context.Context, analysis *models.GapAnalysis, profile *models.CandidateProfile, jobTitle, company string) (*models.RoadmapPlan, error) {
	prompt := s.prompts.BuildRoadmapPrompt(mustMarshal(analysis), mustMarshal(profile), jobTitle, company)

	var plan models.RoadmapPlan
	if err := s.completion.CompleteJSON(ctx, prompt, consultantSystem, 8000, 0.5, &plan); err != nil {
		return nil, fmt.Errorf("failed to generate roadmap: %w", err)
	}

	plan.Normalize()
	log.Printf("✅ Roadmap generated: %d weekly plans, %d resources\n",
		len(plan.Roadmap.WeeklyPlans), len(plan.LearningResources))

	return &plan, nil
}

// QuickTips implements ConsultantService. It is a pure projection of the gap
// analysis: up to five quick wins plus the top three recommendations.
func (s *consultantService) QuickTips(analysis *models.GapAnalysis) []string {
	tips := make([]string, 0, 8)

	wins := analysis.QuickWins
	if len(wins) > 5 {
		wins = wins[:5]
	}
	tips = append(tips, wins...)

	recs := analysis.Recommendations
	if len(recs) > 3 {
		recs = recs[:3]
	}
	for _, rec := range recs {
		if rec.Title == "" {
			continue
		}
		desc := rec.Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		tips = append(tips, fmt.Sprintf("%s: %s", rec.Title, desc))
	}

	return tips
}

// SuggestProjects implements ConsultantService.
func (s *consultantService) SuggestProjects(ctx context.Context, skillGaps []models.SkillGap, jobTitle string) ([]models.ProjectSuggestion, error) {
	prompt := s.prompts.BuildSuggestProjectsPrompt(mustMarshal(skillGaps), jobTitle)

	var result struct {
		Projects []models.ProjectSuggestion `json:"projects"`
	}
	if err := s.completion.CompleteJSON(ctx, prompt, consultantSystem, 2000, 0.6, &result); err != nil {
		return nil, fmt.Errorf("failed to suggest projects: %w", err)
	}

	return result.Projects, nil
}
