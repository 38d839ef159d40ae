package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"careerpilot/internal/models"
)

// BenchmarkService synthesizes the ideal-candidate benchmark for a target
// role. The pipeline uses CreateIdealProfile; BuildCompleteBenchmark adds the
// full ideal application package on top of it.
type BenchmarkService interface {
	CreateIdealProfile(ctx context.Context, jobTitle, company, jobDescription string) (*models.BenchmarkProfile, error)
	BuildCompleteBenchmark(ctx context.Context, jobTitle, company, jobDescription string, companyInfo map[string]any) (*models.BenchmarkPackage, error)
}

type benchmarkService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewBenchmarkService(completion CompletionService, prompts *PromptBuilder) BenchmarkService {
	return &benchmarkService{
		completion: completion,
		prompts:    prompts,
	}
}

// CreateIdealProfile implements BenchmarkService.
func (s *benchmarkService) CreateIdealProfile(ctx context.Context, jobTitle, company, jobDescription string) (*models.BenchmarkProfile, error) {
	prompt := s.prompts.BuildIdealProfilePrompt(jobTitle, company, jobDescription)

	var benchmark models.BenchmarkProfile
	if err := s.completion.CompleteJSON(ctx, prompt, benchmarkSystem, 4000, 0.4, &benchmark); err != nil {
		return nil, fmt.Errorf("failed to create ideal profile: %w", err)
	}

	benchmark.Normalize()
	log.Printf("✅ Benchmark created: %d ideal skills for %s\n", len(benchmark.IdealSkills), jobTitle)

	return &benchmark, nil
}

// BuildCompleteBenchmark implements BenchmarkService. Artifacts are generated
// sequentially because each one feeds off the ideal profile; any failure
// aborts the whole build.
func (s *benchmarkService) BuildCompleteBenchmark(ctx context.Context, jobTitle, company, jobDescription string, companyInfo map[string]any) (*models.BenchmarkPackage, error) {
	profile, err := s.CreateIdealProfile(ctx, jobTitle, company, jobDescription)
	if err != nil {
		return nil, err
	}

	profileJSON := mustMarshal(profile)
	infoJSON := mustMarshal(companyInfo)

	cv, err := s.completion.Complete(ctx, s.prompts.BuildIdealCVPrompt(profileJSON, jobTitle, company), benchmarkSystem, 3000, 0.5, FormatText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ideal cv: %w", err)
	}

	coverLetter, err := s.completion.Complete(ctx, s.prompts.BuildIdealCoverLetterPrompt(profileJSON, jobTitle, company, infoJSON), benchmarkSystem, 2000, 0.6, FormatText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ideal cover letter: %w", err)
	}

	var portfolio struct {
		Projects []models.PortfolioProject `json:"projects"`
	}
	if err := s.completion.CompleteJSON(ctx, s.prompts.BuildIdealPortfolioPrompt(profileJSON, jobTitle), benchmarkSystem, 3000, 0.5, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to generate ideal portfolio: %w", err)
	}

	var caseStudies struct {
		CaseStudies []map[string]any `json:"case_studies"`
	}
	if err := s.completion.CompleteJSON(ctx, s.prompts.BuildIdealCaseStudiesPrompt(profileJSON, jobTitle, company), benchmarkSystem, 4000, 0.5, &caseStudies); err != nil {
		return nil, fmt.Errorf("failed to generate ideal case studies: %w", err)
	}

	var actionPlan struct {
		ActionPlan map[string]any `json:"action_plan"`
	}
	if err := s.completion.CompleteJSON(ctx, s.prompts.BuildIdealActionPlanPrompt(profileJSON, jobTitle, company, infoJSON), benchmarkSystem, 4000, 0.5, &actionPlan); err != nil {
		return nil, fmt.Errorf("failed to generate ideal action plan: %w", err)
	}

	log.Printf("✅ Complete benchmark built for %s at %s\n", jobTitle, company)

	return &models.BenchmarkPackage{
		BenchmarkProfile: *profile,
		IdealCV:          cv,
		IdealCoverLetter: coverLetter,
		IdealPortfolio:   portfolio.Projects,
		IdealCaseStudies: caseStudies.CaseStudies,
		IdealActionPlan:  actionPlan.ActionPlan,
	}, nil
}

// mustMarshal renders a value as indented JSON for prompt embedding. Values
// here are plain structs and maps, so marshalling cannot fail.
func mustMarshal(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
