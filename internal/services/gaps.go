package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"careerpilot/internal/models"
)

// GapService compares a candidate profile against a benchmark and produces
// the scored gap analysis that drives every later stage.
type GapService interface {
	AnalyzeGaps(ctx context.Context, profile *models.CandidateProfile, benchmark *models.BenchmarkProfile, jobTitle, company string) (*models.GapAnalysis, error)
	EstimateCompatibility(profile *models.CandidateProfile, benchmark *models.BenchmarkProfile) float64
}

type gapService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewGapService(completion CompletionService, prompts *PromptBuilder) GapService {
	return &gapService{
		completion: completion,
		prompts:    prompts,
	}
}

// AnalyzeGaps implements GapService.
func (s *gapService) AnalyzeGaps(ctx context.Context, profile *models.CandidateProfile, benchmark *models.BenchmarkProfile, jobTitle, company string) (*models.GapAnalysis, error) {
	prompt := s.prompts.BuildGapAnalysisPrompt(mustMarshal(profile), mustMarshal(benchmark), jobTitle, company)

	var analysis models.GapAnalysis
	if err := s.completion.CompleteJSON(ctx, prompt, gapAnalyzerSystem, 6000, 0.3, &analysis); err != nil {
		return nil, fmt.Errorf("failed to analyze gaps: %w", err)
	}

	analysis.Normalize()
	log.Printf("✅ Gap analysis done: score %.0f, %d skill gaps, %d strengths\n",
		analysis.CompatibilityScore, len(analysis.SkillGaps), len(analysis.Strengths))

	return &analysis, nil
}

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*year`)
	monthsPattern = regexp.MustCompile(`(?i)(\d+)\s*month`)
)

// EstimateCompatibility implements GapService. It is a deterministic fallback
// score built from skill overlap and experience duration, used when the full
// analysis is unavailable.
func (s *gapService) EstimateCompatibility(profile *models.CandidateProfile, benchmark *models.BenchmarkProfile) float64 {
	score := 50.0

	candidateSkills := make(map[string]bool, len(profile.Skills))
	for _, sk := range profile.Skills {
		candidateSkills[strings.ToLower(sk.Name)] = true
	}

	if len(benchmark.IdealSkills) > 0 {
		matched := 0
		for _, ideal := range benchmark.IdealSkills {
			if candidateSkills[strings.ToLower(ideal.Name)] {
				matched++
			}
		}
		score += float64(int(25 * float64(matched) / float64(len(benchmark.IdealSkills))))
	}

	requiredYears := benchmark.IdealProfile.YearsExperience
	if requiredYears <= 0 {
		requiredYears = 5
	}
	years := totalExperienceYears(profile.Experience)
	ratio := years / requiredYears
	if ratio > 1 {
		ratio = 1
	}
	score += float64(int(25 * ratio))

	return models.ClampScore(score)
}

// totalExperienceYears sums the durations of all experience entries, reading
// "N years" and "N months" fragments from the free-text duration field.
func totalExperienceYears(experience []models.Experience) float64 {
	total := 0.0
	for _, exp := range experience {
		if m := yearsPattern.FindStringSubmatch(exp.Duration); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				total += v
			}
		}
		if m := monthsPattern.FindStringSubmatch(exp.Duration); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				total += v / 12
			}
		}
	}
	return total
}
