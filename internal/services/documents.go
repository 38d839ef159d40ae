package services

import (
	"context"
	"fmt"
	"log"

	"careerpilot/internal/models"
)

const noResumePlaceholder = "No resume text provided"

// DocumentService generates the application documents. The tailored variants
// produce HTML and are gap-analysis driven; the plain variants produce
// markdown or structured JSON from the profile alone.
type DocumentService interface {
	GenerateTailoredCV(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error)
	GenerateTailoredCoverLetter(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis) (string, error)
	GenerateTailoredStatement(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error)
	GenerateTailoredPortfolio(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error)

	GenerateCV(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, requirements, gapInsights any) (string, error)
	GenerateCoverLetter(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, companyInfo, requirements any, strengths []models.Strength) (string, error)
	GenerateMotivationStatement(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, companyInfo any) (map[string]any, error)
	GeneratePortfolioDescriptions(ctx context.Context, profile *models.CandidateProfile, jobTitle string) (map[string]any, error)
}

type documentService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewDocumentService(completion CompletionService, prompts *PromptBuilder) DocumentService {
	return &documentService{
		completion: completion,
		prompts:    prompts,
	}
}

// GenerateTailoredCV implements DocumentService.
func (s *documentService) GenerateTailoredCV(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error) {
	prompt := s.prompts.BuildTailoredCVPrompt(
		jobTitle, company,
		truncate(jdText, 4000),
		truncate(mustMarshal(profile), 4000),
		truncate(orPlaceholder(resumeText), 3000),
		int(analysis.CompatibilityScore),
		skillGapSummary(analysis.SkillGaps, 10),
		strengthSummary(analysis.Strengths, 10),
	)

	cv, err := s.completion.Complete(ctx, prompt, tailoredCVSystem, 8000, 0.6, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate tailored cv: %w", err)
	}

	log.Printf("✅ Tailored CV generated (%d chars)\n", len(cv))
	return cv, nil
}

// GenerateTailoredCoverLetter implements DocumentService.
func (s *documentService) GenerateTailoredCoverLetter(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis) (string, error) {
	prompt := s.prompts.BuildTailoredCoverLetterPrompt(
		jobTitle, company,
		truncate(jdText, 3000),
		truncate(mustMarshal(profile), 3000),
		skillGapSummary(analysis.SkillGaps, 6),
		strengthSummary(analysis.Strengths, 6),
	)

	letter, err := s.completion.Complete(ctx, prompt, tailoredCoverLetterSystem, 3000, 0.65, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate tailored cover letter: %w", err)
	}

	log.Printf("✅ Tailored cover letter generated (%d chars)\n", len(letter))
	return letter, nil
}

// GenerateTailoredStatement implements DocumentService.
func (s *documentService) GenerateTailoredStatement(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error) {
	prompt := s.prompts.BuildTailoredStatementPrompt(
		jobTitle, company,
		truncate(jdText, 3000),
		truncate(mustMarshal(profile), 3000),
		truncate(orPlaceholder(resumeText), 2000),
		int(analysis.CompatibilityScore),
		skillGapSummary(analysis.SkillGaps, 8),
		strengthSummary(analysis.Strengths, 8),
	)

	statement, err := s.completion.Complete(ctx, prompt, tailoredStatementSystem, 4000, 0.65, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate personal statement: %w", err)
	}

	log.Printf("✅ Personal statement generated (%d chars)\n", len(statement))
	return statement, nil
}

// GenerateTailoredPortfolio implements DocumentService.
func (s *documentService) GenerateTailoredPortfolio(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (string, error) {
	prompt := s.prompts.BuildTailoredPortfolioPrompt(
		jobTitle, company,
		truncate(jdText, 3000),
		truncate(mustMarshal(profile), 3000),
		truncate(orPlaceholder(resumeText), 2000),
		int(analysis.CompatibilityScore),
		skillGapSummary(analysis.SkillGaps, 8),
		strengthSummary(analysis.Strengths, 8),
	)

	portfolio, err := s.completion.Complete(ctx, prompt, tailoredPortfolioSystem, 6000, 0.55, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate evidence portfolio: %w", err)
	}

	log.Printf("✅ Evidence portfolio generated (%d chars)\n", len(portfolio))
	return portfolio, nil
}

// GenerateCV implements DocumentService.
func (s *documentService) GenerateCV(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, requirements, gapInsights any) (string, error) {
	prompt := s.prompts.BuildCVPrompt(mustMarshal(profile), jobTitle, company, mustMarshal(requirements), mustMarshal(gapInsights))

	cv, err := s.completion.Complete(ctx, prompt, documentSystem, 4000, 0.5, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate cv: %w", err)
	}
	return cv, nil
}

// GenerateCoverLetter implements DocumentService.
func (s *documentService) GenerateCoverLetter(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, companyInfo, requirements any, strengths []models.Strength) (string, error) {
	prompt := s.prompts.BuildCoverLetterPrompt(mustMarshal(profile), jobTitle, company, mustMarshal(companyInfo), mustMarshal(requirements), mustMarshal(strengths))

	letter, err := s.completion.Complete(ctx, prompt, documentSystem, 2000, 0.6, FormatText)
	if err != nil {
		return "", fmt.Errorf("failed to generate cover letter: %w", err)
	}
	return letter, nil
}

// GenerateMotivationStatement implements DocumentService.
func (s *documentService) GenerateMotivationStatement(ctx context.Context, profile *models.CandidateProfile, jobTitle, company string, companyInfo any) (map[string]any, error) {
	prompt := s.prompts.BuildMotivationStatementPrompt(mustMarshal(profile), company, mustMarshal(companyInfo), jobTitle)

	var result map[string]any
	if err := s.completion.CompleteJSON(ctx, prompt, documentSystem, 3000, 0.6, &result); err != nil {
		return nil, fmt.Errorf("failed to generate motivation statement: %w", err)
	}
	return result, nil
}

// GeneratePortfolioDescriptions implements DocumentService.
func (s *documentService) GeneratePortfolioDescriptions(ctx context.Context, profile *models.CandidateProfile, jobTitle string) (map[string]any, error) {
	prompt := s.prompts.BuildPortfolioDescriptionsPrompt(mustMarshal(profile), jobTitle, mustMarshal(profile.Projects))

	var result map[string]any
	if err := s.completion.CompleteJSON(ctx, prompt, documentSystem, 4000, 0.5, &result); err != nil {
		return nil, fmt.Errorf("failed to generate portfolio descriptions: %w", err)
	}
	return result, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func orPlaceholder(resumeText string) string {
	if resumeText == "" {
		return noResumePlaceholder
	}
	return resumeText
}

// skillGapSummary projects the first n skill gaps into a comma-joined list
// for prompt context.
func skillGapSummary(gaps []models.SkillGap, n int) string {
	if len(gaps) > n {
		gaps = gaps[:n]
	}
	names := make([]string, 0, len(gaps))
	for _, g := range gaps {
		names = append(names, g.Skill)
	}
	return joinNonEmpty(names, "None identified")
}

func strengthSummary(strengths []models.Strength, n int) string {
	if len(strengths) > n {
		strengths = strengths[:n]
	}
	areas := make([]string, 0, len(strengths))
	for _, s := range strengths {
		areas = append(areas, s.Area)
	}
	return joinNonEmpty(areas, "Strong overall profile")
}
