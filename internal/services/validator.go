package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"careerpilot/internal/models"
)

// ValidatorService quality-checks generated content. Document and analysis
// validation call the model; fabrication checks and sanitization are local.
type ValidatorService interface {
	ValidateDocument(ctx context.Context, documentType, content string, profile *models.CandidateProfile) (*models.ValidationReport, error)
	ValidateAnalysis(ctx context.Context, profile *models.CandidateProfile, benchmark *models.BenchmarkProfile, analysis *models.GapAnalysis) (bool, map[string]any, error)
	CheckForFabrication(generated, source *models.CandidateProfile) []string
	SanitizeContent(content string) string
}

type validatorService struct {
	completion CompletionService
	prompts    *PromptBuilder
}

func NewValidatorService(completion CompletionService, prompts *PromptBuilder) ValidatorService {
	return &validatorService{
		completion: completion,
		prompts:    prompts,
	}
}

// ValidateDocument implements ValidatorService. Any critical-severity issue
// forces the report invalid regardless of the model's own verdict.
func (s *validatorService) ValidateDocument(ctx context.Context, documentType, content string, profile *models.CandidateProfile) (*models.ValidationReport, error) {
	prompt := s.prompts.BuildDocumentValidationPrompt(documentType, mustMarshal(profile), content)

	var report models.ValidationReport
	if err := s.completion.CompleteJSON(ctx, prompt, validatorSystem, 2000, 0.2, &report); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", documentType, err)
	}

	report.Normalize()
	for _, issue := range report.Issues {
		if issue.Severity == models.SeverityCritical {
			report.IsValid = false
			break
		}
	}

	return &report, nil
}

// ValidateAnalysis implements ValidatorService.
func (s *validatorService) ValidateAnalysis(ctx context.Context, profile *models.CandidateProfile, benchmark *models.BenchmarkProfile, analysis *models.GapAnalysis) (bool, map[string]any, error) {
	prompt := s.prompts.BuildAnalysisValidationPrompt(mustMarshal(profile), mustMarshal(benchmark), mustMarshal(analysis))

	result := map[string]any{}
	if err := s.completion.CompleteJSON(ctx, prompt, validatorSystem, 2000, 0.2, &result); err != nil {
		return false, nil, fmt.Errorf("failed to validate analysis: %w", err)
	}

	isValid := true
	if v, ok := result["is_valid"].(bool); ok {
		isValid = v
	}
	return isValid, result, nil
}

// CheckForFabrication implements ValidatorService. It flags companies present
// in the generated profile but absent from the source profile.
func (s *validatorService) CheckForFabrication(generated, source *models.CandidateProfile) []string {
	sourceCompanies := make(map[string]bool, len(source.Experience))
	for _, exp := range source.Experience {
		if exp.Company != "" {
			sourceCompanies[strings.ToLower(exp.Company)] = true
		}
	}

	fabricated := []string{}
	seen := map[string]bool{}
	for _, exp := range generated.Experience {
		name := strings.ToLower(exp.Company)
		if name == "" || seen[name] || sourceCompanies[name] {
			continue
		}
		seen[name] = true
		fabricated = append(fabricated, name)
	}

	warnings := []string{}
	if len(fabricated) > 0 {
		warnings = append(warnings, fmt.Sprintf("Potentially fabricated companies: %s", strings.Join(fabricated, ", ")))
	}
	return warnings
}

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	jsLinkPattern       = regexp.MustCompile(`(?i)javascript:`)
)

// SanitizeContent implements ValidatorService. It strips script tags, inline
// event handlers, and javascript: links while leaving markup intact.
func (s *validatorService) SanitizeContent(content string) string {
	content = scriptTagPattern.ReplaceAllString(content, "")
	content = eventHandlerPattern.ReplaceAllString(content, "")
	content = jsLinkPattern.ReplaceAllString(content, "")
	return content
}
