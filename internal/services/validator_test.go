package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/models"
)

func TestValidateDocumentCriticalIssueOverridesVerdict(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Validate this generated document",
		payload: `{
			"is_valid": true,
			"quality_score": 90,
			"issues": [
				{"severity": "critical", "category": "fabrication", "description": "Invented employer"}
			]
		}`,
	})
	svc := NewValidatorService(fake, NewPromptBuilder())

	report, err := svc.ValidateDocument(context.Background(), "Tailored CV", "<h1>CV</h1>", models.EmptyCandidateProfile())
	require.NoError(t, err)

	assert.False(t, report.IsValid)
	assert.Equal(t, 90.0, report.QualityScore)
	assert.Len(t, report.Issues, 1)
}

func TestValidateDocumentKeepsVerdictWithoutCriticalIssues(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Validate this generated document",
		payload: `{
			"is_valid": true,
			"quality_score": 80,
			"issues": [{"severity": "minor", "category": "grammar", "description": "Typo"}]
		}`,
	})
	svc := NewValidatorService(fake, NewPromptBuilder())

	report, err := svc.ValidateDocument(context.Background(), "Tailored CV", "<h1>CV</h1>", models.EmptyCandidateProfile())
	require.NoError(t, err)
	assert.True(t, report.IsValid)
}

func TestCheckForFabricationFlagsUnknownCompanies(t *testing.T) {
	svc := NewValidatorService(newFakeCompletion(), NewPromptBuilder())

	source := &models.CandidateProfile{
		Experience: []models.Experience{{Company: "Acme Corp"}},
	}
	generated := &models.CandidateProfile{
		Experience: []models.Experience{
			{Company: "ACME CORP"},
			{Company: "Globex"},
		},
	}

	warnings := svc.CheckForFabrication(generated, source)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "globex")
	assert.NotContains(t, warnings[0], "acme")
}

func TestCheckForFabricationCleanProfile(t *testing.T) {
	svc := NewValidatorService(newFakeCompletion(), NewPromptBuilder())

	source := &models.CandidateProfile{
		Experience: []models.Experience{{Company: "Acme"}},
	}
	generated := &models.CandidateProfile{
		Experience: []models.Experience{{Company: "acme"}},
	}

	assert.Empty(t, svc.CheckForFabrication(generated, source))
}

func TestSanitizeContent(t *testing.T) {
	svc := NewValidatorService(newFakeCompletion(), NewPromptBuilder())

	input := `<p>Hello</p><script type="text/javascript">alert(1)</script><a href="javascript:run()" onclick="x()">link</a>`
	out := svc.SanitizeContent(input)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "onclick=")
	assert.Contains(t, out, "<p>Hello</p>")
}
