package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/models"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("", 5))
}

func TestSkillGapSummary(t *testing.T) {
	gaps := []models.SkillGap{
		{Skill: "Kubernetes"}, {Skill: "Terraform"}, {Skill: "AWS"},
	}
	assert.Equal(t, "Kubernetes, Terraform", skillGapSummary(gaps, 2))
	assert.Equal(t, "None identified", skillGapSummary(nil, 5))
	assert.Equal(t, "None identified", skillGapSummary([]models.SkillGap{{Skill: ""}}, 5))
}

func TestStrengthSummary(t *testing.T) {
	strengths := []models.Strength{{Area: "Go"}, {Area: "SQL"}}
	assert.Equal(t, "Go, SQL", strengthSummary(strengths, 5))
	assert.Equal(t, "Strong overall profile", strengthSummary(nil, 5))
}

func TestGenerateTailoredCVIncludesAnalysisContext(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match:   "Create a strategically tailored CV",
		payload: "<h1>CV</h1>",
	})
	svc := NewDocumentService(fake, NewPromptBuilder())

	analysis := &models.GapAnalysis{
		CompatibilityScore: 58,
		SkillGaps:          []models.SkillGap{{Skill: "Kubernetes"}},
		Strengths:          []models.Strength{{Area: "Go"}},
	}
	analysis.Normalize()

	out, err := svc.GenerateTailoredCV(context.Background(), models.EmptyCandidateProfile(), "SRE", "Acme", "jd text", analysis, "resume text")
	require.NoError(t, err)
	assert.Equal(t, "<h1>CV</h1>", out)

	require.Len(t, fake.calls, 1)
	prompt := fake.calls[0]
	assert.Contains(t, prompt, "SRE")
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "58")
	assert.Contains(t, prompt, "Kubernetes")
	assert.Contains(t, prompt, "Go")
}

func TestGenerateTailoredStatementUsesPlaceholderWithoutResume(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match:   "Write a compelling personal statement",
		payload: "<p>statement</p>",
	})
	svc := NewDocumentService(fake, NewPromptBuilder())

	analysis := &models.GapAnalysis{}
	analysis.Normalize()

	_, err := svc.GenerateTailoredStatement(context.Background(), models.EmptyCandidateProfile(), "SRE", "Acme", "jd", analysis, "")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Contains(t, fake.calls[0], noResumePlaceholder)
}

func TestGenerateTailoredCVTruncatesLongInputs(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match:   "Create a strategically tailored CV",
		payload: "<h1>CV</h1>",
	})
	svc := NewDocumentService(fake, NewPromptBuilder())

	analysis := &models.GapAnalysis{}
	analysis.Normalize()

	longJD := strings.Repeat("j", 5000)
	_, err := svc.GenerateTailoredCV(context.Background(), models.EmptyCandidateProfile(), "SRE", "Acme", longJD, analysis, "resume")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.NotContains(t, fake.calls[0], strings.Repeat("j", 4001))
	assert.Contains(t, fake.calls[0], strings.Repeat("j", 4000))
}
