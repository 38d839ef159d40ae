package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIdealProfileNormalizes(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Create a comprehensive IDEAL CANDIDATE PROFILE",
		payload: `{
			"ideal_profile": {"title": "Staff Engineer", "summary": "A seasoned generalist."},
			"ideal_skills": [{"name": "Go", "level": "expert", "importance": "critical"}]
		}`,
	})
	svc := NewBenchmarkService(fake, NewPromptBuilder())

	benchmark, err := svc.CreateIdealProfile(context.Background(), "Staff Engineer", "Acme", "jd text")
	require.NoError(t, err)

	require.Len(t, benchmark.IdealSkills, 1)
	assert.Equal(t, "Go", benchmark.IdealSkills[0].Name)
	assert.NotNil(t, benchmark.IdealExperience)
	assert.NotNil(t, benchmark.ScoringWeights)
	assert.NotNil(t, benchmark.IdealProfile.KeyDifferentiators)
}

func TestBuildCompleteBenchmark(t *testing.T) {
	fake := newFakeCompletion(
		scriptedResponse{
			match: "Create a comprehensive IDEAL CANDIDATE PROFILE",
			payload: `{
				"ideal_profile": {"title": "Staff Engineer", "summary": "ok"},
				"ideal_skills": [{"name": "Go", "level": "expert", "importance": "critical"}]
			}`,
		},
		scriptedResponse{
			match:   "Create a professional CV for this ideal candidate profile",
			payload: "# Ideal CV",
		},
		scriptedResponse{
			match:   "Write a compelling cover letter for this ideal candidate",
			payload: "Dear Hiring Manager,",
		},
		scriptedResponse{
			match:   "Create a portfolio of projects for this ideal candidate",
			payload: `{"projects": [{"name": "Platform rebuild", "technologies": ["Go"]}]}`,
		},
		scriptedResponse{
			match:   "Create professional case studies for this ideal candidate",
			payload: `{"case_studies": [{"title": "Migration"}]}`,
		},
		scriptedResponse{
			match:   "Create a 3-month action plan/presentation for this ideal candidate",
			payload: `{"action_plan": {"month_1": "Onboard"}}`,
		},
	)
	svc := NewBenchmarkService(fake, NewPromptBuilder())

	pkg, err := svc.BuildCompleteBenchmark(context.Background(), "Staff Engineer", "Acme", "jd text", map[string]any{"industry": "fintech"})
	require.NoError(t, err)

	assert.Equal(t, "# Ideal CV", pkg.IdealCV)
	assert.Equal(t, "Dear Hiring Manager,", pkg.IdealCoverLetter)
	require.Len(t, pkg.IdealPortfolio, 1)
	assert.Equal(t, "Platform rebuild", pkg.IdealPortfolio[0].Name)
	require.Len(t, pkg.IdealCaseStudies, 1)
	assert.Equal(t, "Onboard", pkg.IdealActionPlan["month_1"])
	assert.Equal(t, 6, fake.callCount())
}

func TestBuildCompleteBenchmarkAbortsOnArtifactFailure(t *testing.T) {
	fake := newFakeCompletion(
		scriptedResponse{
			match:   "Create a comprehensive IDEAL CANDIDATE PROFILE",
			payload: `{"ideal_profile": {"summary": "ok"}, "ideal_skills": []}`,
		},
		scriptedResponse{
			match: "Create a professional CV for this ideal candidate profile",
			err:   assert.AnError,
		},
	)
	svc := NewBenchmarkService(fake, NewPromptBuilder())

	_, err := svc.BuildCompleteBenchmark(context.Background(), "Staff Engineer", "Acme", "jd text", nil)
	require.Error(t, err)
	assert.Equal(t, 2, fake.callCount())
}
