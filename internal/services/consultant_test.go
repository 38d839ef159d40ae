package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/models"
)

func TestQuickTipsCombinesWinsAndRecommendations(t *testing.T) {
	svc := NewConsultantService(newFakeCompletion(), NewPromptBuilder())

	analysis := &models.GapAnalysis{
		QuickWins: []string{"w1", "w2", "w3", "w4", "w5", "w6"},
		Recommendations: []models.Recommendation{
			{Title: "Learn Kubernetes", Description: "Take a hands-on course"},
			{Title: "", Description: "skipped because untitled"},
			{Title: "Get certified", Description: strings.Repeat("x", 150)},
			{Title: "Fourth", Description: "beyond the top three"},
		},
	}
	analysis.Normalize()

	tips := svc.QuickTips(analysis)

	require.Len(t, tips, 7)
	assert.Equal(t, []string{"w1", "w2", "w3", "w4", "w5"}, tips[:5])
	assert.Equal(t, "Learn Kubernetes: Take a hands-on course", tips[5])
	assert.Equal(t, "Get certified: "+strings.Repeat("x", 100), tips[6])
}

func TestQuickTipsEmptyAnalysis(t *testing.T) {
	svc := NewConsultantService(newFakeCompletion(), NewPromptBuilder())

	analysis := &models.GapAnalysis{}
	analysis.Normalize()

	assert.Empty(t, svc.QuickTips(analysis))
}

func TestGenerateRoadmapNormalizes(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Create a comprehensive career improvement roadmap",
		payload: `{
			"roadmap": {"title": "Your Path to SRE", "weekly_plans": [{"week": 1, "theme": "Foundations"}]}
		}`,
	})
	svc := NewConsultantService(fake, NewPromptBuilder())

	plan, err := svc.GenerateRoadmap(context.Background(), &models.GapAnalysis{}, models.EmptyCandidateProfile(), "SRE", "Acme")
	require.NoError(t, err)

	assert.Equal(t, "Your Path to SRE", plan.Roadmap.Title)
	assert.Len(t, plan.Roadmap.WeeklyPlans, 1)
	assert.NotNil(t, plan.LearningResources)
	assert.NotNil(t, plan.MotivationTips)
}

func TestSuggestProjects(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Suggest 3 practical projects",
		payload: `{
			"projects": [
				{"title": "Cluster lab", "difficulty": "intermediate", "skills_addressed": ["Kubernetes"]}
			]
		}`,
	})
	svc := NewConsultantService(fake, NewPromptBuilder())

	projects, err := svc.SuggestProjects(context.Background(), []models.SkillGap{{Skill: "Kubernetes"}}, "SRE")
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "Cluster lab", projects[0].Title)
	assert.Equal(t, []string{"Kubernetes"}, projects[0].SkillsAddressed)
}
