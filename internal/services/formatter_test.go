package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careerpilot/internal/models"
)

func baseAnalysis(score float64) *models.GapAnalysis {
	analysis := &models.GapAnalysis{CompatibilityScore: score}
	analysis.Normalize()
	return analysis
}

func TestFormatResponseScoreDerivation(t *testing.T) {
	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(72),
		JobTitle:  "Backend Engineer",
	})

	assert.Equal(t, 72.0, resp.Scores.Match)
	assert.Equal(t, 87.0, resp.Scores.ATSReadiness)
	assert.Equal(t, 82.0, resp.Scores.RecruiterScan)
	assert.Equal(t, 0.0, resp.Scores.EvidenceStrength)
	assert.Equal(t, 72.0, resp.Scores.Benchmark)
	assert.Equal(t, 92.0, resp.Scores.CV)
	assert.Equal(t, 87.0, resp.Scores.CoverLetter)
	assert.Equal(t, 72.0, resp.Scores.Overall)
	assert.Equal(t, 100.0, resp.Scores.Gaps)
}

func TestFormatResponseScoresCapAt100(t *testing.T) {
	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(95),
		JobTitle:  "Backend Engineer",
	})

	assert.Equal(t, 100.0, resp.Scores.ATSReadiness)
	assert.Equal(t, 100.0, resp.Scores.RecruiterScan)
	assert.Equal(t, 100.0, resp.Scores.CV)
	assert.Equal(t, 100.0, resp.Scores.CoverLetter)
}

func TestFormatResponseGapsScoreFloor(t *testing.T) {
	analysis := baseAnalysis(40)
	for _, skill := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"} {
		analysis.SkillGaps = append(analysis.SkillGaps, models.SkillGap{Skill: skill})
	}

	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  analysis,
		JobTitle:  "Backend Engineer",
	})

	// 13 missing keywords: 100 - 104 floors at zero
	assert.Equal(t, 0.0, resp.Scores.Gaps)
}

func TestFormatResponseTopFix(t *testing.T) {
	analysis := baseAnalysis(60)
	analysis.SkillGaps = []models.SkillGap{{Skill: "Kubernetes"}}

	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  analysis,
		JobTitle:  "SRE",
	})
	assert.Equal(t, `Add proof for "Kubernetes" — include a concrete project or measurable result.`, resp.Scores.TopFix)

	clean := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(60),
		JobTitle:  "SRE",
	})
	assert.Equal(t, "Your profile is strong! Polish your summary and lead with your best proof point.", clean.Scores.TopFix)
}

func TestFormatResponseSeverityMapping(t *testing.T) {
	analysis := baseAnalysis(50)
	analysis.SkillGaps = []models.SkillGap{
		{Skill: "a", GapSeverity: "critical"},
		{Skill: "b", GapSeverity: "major"},
		{Skill: "c", GapSeverity: "moderate"},
		{Skill: "d", GapSeverity: "minor"},
		{Skill: "e", GapSeverity: "weird"},
	}

	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  analysis,
		JobTitle:  "SRE",
	})

	severities := make([]string, 0, len(resp.Gaps.Gaps))
	for _, g := range resp.Gaps.Gaps {
		severities = append(severities, g.Severity)
	}
	assert.Equal(t, []string{"high", "high", "medium", "low", "medium"}, severities)
}

func TestFormatResponseBenchmarkRubric(t *testing.T) {
	benchmark := &models.BenchmarkProfile{
		IdealSkills: []models.IdealSkill{
			{Name: "Go", Level: "expert", Importance: "critical"},
			{Name: "", Level: "", Importance: ""},
		},
	}
	benchmark.Normalize()

	resp := FormatResponse(FormatterInput{
		Benchmark: benchmark,
		Analysis:  baseAnalysis(50),
		Keywords:  []string{"go"},
		JobTitle:  "Backend Engineer",
	})

	assert.Equal(t, "AI-generated benchmark for Backend Engineer", resp.Benchmark.Summary)
	assert.Equal(t, []string{
		"Go — expert level (critical)",
		"Unknown — required level (important)",
	}, resp.Benchmark.Rubric)
	assert.Equal(t, []string{"go"}, resp.Benchmark.Keywords)
}

func TestFormatResponseScorecardDimensions(t *testing.T) {
	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(70),
		JobTitle:  "SRE",
	})

	assert.Len(t, resp.Scorecard.Dimensions, 4)
	assert.Equal(t, "Match", resp.Scorecard.Dimensions[0].Name)
	assert.Equal(t, "70% keyword alignment", resp.Scorecard.Dimensions[0].Feedback)
	assert.Equal(t, "85% ATS-optimized", resp.Scorecard.Dimensions[1].Feedback)
	assert.Equal(t, "80% scan-friendly", resp.Scorecard.Dimensions[2].Feedback)
	assert.Equal(t, "Add evidence to boost this score", resp.Scorecard.Dimensions[3].Feedback)
	assert.Equal(t, resp.Scores.Overall, resp.Scorecard.Overall)
}

func TestFormatResponseLearningPlanProjection(t *testing.T) {
	roadmap := &models.RoadmapPlan{
		Roadmap: models.Roadmap{
			SkillDevelopment: []models.SkillDevelopment{
				{Skill: "Kubernetes"}, {Skill: "Terraform"}, {Skill: ""},
			},
			WeeklyPlans: []models.WeeklyPlan{
				{Week: 0, Theme: "", Activities: []models.RoadmapActivity{{Activity: "Read docs"}}},
				{Week: 2, Theme: "Build", Goals: []string{"Ship"}},
			},
		},
		LearningResources: []models.LearningResource{
			{Title: "Course", SkillCovered: "Kubernetes", Duration: "4 weeks"},
			{Title: "Book", Skill: "Terraform"},
		},
	}
	roadmap.Normalize()

	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(50),
		Roadmap:   roadmap,
		JobTitle:  "SRE",
	})

	assert.Equal(t, []string{"Kubernetes", "Terraform"}, resp.LearningPlan.Focus)

	assert.Equal(t, 1, resp.LearningPlan.Plan[0].Week)
	assert.Equal(t, "Week 1", resp.LearningPlan.Plan[0].Theme)
	assert.Equal(t, []string{"Read docs"}, resp.LearningPlan.Plan[0].Tasks)
	assert.Equal(t, 2, resp.LearningPlan.Plan[1].Week)
	assert.Equal(t, "Build", resp.LearningPlan.Plan[1].Theme)

	assert.Equal(t, "Kubernetes", resp.LearningPlan.Resources[0].Skill)
	assert.Equal(t, "4 weeks", resp.LearningPlan.Resources[0].Timebox)
	assert.Equal(t, "Terraform", resp.LearningPlan.Resources[1].Skill)
	assert.Equal(t, "Self-paced", resp.LearningPlan.Resources[1].Timebox)
}

func TestFormatResponseNilRoadmapAndValidation(t *testing.T) {
	resp := FormatResponse(FormatterInput{
		Benchmark: &models.BenchmarkProfile{},
		Analysis:  baseAnalysis(50),
		JobTitle:  "SRE",
	})

	assert.NotNil(t, resp.LearningPlan.Plan)
	assert.Empty(t, resp.LearningPlan.Plan)
	assert.NotNil(t, resp.Validation)
	assert.Empty(t, resp.Validation)
}
