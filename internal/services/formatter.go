package services

import (
	"fmt"

	"careerpilot/internal/models"
)

// FormatterInput carries everything the response formatter needs. Roadmap may
// be nil when the consultant stage failed.
type FormatterInput struct {
	Benchmark     *models.BenchmarkProfile
	Analysis      *models.GapAnalysis
	Roadmap       *models.RoadmapPlan
	CVHTML        string
	CLHTML        string
	PSHTML        string
	PortfolioHTML string
	Validation    map[string]models.DocumentValidation
	Keywords      []string
	JobTitle      string
}

// FormatResponse deterministically projects stage outputs into the response
// contract. It performs no model calls and never fails.
func FormatResponse(in FormatterInput) *models.PipelineResponse {
	benchmark := formatBenchmark(in.Benchmark, in.Keywords, in.JobTitle)
	gaps := formatGaps(in.Analysis)
	learningPlan := formatLearningPlan(in.Roadmap)

	match := models.ClampScore(in.Analysis.CompatibilityScore)
	scores := models.ScoreSet{
		Match:            match,
		ATSReadiness:     capAt100(match + 15),
		RecruiterScan:    capAt100(match + 10),
		EvidenceStrength: 0,
		TopFix:           deriveTopFix(gaps.MissingKeywords),
		Benchmark:        match,
		Gaps:             gapsScore(len(gaps.MissingKeywords)),
		CV:               capAt100(match + 20),
		CoverLetter:      capAt100(match + 15),
		Overall:          match,
	}

	scorecard := models.Scorecard{
		Overall: scores.Overall,
		Dimensions: []models.ScoreDimension{
			{Name: "Match", Score: scores.Match, Feedback: fmt.Sprintf("%.0f%% keyword alignment", scores.Match)},
			{Name: "ATS Readiness", Score: scores.ATSReadiness, Feedback: fmt.Sprintf("%.0f%% ATS-optimized", scores.ATSReadiness)},
			{Name: "Recruiter Scan", Score: scores.RecruiterScan, Feedback: fmt.Sprintf("%.0f%% scan-friendly", scores.RecruiterScan)},
			{Name: "Evidence Strength", Score: scores.EvidenceStrength, Feedback: "Add evidence to boost this score"},
		},
		Match:            scores.Match,
		ATSReadiness:     scores.ATSReadiness,
		RecruiterScan:    scores.RecruiterScan,
		EvidenceStrength: scores.EvidenceStrength,
		TopFix:           scores.TopFix,
		UpdatedAt:        nil,
	}

	validation := in.Validation
	if validation == nil {
		validation = map[string]models.DocumentValidation{}
	}

	return &models.PipelineResponse{
		Benchmark:             benchmark,
		Gaps:                  gaps,
		LearningPlan:          learningPlan,
		CVHTML:                in.CVHTML,
		CoverLetterHTML:       in.CLHTML,
		PersonalStatementHTML: in.PSHTML,
		PortfolioHTML:         in.PortfolioHTML,
		Validation:            validation,
		Scorecard:             scorecard,
		Scores:                scores,
	}
}

func formatBenchmark(b *models.BenchmarkProfile, keywords []string, jobTitle string) models.BenchmarkView {
	summary := b.IdealProfile.Summary
	if summary == "" {
		summary = fmt.Sprintf("AI-generated benchmark for %s", jobTitle)
	}

	rubricSkills := b.IdealSkills
	if len(rubricSkills) > 10 {
		rubricSkills = rubricSkills[:10]
	}
	rubric := make([]string, 0, len(rubricSkills))
	for _, skill := range rubricSkills {
		name := skill.Name
		if name == "" {
			name = "Unknown"
		}
		level := skill.Level
		if level == "" {
			level = "required"
		}
		importance := skill.Importance
		if importance == "" {
			importance = models.ImportanceImportant
		}
		rubric = append(rubric, fmt.Sprintf("%s — %s level (%s)", name, level, importance))
	}

	if keywords == nil {
		keywords = []string{}
	}

	return models.BenchmarkView{
		Summary:         summary,
		Keywords:        keywords,
		Rubric:          rubric,
		IdealProfile:    b.IdealProfile,
		IdealSkills:     b.IdealSkills,
		IdealExperience: b.IdealExperience,
		ScoringWeights:  b.ScoringWeights,
		CreatedAt:       nil,
	}
}

func formatGaps(analysis *models.GapAnalysis) models.GapsView {
	missing := make([]string, 0, len(analysis.SkillGaps))
	gapItems := make([]models.GapItemView, 0, len(analysis.SkillGaps))
	for _, g := range analysis.SkillGaps {
		if g.Skill != "" {
			missing = append(missing, g.Skill)
		}
		current := g.CurrentLevel
		if current == "" {
			current = "?"
		}
		required := g.RequiredLevel
		if required == "" {
			required = "required"
		}
		gapItems = append(gapItems, models.GapItemView{
			Dimension:  g.Skill,
			Gap:        fmt.Sprintf("%s → %s", current, required),
			Severity:   mapSeverity(g.GapSeverity),
			Suggestion: g.Recommendation,
		})
	}

	strengths := make([]string, 0, len(analysis.Strengths))
	for _, s := range analysis.Strengths {
		label := s.Area
		if label == "" {
			label = s.Description
		}
		strengths = append(strengths, label)
	}

	recommendations := make([]string, 0, len(analysis.Recommendations))
	for _, r := range analysis.Recommendations {
		label := r.Title
		if label == "" {
			label = r.Description
		}
		recommendations = append(recommendations, label)
	}

	return models.GapsView{
		MissingKeywords:    missing,
		Strengths:          strengths,
		Recommendations:    recommendations,
		Gaps:               gapItems,
		Summary:            analysis.ExecutiveSummary,
		Compatibility:      analysis.CompatibilityScore,
		CategoryScores:     analysis.CategoryScores,
		QuickWins:          analysis.QuickWins,
		InterviewReadiness: analysis.InterviewReadiness,
	}
}

func formatLearningPlan(roadmap *models.RoadmapPlan) models.LearningPlanView {
	plan := models.LearningPlanView{
		Focus:     []string{},
		Plan:      []models.WeekPlanView{},
		Resources: []models.ResourceView{},
	}
	if roadmap == nil {
		return plan
	}

	skillDev := roadmap.Roadmap.SkillDevelopment
	if len(skillDev) > 6 {
		skillDev = skillDev[:6]
	}
	for _, sd := range skillDev {
		if sd.Skill != "" {
			plan.Focus = append(plan.Focus, sd.Skill)
		}
	}

	weeklyPlans := roadmap.Roadmap.WeeklyPlans
	if len(weeklyPlans) > 12 {
		weeklyPlans = weeklyPlans[:12]
	}
	for i, wp := range weeklyPlans {
		week := wp.Week
		if week == 0 {
			week = i + 1
		}
		theme := wp.Theme
		if theme == "" {
			theme = fmt.Sprintf("Week %d", i+1)
		}
		goals := wp.Goals
		if goals == nil {
			goals = []string{}
		}
		tasks := make([]string, 0, len(wp.Activities))
		for _, a := range wp.Activities {
			tasks = append(tasks, a.Activity)
		}
		plan.Plan = append(plan.Plan, models.WeekPlanView{
			Week:     week,
			Theme:    theme,
			Outcomes: goals,
			Tasks:    tasks,
			Goals:    goals,
		})
	}

	resources := roadmap.LearningResources
	if len(resources) > 12 {
		resources = resources[:12]
	}
	for _, r := range resources {
		skill := r.SkillCovered
		if skill == "" {
			skill = r.Skill
		}
		timebox := r.Duration
		if timebox == "" {
			timebox = "Self-paced"
		}
		plan.Resources = append(plan.Resources, models.ResourceView{
			Skill:    skill,
			Title:    r.Title,
			Provider: r.Provider,
			Timebox:  timebox,
			URL:      r.URL,
		})
	}

	return plan
}

// mapSeverity collapses analyzer severities into the three display buckets.
func mapSeverity(severity string) string {
	switch severity {
	case models.SeverityCritical, models.SeverityMajor:
		return "high"
	case models.SeverityModerate:
		return "medium"
	case models.SeverityMinor:
		return "low"
	default:
		return "medium"
	}
}

func deriveTopFix(missing []string) string {
	if len(missing) > 0 {
		return fmt.Sprintf("Add proof for %q — include a concrete project or measurable result.", missing[0])
	}
	return "Your profile is strong! Polish your summary and lead with your best proof point."
}

func gapsScore(missingCount int) float64 {
	score := 100 - float64(missingCount)*8
	if score < 0 {
		return 0
	}
	return score
}

func capAt100(score float64) float64 {
	if score > 100 {
		return 100
	}
	return score
}
