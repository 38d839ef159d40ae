package models

import "sort"

// Gap severities and readiness levels returned by the gap analyzer.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityModerate = "moderate"
	SeverityMinor    = "minor"

	ReadinessNeedsWork   = "needs-work"
	ReadinessCompetitive = "competitive"
	ReadinessStrongMatch = "strong-match"
	ReadinessNotReady    = "not-ready"
)

type CategoryScore struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Summary       string  `json:"summary"`
}

type SkillGap struct {
	Skill                string   `json:"skill"`
	RequiredLevel        string   `json:"required_level"`
	CurrentLevel         string   `json:"current_level"`
	GapSeverity          string   `json:"gap_severity"`
	ImportanceForRole    string   `json:"importance_for_role"`
	Recommendation       string   `json:"recommendation"`
	Resources            []string `json:"resources"`
	EstimatedTimeToClose string   `json:"estimated_time_to_close"`
}

type ExperienceGap struct {
	Area           string   `json:"area"`
	Required       string   `json:"required"`
	Current        string   `json:"current"`
	GapSeverity    string   `json:"gap_severity"`
	Recommendation string   `json:"recommendation"`
	Alternatives   []string `json:"alternatives"`
}

type EducationGap struct {
	Requirement    string   `json:"requirement"`
	CurrentStatus  string   `json:"current_status"`
	GapSeverity    string   `json:"gap_severity"`
	Recommendation string   `json:"recommendation"`
	Alternatives   []string `json:"alternatives"`
}

type CertificationGap struct {
	Certification  string   `json:"certification"`
	Importance     string   `json:"importance"`
	Recommendation string   `json:"recommendation"`
	EstimatedTime  string   `json:"estimated_time"`
	Resources      []string `json:"resources"`
}

type ProjectGap struct {
	ProjectType         string   `json:"project_type"`
	Importance          string   `json:"importance"`
	CurrentStatus       string   `json:"current_status"`
	Recommendation      string   `json:"recommendation"`
	SkillsDemonstrated  []string `json:"skills_demonstrated"`
}

type Strength struct {
	Area                 string `json:"area"`
	Description          string `json:"description"`
	CompetitiveAdvantage string `json:"competitive_advantage"`
	HowToLeverage        string `json:"how_to_leverage"`
}

// Recommendation priority is a pointer so that "no priority given" is
// distinguishable from priority 0; missing priorities sort last.
type Recommendation struct {
	Priority        *int     `json:"priority"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ActionItems     []string `json:"action_items"`
	EstimatedEffort string   `json:"estimated_effort"`
	Impact          string   `json:"impact"`
}

type InterviewReadiness struct {
	ReadyToInterview   bool     `json:"ready_to_interview"`
	PreparationNeeded  []string `json:"preparation_needed"`
	PotentialQuestions []string `json:"potential_questions"`
	TalkingPoints      []string `json:"talking_points"`
}

// GapAnalysis is the scored comparison of a candidate profile against a
// benchmark. Produced exactly once per (profile, benchmark) pair per request.
type GapAnalysis struct {
	CompatibilityScore  float64                  `json:"compatibility_score"`
	ReadinessLevel      string                   `json:"readiness_level"`
	ExecutiveSummary    string                   `json:"executive_summary"`
	CategoryScores      map[string]CategoryScore `json:"category_scores"`
	SkillGaps           []SkillGap               `json:"skill_gaps"`
	ExperienceGaps      []ExperienceGap          `json:"experience_gaps"`
	EducationGaps       []EducationGap           `json:"education_gaps"`
	CertificationGaps   []CertificationGap       `json:"certification_gaps"`
	ProjectGaps         []ProjectGap             `json:"project_gaps"`
	Strengths           []Strength               `json:"strengths"`
	Recommendations     []Recommendation         `json:"recommendations"`
	QuickWins           []string                 `json:"quick_wins"`
	LongTermInvestments []string                 `json:"long_term_investments"`
	InterviewReadiness  InterviewReadiness       `json:"interview_readiness"`
}

// Normalize enforces the gap-analysis invariants regardless of what the model
// returned: the compatibility score is clamped into [0,100], every collection
// is non-nil, the readiness level falls back to "needs-work", and
// recommendations are sorted ascending by priority with unprioritized items
// last. Idempotent.
func (g *GapAnalysis) Normalize() {
	g.CompatibilityScore = ClampScore(g.CompatibilityScore)

	switch g.ReadinessLevel {
	case ReadinessNeedsWork, ReadinessCompetitive, ReadinessStrongMatch, ReadinessNotReady:
	default:
		g.ReadinessLevel = ReadinessNeedsWork
	}

	if g.CategoryScores == nil {
		g.CategoryScores = map[string]CategoryScore{}
	}
	if g.SkillGaps == nil {
		g.SkillGaps = []SkillGap{}
	}
	if g.ExperienceGaps == nil {
		g.ExperienceGaps = []ExperienceGap{}
	}
	if g.EducationGaps == nil {
		g.EducationGaps = []EducationGap{}
	}
	if g.CertificationGaps == nil {
		g.CertificationGaps = []CertificationGap{}
	}
	if g.ProjectGaps == nil {
		g.ProjectGaps = []ProjectGap{}
	}
	if g.Strengths == nil {
		g.Strengths = []Strength{}
	}
	if g.Recommendations == nil {
		g.Recommendations = []Recommendation{}
	}
	if g.QuickWins == nil {
		g.QuickWins = []string{}
	}
	if g.LongTermInvestments == nil {
		g.LongTermInvestments = []string{}
	}
	if g.InterviewReadiness.PreparationNeeded == nil {
		g.InterviewReadiness.PreparationNeeded = []string{}
	}
	if g.InterviewReadiness.PotentialQuestions == nil {
		g.InterviewReadiness.PotentialQuestions = []string{}
	}
	if g.InterviewReadiness.TalkingPoints == nil {
		g.InterviewReadiness.TalkingPoints = []string{}
	}

	sort.SliceStable(g.Recommendations, func(i, j int) bool {
		pi, pj := g.Recommendations[i].Priority, g.Recommendations[j].Priority
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return *pi < *pj
	})
}

// ClampScore clamps a score into the [0,100] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
