package models

import "time"

// ValidationIssue is a single finding of the validator stage.
type ValidationIssue struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Suggestion  string `json:"suggestion"`
}

// ValidationReport is the validator's full verdict over one document.
type ValidationReport struct {
	IsValid      bool              `json:"is_valid"`
	QualityScore float64           `json:"quality_score"`
	Issues       []ValidationIssue `json:"issues"`
	Warnings     []string          `json:"warnings"`
	Improvements []string          `json:"improvements"`
}

func (v *ValidationReport) Normalize() {
	if v.Issues == nil {
		v.Issues = []ValidationIssue{}
	}
	if v.Warnings == nil {
		v.Warnings = []string{}
	}
	if v.Improvements == nil {
		v.Improvements = []string{}
	}
}

// DocumentValidation is the compact per-document validation block exposed in
// the pipeline response.
type DocumentValidation struct {
	Valid        bool    `json:"valid"`
	QualityScore float64 `json:"qualityScore"`
	Issues       int     `json:"issues"`
}

// BenchmarkView is the benchmark section of the response contract.
type BenchmarkView struct {
	Summary         string             `json:"summary"`
	Keywords        []string           `json:"keywords"`
	Rubric          []string           `json:"rubric"`
	IdealProfile    IdealCandidate     `json:"idealProfile"`
	IdealSkills     []IdealSkill       `json:"idealSkills"`
	IdealExperience []IdealExperience  `json:"idealExperience"`
	ScoringWeights  map[string]float64 `json:"scoringWeights"`
	CreatedAt       *time.Time         `json:"createdAt"`
}

// GapItemView is one normalized gap row for display.
type GapItemView struct {
	Dimension  string `json:"dimension"`
	Gap        string `json:"gap"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}

// GapsView is the normalized gap section of the response contract.
type GapsView struct {
	MissingKeywords    []string                 `json:"missingKeywords"`
	Strengths          []string                 `json:"strengths"`
	Recommendations    []string                 `json:"recommendations"`
	Gaps               []GapItemView            `json:"gaps"`
	Summary            string                   `json:"summary"`
	Compatibility      float64                  `json:"compatibility"`
	CategoryScores     map[string]CategoryScore `json:"categoryScores"`
	QuickWins          []string                 `json:"quickWins"`
	InterviewReadiness InterviewReadiness       `json:"interviewReadiness"`
}

type WeekPlanView struct {
	Week     int      `json:"week"`
	Theme    string   `json:"theme"`
	Outcomes []string `json:"outcomes"`
	Tasks    []string `json:"tasks"`
	Goals    []string `json:"goals"`
}

type ResourceView struct {
	Skill    string `json:"skill"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Timebox  string `json:"timebox"`
	URL      string `json:"url"`
}

type LearningPlanView struct {
	Focus     []string       `json:"focus"`
	Plan      []WeekPlanView `json:"plan"`
	Resources []ResourceView `json:"resources"`
}

// ScoreSet holds the derived scores, all deterministic functions of the
// compatibility score and missing-keyword count.
type ScoreSet struct {
	Match            float64 `json:"match"`
	ATSReadiness     float64 `json:"atsReadiness"`
	RecruiterScan    float64 `json:"recruiterScan"`
	EvidenceStrength float64 `json:"evidenceStrength"`
	TopFix           string  `json:"topFix"`
	Benchmark        float64 `json:"benchmark"`
	Gaps             float64 `json:"gaps"`
	CV               float64 `json:"cv"`
	CoverLetter      float64 `json:"coverLetter"`
	Overall          float64 `json:"overall"`
}

type ScoreDimension struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type Scorecard struct {
	Overall          float64          `json:"overall"`
	Dimensions       []ScoreDimension `json:"dimensions"`
	Match            float64          `json:"match"`
	ATSReadiness     float64          `json:"atsReadiness"`
	RecruiterScan    float64          `json:"recruiterScan"`
	EvidenceStrength float64          `json:"evidenceStrength"`
	TopFix           string           `json:"topFix"`
	UpdatedAt        *time.Time       `json:"updatedAt"`
}

// PipelineResponse is the single output contract of the generation pipeline.
type PipelineResponse struct {
	Benchmark             BenchmarkView                 `json:"benchmark"`
	Gaps                  GapsView                      `json:"gaps"`
	LearningPlan          LearningPlanView              `json:"learningPlan"`
	CVHTML                string                        `json:"cvHtml"`
	CoverLetterHTML       string                        `json:"coverLetterHtml"`
	PersonalStatementHTML string                        `json:"personalStatementHtml"`
	PortfolioHTML         string                        `json:"portfolioHtml"`
	Validation            map[string]DocumentValidation `json:"validation"`
	Scorecard             Scorecard                     `json:"scorecard"`
	Scores                ScoreSet                      `json:"scores"`
}
