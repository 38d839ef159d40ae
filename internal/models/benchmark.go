package models

// Importance levels used by ideal skills.
const (
	ImportanceCritical  = "critical"
	ImportanceImportant = "important"
	ImportancePreferred = "preferred"
)

type IdealCandidate struct {
	Name               string   `json:"name"`
	Title              string   `json:"title"`
	YearsExperience    float64  `json:"years_experience"`
	Summary            string   `json:"summary"`
	KeyDifferentiators []string `json:"key_differentiators"`
	CareerTrajectory   string   `json:"career_trajectory"`
}

type IdealSkill struct {
	Name               string  `json:"name"`
	Level              string  `json:"level"`
	Years              float64 `json:"years"`
	Category           string  `json:"category"`
	Importance         string  `json:"importance"`
	ProficiencyDetails string  `json:"proficiency_details"`
}

type IdealExperience struct {
	Company         string   `json:"company"`
	Title           string   `json:"title"`
	Duration        string   `json:"duration"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	KeyAchievements []string `json:"key_achievements"`
	Technologies    []string `json:"technologies"`
	RelevanceToRole string   `json:"relevance_to_role"`
}

type IdealEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Relevance   string `json:"relevance"`
}

type IdealCertification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Importance string `json:"importance"`
	Relevance  string `json:"relevance"`
}

type SoftSkill struct {
	Skill      string `json:"skill"`
	Evidence   string `json:"evidence"`
	Importance string `json:"importance"`
}

type IndustryKnowledge struct {
	Area        string `json:"area"`
	Depth       string `json:"depth"`
	Application string `json:"application"`
}

// BenchmarkProfile is the synthesized "ideal candidate" for one
// (job title, company, job description) tuple. Immutable once produced
// within a request.
type BenchmarkProfile struct {
	IdealProfile        IdealCandidate       `json:"ideal_profile"`
	IdealSkills         []IdealSkill         `json:"ideal_skills"`
	IdealExperience     []IdealExperience    `json:"ideal_experience"`
	IdealEducation      []IdealEducation     `json:"ideal_education"`
	IdealCertifications []IdealCertification `json:"ideal_certifications"`
	SoftSkills          []SoftSkill          `json:"soft_skills"`
	IndustryKnowledge   []IndustryKnowledge  `json:"industry_knowledge"`
	ScoringWeights      map[string]float64   `json:"scoring_weights"`
}

// Normalize fills missing collections so downstream stages can read every
// field without existence checks. Idempotent.
func (b *BenchmarkProfile) Normalize() {
	if b.IdealSkills == nil {
		b.IdealSkills = []IdealSkill{}
	}
	if b.IdealExperience == nil {
		b.IdealExperience = []IdealExperience{}
	}
	if b.IdealEducation == nil {
		b.IdealEducation = []IdealEducation{}
	}
	if b.IdealCertifications == nil {
		b.IdealCertifications = []IdealCertification{}
	}
	if b.SoftSkills == nil {
		b.SoftSkills = []SoftSkill{}
	}
	if b.IndustryKnowledge == nil {
		b.IndustryKnowledge = []IndustryKnowledge{}
	}
	if b.ScoringWeights == nil {
		b.ScoringWeights = map[string]float64{}
	}
	if b.IdealProfile.KeyDifferentiators == nil {
		b.IdealProfile.KeyDifferentiators = []string{}
	}
}

// PortfolioProject is one project of the ideal candidate's portfolio.
type PortfolioProject struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Role          string   `json:"role"`
	ProblemSolved string   `json:"problem_solved"`
	Technologies  []string `json:"technologies"`
	KeyFeatures   []string `json:"key_features"`
	Outcomes      []string `json:"outcomes"`
	Challenges    []string `json:"challenges"`
	Learnings     []string `json:"learnings"`
	URL           string   `json:"url"`
}

// BenchmarkPackage is the complete benchmark: the ideal profile plus the full
// ideal application package generated sequentially on top of it.
type BenchmarkPackage struct {
	BenchmarkProfile
	IdealCV          string             `json:"ideal_cv"`
	IdealCoverLetter string             `json:"ideal_cover_letter"`
	IdealPortfolio   []PortfolioProject `json:"ideal_portfolio"`
	IdealCaseStudies []map[string]any   `json:"ideal_case_studies"`
	IdealActionPlan  map[string]any     `json:"ideal_action_plan"`
}
