package models

type Milestone struct {
	ID              string   `json:"id"`
	Week            int      `json:"week"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tasks           []string `json:"tasks"`
	Deliverables    []string `json:"deliverables"`
	SuccessCriteria []string `json:"success_criteria"`
	SkillsGained    []string `json:"skills_gained"`
}

type RoadmapActivity struct {
	Activity  string   `json:"activity"`
	Duration  string   `json:"duration"`
	Purpose   string   `json:"purpose"`
	Resources []string `json:"resources"`
}

type WeeklyPlan struct {
	Week          int               `json:"week"`
	Theme         string            `json:"theme"`
	Goals         []string          `json:"goals"`
	HoursRequired float64           `json:"hours_required"`
	Activities    []RoadmapActivity `json:"activities"`
	Checkpoint    string            `json:"checkpoint"`
}

type SkillDevelopment struct {
	Skill            string           `json:"skill"`
	CurrentLevel     string           `json:"current_level"`
	TargetLevel      string           `json:"target_level"`
	Timeline         string           `json:"timeline"`
	LearningPath     []map[string]any `json:"learning_path"`
	PracticeProjects []string         `json:"practice_projects"`
	Assessment       string           `json:"assessment"`
}

type CertificationPath struct {
	Certification string           `json:"certification"`
	Priority      string           `json:"priority"`
	Timeline      string           `json:"timeline"`
	StudyPlan     []map[string]any `json:"study_plan"`
	ExamTips      []string         `json:"exam_tips"`
	Cost          string           `json:"cost"`
}

type ProjectRecommendation struct {
	Title               string   `json:"title"`
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	SkillsDemonstrated  []string `json:"skills_demonstrated"`
	Timeline            string   `json:"timeline"`
	ImplementationSteps []string `json:"implementation_steps"`
	PresentationTips    []string `json:"presentation_tips"`
}

type Roadmap struct {
	Title                  string                  `json:"title"`
	Overview               string                  `json:"overview"`
	TotalDuration          string                  `json:"total_duration"`
	ExpectedOutcome        string                  `json:"expected_outcome"`
	CommitmentRequired     string                  `json:"commitment_required"`
	Milestones             []Milestone             `json:"milestones"`
	WeeklyPlans            []WeeklyPlan            `json:"weekly_plans"`
	SkillDevelopment       []SkillDevelopment      `json:"skill_development"`
	CertificationPath      []CertificationPath     `json:"certification_path"`
	ProjectRecommendations []ProjectRecommendation `json:"project_recommendations"`
	NetworkingPlan         map[string]any          `json:"networking_plan"`
	InterviewPrep          map[string]any          `json:"interview_prep"`
	ProgressTracking       map[string]any          `json:"progress_tracking"`
}

type LearningResource struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Provider     string `json:"provider"`
	SkillCovered string `json:"skill_covered"`
	Skill        string `json:"skill"`
	Duration     string `json:"duration"`
	Cost         string `json:"cost"`
	Priority     string `json:"priority"`
	Notes        string `json:"notes"`
}

// RoadmapPlan is the career consultant's multi-week improvement plan.
type RoadmapPlan struct {
	Roadmap           Roadmap            `json:"roadmap"`
	LearningResources []LearningResource `json:"learning_resources"`
	ToolsRecommended  []map[string]any   `json:"tools_recommended"`
	MotivationTips    []string           `json:"motivation_tips"`
	CommonPitfalls    []map[string]any   `json:"common_pitfalls"`
}

// Normalize fills missing top-level collections with typed defaults.
// Idempotent.
func (r *RoadmapPlan) Normalize() {
	if r.Roadmap.Milestones == nil {
		r.Roadmap.Milestones = []Milestone{}
	}
	if r.Roadmap.WeeklyPlans == nil {
		r.Roadmap.WeeklyPlans = []WeeklyPlan{}
	}
	if r.Roadmap.SkillDevelopment == nil {
		r.Roadmap.SkillDevelopment = []SkillDevelopment{}
	}
	if r.Roadmap.CertificationPath == nil {
		r.Roadmap.CertificationPath = []CertificationPath{}
	}
	if r.Roadmap.ProjectRecommendations == nil {
		r.Roadmap.ProjectRecommendations = []ProjectRecommendation{}
	}
	if r.Roadmap.NetworkingPlan == nil {
		r.Roadmap.NetworkingPlan = map[string]any{}
	}
	if r.Roadmap.InterviewPrep == nil {
		r.Roadmap.InterviewPrep = map[string]any{}
	}
	if r.Roadmap.ProgressTracking == nil {
		r.Roadmap.ProgressTracking = map[string]any{}
	}
	if r.LearningResources == nil {
		r.LearningResources = []LearningResource{}
	}
	if r.ToolsRecommended == nil {
		r.ToolsRecommended = []map[string]any{}
	}
	if r.MotivationTips == nil {
		r.MotivationTips = []string{}
	}
	if r.CommonPitfalls == nil {
		r.CommonPitfalls = []map[string]any{}
	}
}

// ProjectSuggestion is one project idea returned by the consultant's
// suggest-projects operation.
type ProjectSuggestion struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SkillsAddressed []string `json:"skills_addressed"`
	Difficulty      string   `json:"difficulty"`
	EstimatedTime   string   `json:"estimated_time"`
	TechStack       []string `json:"tech_stack"`
	Steps           []string `json:"steps"`
	PortfolioValue  string   `json:"portfolio_value"`
}
