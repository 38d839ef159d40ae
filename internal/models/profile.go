package models

import "strings"

// Closed enumerations for skill metadata. Anything the model returns outside
// these sets is remapped to the fallback value during Normalize.
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"

	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
	SkillCategoryLanguage  = "language"
	SkillCategoryTool      = "tool"
)

var validSkillLevels = map[string]bool{
	SkillLevelBeginner:     true,
	SkillLevelIntermediate: true,
	SkillLevelAdvanced:     true,
	SkillLevelExpert:       true,
}

var validSkillCategories = map[string]bool{
	SkillCategoryTechnical: true,
	SkillCategorySoft:      true,
	SkillCategoryLanguage:  true,
	SkillCategoryTool:      true,
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

type Skill struct {
	Name     string  `json:"name"`
	Level    string  `json:"level"`
	Years    float64 `json:"years"`
	Category string  `json:"category"`
}

type Experience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Duration     string   `json:"duration"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	GPA          string   `json:"gpa"`
	Achievements []string `json:"achievements"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Expiry       string `json:"expiry"`
	CredentialID string `json:"credential_id"`
	URL          string `json:"url"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	Achievements []string `json:"achievements"`
}

type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CandidateProfile is the structured view of a resume produced by the
// profiler stage. The zero value (plus Normalize) is the valid "no resume
// supplied" profile.
type CandidateProfile struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary"`
	ContactInfo    ContactInfo     `json:"contact_info"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
	Languages      []LanguageSkill `json:"languages"`
	Achievements   []string        `json:"achievements"`
}

// Normalize coerces the profile into its full declared shape: collections are
// never nil, nameless entries are dropped, and skill level/category values
// outside the closed enumerations fall back to intermediate/technical.
// Normalize is idempotent.
func (p *CandidateProfile) Normalize() {
	skills := make([]Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		s.Level = strings.ToLower(s.Level)
		if !validSkillLevels[s.Level] {
			s.Level = SkillLevelIntermediate
		}
		s.Category = strings.ToLower(s.Category)
		if !validSkillCategories[s.Category] {
			s.Category = SkillCategoryTechnical
		}
		skills = append(skills, s)
	}
	p.Skills = skills

	experience := make([]Experience, 0, len(p.Experience))
	for _, e := range p.Experience {
		if strings.TrimSpace(e.Company) == "" {
			continue
		}
		if e.Achievements == nil {
			e.Achievements = []string{}
		}
		if e.Technologies == nil {
			e.Technologies = []string{}
		}
		experience = append(experience, e)
	}
	p.Experience = experience

	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Languages == nil {
		p.Languages = []LanguageSkill{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
}

// EmptyCandidateProfile returns the typed-default profile used when no resume
// text is supplied.
func EmptyCandidateProfile() *CandidateProfile {
	p := &CandidateProfile{}
	p.Normalize()
	return p
}
