package services

import (
	"fmt"
	"strings"
)

// PromptBuilder assembles the prompts for every generation stage. Prompt
// wording is a content concern; the structural contract is the JSON schema
// embedded in each structured prompt, which the stage structs mirror.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const resumeParserSystem = `You are an expert resume parser and career analyst. Your task is to extract structured information from resumes with high accuracy.

Extract all relevant information and return it in a structured JSON format. Be thorough but accurate - only include information that is actually present in the resume.

For skills, determine the level based on context clues:
- "expert", "advanced", "lead", "architect" → "expert"
- "proficient", "experienced", "senior" → "advanced"
- "familiar", "working knowledge", "junior" → "intermediate"
- "basic", "learning", "exposure" → "beginner"

For experience, calculate approximate years at each position based on dates provided.

Return ONLY valid JSON with no additional text or markdown.`

// BuildResumeParserPrompt creates the prompt for the resume profiler stage.
func (pb *PromptBuilder) BuildResumeParserPrompt(resumeText string) string {
	return fmt.Sprintf(`Parse the following resume and extract all information into this exact JSON structure:

{
  "name": "Full Name",
  "title": "Current or Target Job Title",
  "summary": "Professional summary or objective",
  "contact_info": {
    "email": "email@example.com",
    "phone": "+1234567890",
    "location": "City, State/Country",
    "linkedin": "linkedin.com/in/profile",
    "github": "github.com/username",
    "website": "personal website"
  },
  "skills": [
    {"name": "Skill Name", "level": "beginner|intermediate|advanced|expert", "years": 3.5, "category": "technical|soft|language|tool"}
  ],
  "experience": [
    {
      "company": "Company Name",
      "title": "Job Title",
      "location": "City, Country",
      "start_date": "Month Year",
      "end_date": "Month Year or Present",
      "duration": "2 years 3 months",
      "is_current": false,
      "description": "Role description",
      "achievements": ["Achievement 1", "Achievement 2"],
      "technologies": ["Tech 1", "Tech 2"]
    }
  ],
  "education": [
    {"institution": "University Name", "degree": "Degree Type", "field": "Field of Study", "start_date": "Year", "end_date": "Year", "gpa": "3.8/4.0", "achievements": ["Honor"]}
  ],
  "certifications": [
    {"name": "Certification Name", "issuer": "Issuing Organization", "date": "Month Year", "expiry": "Month Year", "credential_id": "ID123", "url": "verification URL"}
  ],
  "projects": [
    {"name": "Project Name", "description": "Project description", "role": "Your role", "technologies": ["Tech 1"], "url": "project URL", "achievements": ["Outcome 1"]}
  ],
  "languages": [
    {"language": "English", "proficiency": "native|fluent|professional|conversational|basic"}
  ],
  "achievements": ["Notable achievement or award"]
}

RESUME TEXT:
---
%s
---

Parse this resume carefully. Include only information that is actually present. Use null for missing fields.
Return ONLY the JSON object, no other text.`, resumeText)
}

const benchmarkSystem = `You are an elite career strategist and talent acquisition expert with deep knowledge of:
- Industry hiring standards and expectations
- What makes candidates stand out to recruiters
- Realistic career progressions and achievements
- Current market demands and skill requirements

Your task is to create a comprehensive benchmark profile representing the IDEAL candidate for a specific role.
This benchmark should be realistic, achievable, and represent what a top-tier candidate would look like.

Be specific, realistic, and thorough. Use real company names, realistic achievements, and authentic career progressions.`

// BuildIdealProfilePrompt creates the prompt for the ideal candidate profile.
func (pb *PromptBuilder) BuildIdealProfilePrompt(jobTitle, company, jobDescription string) string {
	return fmt.Sprintf(`Create a comprehensive IDEAL CANDIDATE PROFILE for this job:

JOB TITLE: %s
COMPANY: %s
JOB DESCRIPTION:
%s

Create a detailed, realistic profile of the perfect candidate. Return ONLY valid JSON:

{
  "ideal_profile": {
    "name": "Alex Johnson",
    "title": "Senior [Role Title]",
    "years_experience": 7,
    "summary": "Compelling 3-4 sentence professional summary",
    "key_differentiators": ["What makes this candidate exceptional"],
    "career_trajectory": "Brief description of ideal career path"
  },
  "ideal_skills": [
    {"name": "Skill Name", "level": "expert|advanced", "years": 5, "category": "technical|soft|domain", "importance": "critical|important|preferred", "proficiency_details": "Specific examples of expertise"}
  ],
  "ideal_experience": [
    {"company": "Real Company Name", "title": "Job Title", "duration": "3 years", "location": "City, Country", "description": "Role overview", "key_achievements": ["Quantified achievement"], "technologies": ["Relevant tech"], "relevance_to_role": "Why this experience matters"}
  ],
  "ideal_education": [
    {"institution": "Top university name", "degree": "Degree type", "field": "Field of study", "relevance": "Why this education matters"}
  ],
  "ideal_certifications": [
    {"name": "Certification name", "issuer": "Issuing body", "importance": "required|highly_recommended|nice_to_have", "relevance": "Why this cert matters"}
  ],
  "soft_skills": [
    {"skill": "Leadership", "evidence": "How this would be demonstrated", "importance": "critical|important"}
  ],
  "industry_knowledge": [
    {"area": "Domain knowledge area", "depth": "expert|proficient", "application": "How it applies to the role"}
  ],
  "scoring_weights": {
    "technical_skills": 0.30,
    "experience": 0.25,
    "education": 0.10,
    "certifications": 0.10,
    "soft_skills": 0.15,
    "industry_knowledge": 0.10
  }
}

Create a realistic, achievable benchmark that represents the top 10%% of candidates for this role.`, jobTitle, company, jobDescription)
}

// BuildIdealCVPrompt creates the prompt for the ideal candidate's CV.
func (pb *PromptBuilder) BuildIdealCVPrompt(idealProfile, jobTitle, company string) string {
	return fmt.Sprintf(`Create a professional CV for this ideal candidate profile:

IDEAL PROFILE:
%s

TARGET JOB:
%s at %s

Write a complete, professional CV in markdown format. Include:

1. **Header** - Name, title, contact info
2. **Professional Summary** - Compelling 3-4 sentences
3. **Core Competencies** - Key skills in a grid format
4. **Professional Experience** - 3-4 positions with achievements
5. **Education** - Degrees and relevant coursework
6. **Certifications** - Professional credentials
7. **Projects** - 2-3 notable projects if applicable

Use specific metrics, real company names, and quantified achievements.
Return ONLY the CV content in markdown format.`, idealProfile, jobTitle, company)
}

// BuildIdealCoverLetterPrompt creates the prompt for the ideal cover letter.
func (pb *PromptBuilder) BuildIdealCoverLetterPrompt(idealProfile, jobTitle, company, companyInfo string) string {
	return fmt.Sprintf(`Write a compelling cover letter for this ideal candidate:

IDEAL PROFILE:
%s

TARGET POSITION: %s
TARGET COMPANY: %s
COMPANY INFO: %s

Write a professional, personalized cover letter that:
1. Opens with a compelling hook showing genuine interest
2. Demonstrates deep knowledge of the company
3. Connects experience to the specific role requirements
4. Shows cultural fit and alignment with company values
5. Includes specific examples of relevant achievements
6. Closes with a clear call to action

The letter should be 3-4 paragraphs, professional yet personable.
Return ONLY the cover letter text in markdown format.`, idealProfile, jobTitle, company, companyInfo)
}

// BuildIdealPortfolioPrompt creates the prompt for the ideal portfolio.
func (pb *PromptBuilder) BuildIdealPortfolioPrompt(idealProfile, jobTitle string) string {
	return fmt.Sprintf(`Create a portfolio of projects for this ideal candidate:

IDEAL PROFILE:
%s

TARGET ROLE: %s

Create 3-4 realistic portfolio projects that demonstrate the skills needed for this role.

Return ONLY valid JSON:
{
  "projects": [
    {
      "name": "Project Name",
      "type": "personal|professional|open_source",
      "description": "What the project does",
      "role": "Your contribution/role",
      "problem_solved": "Business/technical problem addressed",
      "technologies": ["Tech stack used"],
      "key_features": ["Notable features"],
      "outcomes": ["Measurable results or impact"],
      "challenges": ["Technical challenges overcome"],
      "learnings": ["Key takeaways"],
      "url": "GitHub or demo URL placeholder"
    }
  ]
}

Projects should be realistic, relevant, and demonstrate expertise.`, idealProfile, jobTitle)
}

// BuildIdealCaseStudiesPrompt creates the prompt for the ideal case studies.
func (pb *PromptBuilder) BuildIdealCaseStudiesPrompt(idealProfile, jobTitle, company string) string {
	return fmt.Sprintf(`Create professional case studies for this ideal candidate:

IDEAL PROFILE:
%s

TARGET ROLE: %s
TARGET COMPANY: %s

Create 2 detailed case studies showcasing problem-solving abilities.

Return ONLY valid JSON:
{
  "case_studies": [
    {
      "title": "Case Study Title",
      "company": "Where this happened",
      "role": "Your role",
      "duration": "Project duration",
      "context": {"situation": "Business context", "stakeholders": ["Who was involved"], "constraints": ["Time, budget, technical constraints"]},
      "problem": {"description": "Detailed problem statement", "impact": "Business impact", "root_causes": ["Underlying causes"]},
      "approach": {"methodology": "How you approached solving it", "steps": ["Step-by-step approach"], "tools_used": ["Technologies and tools"]},
      "solution": {"description": "What you built", "innovations": ["Novel approaches"], "implementation": "How it was rolled out"},
      "results": {"metrics": ["Quantified outcomes"], "business_impact": "Overall business value", "recognition": "Awards or acknowledgments"},
      "learnings": ["Key lessons learned"]
    }
  ]
}`, idealProfile, jobTitle, company)
}

// BuildIdealActionPlanPrompt creates the prompt for the ideal 90-day plan.
func (pb *PromptBuilder) BuildIdealActionPlanPrompt(idealProfile, jobTitle, company, companyInfo string) string {
	return fmt.Sprintf(`Create a 3-month action plan/presentation for this ideal candidate:

IDEAL PROFILE:
%s

TARGET ROLE: %s
TARGET COMPANY: %s
COMPANY INFO: %s

Create a comprehensive 90-day plan the candidate would present to show:
1. How they would ramp up in the role
2. Quick wins they would achieve
3. Strategic initiatives they would launch
4. How they would add value immediately

Return ONLY valid JSON:
{
  "action_plan": {
    "title": "90-Day Success Plan for [Role]",
    "executive_summary": "Overview of the plan",
    "objectives": ["Top 3-5 objectives"],
    "month_1": {"theme": "Learning & Quick Wins", "goals": ["Specific goals"], "activities": [{"activity": "What to do", "purpose": "Why it matters", "deliverable": "Expected output"}], "success_metrics": ["How to measure success"]},
    "month_2": {"theme": "Building & Contributing", "goals": ["Specific goals"], "activities": [{"activity": "What to do", "purpose": "Why it matters", "deliverable": "Expected output"}], "success_metrics": ["How to measure success"]},
    "month_3": {"theme": "Leading & Scaling", "goals": ["Specific goals"], "activities": [{"activity": "What to do", "purpose": "Why it matters", "deliverable": "Expected output"}], "success_metrics": ["How to measure success"]},
    "key_stakeholders": ["People to build relationships with"],
    "risks_and_mitigations": [{"risk": "Potential challenge", "mitigation": "How to address it"}],
    "long_term_vision": "Where this leads in 6-12 months"
  }
}`, idealProfile, jobTitle, company, companyInfo)
}

const gapAnalyzerSystem = `You are an expert career analyst and talent assessment specialist.

Your task is to objectively compare a candidate's profile against an ideal benchmark for a specific role.
Provide honest, constructive feedback that helps the candidate understand:
1. Where they stand relative to the ideal
2. Their specific gaps and how to close them
3. Their strengths they can leverage
4. Actionable steps to improve their candidacy

Be specific, realistic, and supportive. Use data-driven comparisons where possible.
Scores should be fair and reflect actual gaps, not inflated to make the candidate feel good.`

// BuildGapAnalysisPrompt creates the prompt for the full gap analysis.
func (pb *PromptBuilder) BuildGapAnalysisPrompt(userProfile, benchmark, jobTitle, company string) string {
	return fmt.Sprintf(`Perform a comprehensive gap analysis comparing this candidate to the ideal benchmark.

CANDIDATE PROFILE:
%s

IDEAL BENCHMARK:
%s

TARGET ROLE: %s at %s

Analyze every aspect and return ONLY valid JSON:

{
  "compatibility_score": 72,
  "readiness_level": "needs-work|competitive|strong-match|not-ready",
  "executive_summary": "2-3 sentence overview of the candidate's fit",
  "category_scores": {
    "technical_skills": {"score": 75, "weight": 0.30, "weighted_score": 22.5, "summary": "Brief assessment"},
    "experience": {"score": 65, "weight": 0.25, "weighted_score": 16.25, "summary": "Brief assessment"},
    "education": {"score": 80, "weight": 0.10, "weighted_score": 8.0, "summary": "Brief assessment"},
    "certifications": {"score": 40, "weight": 0.10, "weighted_score": 4.0, "summary": "Brief assessment"},
    "soft_skills": {"score": 70, "weight": 0.15, "weighted_score": 10.5, "summary": "Brief assessment"},
    "projects_portfolio": {"score": 60, "weight": 0.10, "weighted_score": 6.0, "summary": "Brief assessment"}
  },
  "skill_gaps": [
    {"skill": "Skill name", "required_level": "expert", "current_level": "intermediate", "gap_severity": "critical|major|moderate|minor", "importance_for_role": "critical|important|preferred", "recommendation": "Specific steps to close the gap", "resources": ["Course/book/resource suggestions"], "estimated_time_to_close": "3-6 months"}
  ],
  "experience_gaps": [
    {"area": "Leadership experience", "required": "3+ years leading teams", "current": "1 year leading team of 2", "gap_severity": "major", "recommendation": "How to gain this experience", "alternatives": ["Ways to demonstrate this without direct experience"]}
  ],
  "education_gaps": [
    {"requirement": "What's required", "current_status": "What candidate has", "gap_severity": "minor|moderate|major", "recommendation": "How to address", "alternatives": ["Alternative qualifications"]}
  ],
  "certification_gaps": [
    {"certification": "AWS Solutions Architect", "importance": "required|highly_recommended|nice_to_have", "recommendation": "Study path", "estimated_time": "2-3 months", "resources": ["Study resources"]}
  ],
  "project_gaps": [
    {"project_type": "Type of project needed", "importance": "critical|important|preferred", "current_status": "What candidate has", "recommendation": "Project idea to fill the gap", "skills_demonstrated": ["Skills this would show"]}
  ],
  "strengths": [
    {"area": "Strength area", "description": "What makes this a strength", "competitive_advantage": "How this helps the candidate stand out", "how_to_leverage": "How to emphasize this in applications"}
  ],
  "recommendations": [
    {"priority": 1, "category": "skills|experience|certification|project|other", "title": "Recommendation title", "description": "Detailed recommendation", "action_items": ["Step 1", "Step 2"], "estimated_effort": "2 weeks|1 month|3 months", "impact": "How much this will improve candidacy"}
  ],
  "quick_wins": ["Things candidate can do immediately to improve"],
  "long_term_investments": ["Longer-term improvements to consider"],
  "interview_readiness": {
    "ready_to_interview": false,
    "preparation_needed": ["Areas to prepare"],
    "potential_questions": ["Likely interview questions based on gaps"],
    "talking_points": ["Strengths to emphasize"]
  }
}

Be thorough and honest. The candidate needs accurate feedback to improve.`, userProfile, benchmark, jobTitle, company)
}

// joinNonEmpty joins non-empty trimmed strings with ", ". Used by the
// document prompts to render compact gap/strength projections.
func joinNonEmpty(items []string, fallback string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
