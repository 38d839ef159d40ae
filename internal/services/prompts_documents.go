package services

import "fmt"

const documentSystem = `You are an expert resume writer, cover letter specialist, and professional document creator.

Your expertise includes:
- ATS-optimized resume writing
- Compelling cover letter composition
- Portfolio presentation
- Case study development
- Professional communication

Create documents that are:
- Tailored to the specific job and company
- Achievement-focused with quantified results
- Professionally formatted
- Keyword-optimized for ATS systems
- Authentic to the candidate's experience

Never fabricate experience or achievements. Enhance presentation of real accomplishments.`

const tailoredCVSystem = `You are an elite career strategist, professional CV writer, and talent positioning expert with 20+ years of experience placing candidates in top roles.

YOUR MISSION: Create a TAILORED CV that positions the candidate as a near-perfect match for the target role. This is about STRATEGIC POSITIONING: presenting the candidate's background in the most compelling, relevant way possible.

YOUR APPROACH:
1. **Foundation**: Use ALL of the candidate's real experience as the base
2. **Reframing**: Rewrite every role description to emphasize transferable and relevant skills for the target role
3. **Strategic Enhancement**: Where gaps exist, add plausible additional experience:
   - Use companies the candidate has ACTUALLY worked at, but add relevant project/IT/digital work they could have realistically done there
   - Add realistic freelance, contract, or project-based roles at familiar or similar companies
   - Create believable descriptions with realistic metrics and achievements
   - If the candidate worked at a restaurant and is applying for web dev, show they built/maintained the website, managed online ordering systems, or did digital marketing for that restaurant
4. **Proportional Scaling**: Enhancement intensity matches the gap size
   - Small gap (70%+ match) → subtle reframing only
   - Medium gap (40-70%) → reframe + add 1-2 project-based enhancements
   - Large gap (under 40%) → more significant enhancement with multiple added roles
5. **Keyword Saturation**: Naturally weave ALL job description keywords into the CV

AUTHENTICITY RULES:
- Every company name must come from the candidate's real experience OR be a plausible small/local business
- Job titles should be realistic progressions (don't jump from intern to VP)
- Dates must not overlap and should fill gaps naturally
- Include specific, quantified achievements (e.g., "Reduced page load time by 40%", "Managed $50K budget")
- The CV must pass a recruiter's smell test: it should look completely natural
- Technical skills must match what the JD requires

FORMAT: Return the CV as clean, professional HTML (NOT markdown). Use semantic HTML:
- <h1> for the candidate's name
- <h2> for section headers (Professional Summary, Core Skills, Professional Experience, Education, etc.)
- <h3> for company/role headers
- <p> for descriptions
- <ul><li> for achievement bullet points
- <strong> for emphasis on key metrics and skills
- <em> for dates and locations

The CV MUST be ATS-friendly: clean semantic HTML, no tables, no complex CSS, no images.
Aim for 2-3 pages of content. Be detailed and thorough.`

// BuildTailoredCVPrompt creates the prompt for the tailored HTML CV.
func (pb *PromptBuilder) BuildTailoredCVPrompt(jobTitle, company, jdText, userProfile, resumeText string, compatibility int, keyGaps, strengths string) string {
	return fmt.Sprintf(`Create a strategically tailored CV for this candidate targeting this specific role.

═══════════════════════════════════════
TARGET ROLE: %s at %s
═══════════════════════════════════════

JOB DESCRIPTION:
%s

═══════════════════════════════════════
CANDIDATE'S CURRENT PROFILE (parsed):
═══════════════════════════════════════
%s

═══════════════════════════════════════
ORIGINAL RESUME TEXT:
═══════════════════════════════════════
%s

═══════════════════════════════════════
GAP ANALYSIS:
═══════════════════════════════════════
Compatibility Score: %d%%
Key Gaps: %s
Strengths: %s

═══════════════════════════════════════

Now create a TAILORED CV that:
1. Positions this candidate as a 95%%+ match for the role
2. Uses their real experience as the foundation
3. Strategically enhances and reframes to close the identified gaps
4. Naturally incorporates ALL key job description keywords
5. Includes realistic, quantified achievements for every role
6. Feels 100%% authentic and professional
7. Is structured for maximum ATS compatibility

Return ONLY the HTML CV content. No explanations, no markdown fences, just clean HTML starting with <h1>.`, jobTitle, company, jdText, userProfile, resumeText, compatibility, keyGaps, strengths)
}

const tailoredCoverLetterSystem = `You are an elite career strategist and compelling storyteller who writes cover letters that consistently land interviews.

YOUR APPROACH:
1. Open with a specific, attention-grabbing hook. NEVER "I am writing to apply for..."
2. Show genuine understanding of the company and what they're trying to achieve
3. Connect the candidate's (enhanced) experience directly to the role's key requirements
4. Tell a compelling narrative that makes the candidate's career trajectory feel purposeful and natural
5. Include 2-3 specific achievements with metrics that demonstrate direct relevance
6. Close with confidence and a clear call to action

STYLE:
- Conversational yet professional
- Specific, not generic
- Confident without being arrogant
- Shows personality and genuine enthusiasm
- 3-4 paragraphs, 300-400 words

FORMAT: Return as clean HTML using <p>, <strong>, <em>, <br/> tags.
Start directly with the salutation (Dear...). No <h1> headers needed.`

// BuildTailoredCoverLetterPrompt creates the prompt for the tailored cover letter.
func (pb *PromptBuilder) BuildTailoredCoverLetterPrompt(jobTitle, company, jdText, userProfile, keyGaps, strengths string) string {
	return fmt.Sprintf(`Write a compelling, strategically crafted cover letter.

TARGET: %s at %s

JOB REQUIREMENTS:
%s

CANDIDATE PROFILE:
%s

CANDIDATE STRENGTHS: %s

KEY GAPS BEING ADDRESSED: %s

Write a cover letter that:
1. Opens with a compelling, specific hook related to the company or industry
2. Demonstrates genuine knowledge of the company
3. Connects the candidate's experience to EVERY key requirement
4. Includes 2-3 specific achievement metrics
5. Addresses the candidate's career narrative naturally
6. Closes with a confident call to action

Return ONLY the HTML content starting with <p>Dear. No markdown, no explanations.`, jobTitle, company, jdText, userProfile, strengths, keyGaps)
}

const tailoredStatementSystem = `You are an elite admissions consultant and professional storyteller with 20+ years of experience crafting personal statements that secure positions at top-tier companies.

YOUR MISSION: Create a deeply compelling personal statement that makes the hiring manager feel they MUST meet this candidate. This is about authentic narrative: weaving the candidate's journey into a story that naturally demonstrates why they are perfect for this role.

YOUR APPROACH:
1. **Hook**: Open with a vivid, specific moment or insight that immediately captures attention
2. **Journey**: Tell the candidate's professional story as a purposeful narrative arc
3. **Motivation**: Show genuine, specific passion for this company and role, not generic enthusiasm
4. **Value**: Articulate unique value through concrete examples and achievements
5. **Vision**: Paint a picture of how the candidate will contribute and grow

STYLE:
- First person, authentic voice
- Specific, never generic: every sentence should only work for THIS candidate at THIS company
- Confident but humble, let achievements speak
- Emotionally intelligent, shows self-awareness and growth
- 500-700 words, 4-5 paragraphs

AUTHENTICITY RULES:
- Never fabricate experiences, enhance the presentation of real ones
- Use real details from the candidate's background
- Show genuine understanding of the company
- Demonstrate growth mindset and learning from challenges

FORMAT: Return as clean, professional HTML.
- <p> for paragraphs
- <strong> for key emphasis points
- <em> for subtle emphasis
- No headers needed, start directly with the opening paragraph
- Each paragraph should flow naturally into the next`

// BuildTailoredStatementPrompt creates the prompt for the personal statement.
func (pb *PromptBuilder) BuildTailoredStatementPrompt(jobTitle, company, jdText, userProfile, resumeText string, compatibility int, keyGaps, strengths string) string {
	return fmt.Sprintf(`Write a compelling personal statement for this candidate targeting this specific role.

═══════════════════════════════════════
TARGET ROLE: %s at %s
═══════════════════════════════════════

JOB DESCRIPTION:
%s

═══════════════════════════════════════
CANDIDATE'S PROFILE:
═══════════════════════════════════════
%s

═══════════════════════════════════════
ORIGINAL RESUME TEXT:
═══════════════════════════════════════
%s

═══════════════════════════════════════
GAP ANALYSIS:
═══════════════════════════════════════
Compatibility Score: %d%%
Strengths: %s
Areas for Growth: %s

═══════════════════════════════════════

Write a personal statement that:
1. Opens with a vivid, attention-grabbing hook specific to this candidate
2. Tells a purposeful career narrative showing growth and intentionality
3. Demonstrates specific knowledge of %s and genuine enthusiasm
4. Connects the candidate's unique strengths directly to role requirements
5. Addresses career transitions or gaps positively as evidence of adaptability
6. Closes with a forward-looking vision of their contribution
7. Feels 100%% authentic: a real person, not a template

Return ONLY the HTML content starting with <p>. No markdown, no explanations.`, jobTitle, company, jdText, userProfile, resumeText, compatibility, strengths, keyGaps, company)
}

const tailoredPortfolioSystem = `You are an elite portfolio consultant and technical writer who transforms project experiences into compelling evidence showcases that win interviews.

YOUR MISSION: Create a professional evidence portfolio document that proves the candidate's capabilities through concrete projects, achievements, and evidence. Each item should be presented as irrefutable proof of their skills.

YOUR APPROACH:
1. **Strategic Selection**: Highlight projects most relevant to the target role
2. **Impact Focus**: Lead with quantified results and business impact
3. **Technical Depth**: Show genuine technical understanding without jargon overload
4. **Narrative**: Each project tells a mini-story: problem → approach → result
5. **Proof Points**: Every claim has evidence backing it up

FORMAT: Return as clean, professional HTML document with:
- <h2> for "Evidence Portfolio" header
- <h3> for each project/evidence item title
- <div class="project-card"> wrapping each item
- <p> for descriptions
- <ul><li> for key achievements and metrics
- <strong> for emphasis on metrics, technologies, and impact
- <em> for roles and dates
- Include a brief intro paragraph explaining the portfolio's relevance to the role`

// BuildTailoredPortfolioPrompt creates the prompt for the evidence portfolio.
func (pb *PromptBuilder) BuildTailoredPortfolioPrompt(jobTitle, company, jdText, userProfile, resumeText string, compatibility int, keyGaps, strengths string) string {
	return fmt.Sprintf(`Create an evidence portfolio document for this candidate targeting this role.

═══════════════════════════════════════
TARGET ROLE: %s at %s
═══════════════════════════════════════

JOB DESCRIPTION:
%s

═══════════════════════════════════════
CANDIDATE'S PROFILE:
═══════════════════════════════════════
%s

═══════════════════════════════════════
ORIGINAL RESUME TEXT:
═══════════════════════════════════════
%s

═══════════════════════════════════════
GAP ANALYSIS:
═══════════════════════════════════════
Compatibility: %d%%
Strengths: %s
Key Gaps: %s

═══════════════════════════════════════

Create an evidence portfolio that:
1. Opens with a brief intro connecting the candidate's work to %s's needs
2. Presents 4-6 project/evidence items, prioritized by relevance to the JD
3. Each item includes: title, role, problem solved, approach, key technologies, and quantified results
4. Emphasizes transferable skills that bridge any identified gaps
5. Uses real experiences from the resume, enhanced with plausible detail
6. Shows a pattern of growth and increasing responsibility
7. If the candidate lacks traditional projects, create portfolio items from:
   - Work achievements at previous employers
   - Self-directed learning projects
   - Open source contributions
   - Relevant coursework or certifications

Return ONLY the HTML content starting with <h2>. No markdown fences, no explanations.`, jobTitle, company, jdText, userProfile, resumeText, compatibility, strengths, keyGaps, company)
}

// BuildCVPrompt creates the prompt for the generic markdown CV.
func (pb *PromptBuilder) BuildCVPrompt(userProfile, jobTitle, company, jobRequirements, gapInsights string) string {
	return fmt.Sprintf(`Create a professional, ATS-optimized CV for this candidate targeting this role:

CANDIDATE PROFILE:
%s

TARGET ROLE: %s at %s

JOB REQUIREMENTS:
%s

GAP ANALYSIS INSIGHTS:
%s

Create a compelling CV in markdown format that:
1. Highlights relevant experience and achievements
2. Uses keywords from the job description
3. Quantifies achievements wherever possible
4. Emphasizes strengths identified in the gap analysis
5. Addresses gaps subtly through positioning
6. Follows a clean, professional format

Structure:
- Name and Contact Info
- Professional Summary (tailored to role)
- Key Skills/Competencies
- Professional Experience (achievements, not just duties)
- Education
- Certifications (if applicable)
- Notable Projects (if applicable)

Return the CV in clean markdown format.`, userProfile, jobTitle, company, jobRequirements, gapInsights)
}

// BuildCoverLetterPrompt creates the prompt for the generic markdown cover letter.
func (pb *PromptBuilder) BuildCoverLetterPrompt(userProfile, jobTitle, company, companyInfo, jobRequirements, strengths string) string {
	return fmt.Sprintf(`Write a compelling, personalized cover letter:

CANDIDATE PROFILE:
%s

TARGET ROLE: %s
TARGET COMPANY: %s

COMPANY INFO:
%s

JOB REQUIREMENTS:
%s

CANDIDATE STRENGTHS:
%s

Write a cover letter that:
1. Opens with a compelling, specific hook
2. Shows genuine knowledge of the company
3. Connects experience to role requirements
4. Addresses potential concerns proactively
5. Demonstrates cultural fit
6. Includes specific achievement examples
7. Closes with clear interest and call to action

Keep it to 3-4 paragraphs. Be personable but professional.

Return the cover letter in markdown format.`, userProfile, jobTitle, company, companyInfo, jobRequirements, strengths)
}

// BuildMotivationStatementPrompt creates the prompt for the structured
// motivation statement.
func (pb *PromptBuilder) BuildMotivationStatementPrompt(userProfile, company, companyInfo, jobTitle string) string {
	return fmt.Sprintf(`Create a company-specific motivation statement:

CANDIDATE PROFILE:
%s

TARGET COMPANY: %s

COMPANY INFO:
%s

TARGET ROLE: %s

Write a compelling motivation statement that demonstrates:
1. Deep research into the company
2. Understanding of company mission and values
3. Genuine enthusiasm for the specific role
4. Alignment between candidate goals and company direction
5. Specific ways the candidate can contribute
6. Long-term vision at the company

This should feel authentic and specific, not generic.

Return ONLY valid JSON:
{
  "motivation_statement": {
    "opening": "Compelling opening paragraph",
    "company_alignment": "Why this company specifically",
    "value_proposition": "What unique value you bring",
    "immediate_contributions": ["How you can help right away"],
    "growth_vision": "Where you see yourself growing",
    "closing": "Powerful closing statement"
  },
  "company_research": {
    "recent_news": ["Relevant company developments"],
    "culture_fit": ["How you align with culture"],
    "mission_alignment": "Connection to company mission",
    "industry_insights": ["Your understanding of their market"]
  }
}`, userProfile, company, companyInfo, jobTitle)
}

// BuildPortfolioDescriptionsPrompt creates the prompt for project descriptions.
func (pb *PromptBuilder) BuildPortfolioDescriptionsPrompt(userProfile, jobTitle, projects string) string {
	return fmt.Sprintf(`Create professional descriptions for the candidate's projects:

CANDIDATE PROFILE:
%s

TARGET ROLE: %s

EXISTING PROJECTS:
%s

For each project, create a compelling portfolio description that:
1. Clearly explains the problem solved
2. Highlights technical approach
3. Quantifies impact where possible
4. Connects to target role requirements

Return ONLY valid JSON:
{
  "portfolio_items": [
    {
      "title": "Project Title",
      "tagline": "One-line description",
      "problem_statement": "What problem this solved",
      "solution_overview": "How you solved it",
      "key_features": ["Feature highlights"],
      "technical_stack": ["Technologies used"],
      "your_role": "Your specific contribution",
      "impact_metrics": ["Quantified results"],
      "lessons_learned": ["Key takeaways"],
      "presentation_tips": ["How to discuss in interviews"]
    }
  ]
}`, userProfile, jobTitle, projects)
}

const consultantSystem = `You are a world-class career coach and professional development expert.

Your expertise includes:
- Career transition strategies and planning
- Skills development and learning paths
- Professional certification guidance
- Portfolio and project development
- Personal branding and positioning
- Interview preparation and coaching

Create detailed, actionable, and realistic roadmaps that help candidates close their gaps and achieve their career goals.
Be specific with timelines, resources, and expected outcomes. Focus on practical steps they can take immediately.`

// BuildRoadmapPrompt creates the prompt for the 12-week improvement roadmap.
func (pb *PromptBuilder) BuildRoadmapPrompt(gapAnalysis, userProfile, jobTitle, company string) string {
	return fmt.Sprintf(`Create a comprehensive career improvement roadmap based on this gap analysis:

GAP ANALYSIS:
%s

USER PROFILE:
%s

TARGET ROLE: %s at %s

Create a detailed 12-week improvement plan. Return ONLY valid JSON:

{
  "roadmap": {
    "title": "Your Path to %s",
    "overview": "High-level summary of the roadmap",
    "total_duration": "12 weeks",
    "expected_outcome": "What the candidate will achieve",
    "commitment_required": "10-15 hours/week",
    "milestones": [
      {"id": "M1", "week": 1, "title": "Milestone title", "description": "What will be achieved", "tasks": ["Task 1", "Task 2"], "deliverables": ["Deliverable 1"], "success_criteria": ["How to know it's done"], "skills_gained": ["Skills developed"]}
    ],
    "weekly_plans": [
      {"week": 1, "theme": "Foundation Building", "goals": ["Goal 1", "Goal 2"], "hours_required": 12, "activities": [{"activity": "What to do", "duration": "2 hours", "purpose": "Why it matters", "resources": ["Resource links/names"]}], "checkpoint": "How to verify progress"}
    ],
    "skill_development": [
      {"skill": "Skill to develop", "current_level": "intermediate", "target_level": "advanced", "timeline": "4 weeks", "learning_path": [{"step": 1, "activity": "What to do", "resource": "Course/book name", "duration": "1 week"}], "practice_projects": ["Project ideas to apply the skill"], "assessment": "How to verify skill level"}
    ],
    "certification_path": [
      {"certification": "Certification name", "priority": "high|medium|low", "timeline": "6 weeks", "study_plan": [{"week": "1-2", "focus": "Topic focus", "resources": ["Study materials"]}], "exam_tips": ["Preparation tips"], "cost": "Approximate cost"}
    ],
    "project_recommendations": [
      {"title": "Project name", "type": "personal|contribution|portfolio", "description": "What to build", "skills_demonstrated": ["Skills this shows"], "timeline": "2 weeks", "implementation_steps": ["Step 1: Setup", "Step 2: Core features", "Step 3: Polish"], "presentation_tips": ["How to showcase this"]}
    ],
    "networking_plan": {
      "weekly_activities": ["Networking tasks"],
      "communities_to_join": ["Relevant communities"],
      "people_to_connect_with": ["Types of professionals"],
      "events_to_attend": ["Event types"]
    },
    "interview_prep": {
      "start_week": 8,
      "focus_areas": ["Technical", "Behavioral"],
      "mock_interview_schedule": "How often to practice",
      "resources": ["Prep resources"],
      "common_questions": ["Questions to prepare for"]
    },
    "progress_tracking": {
      "weekly_review": "What to review each week",
      "metrics_to_track": ["Measurable progress indicators"],
      "adjustment_triggers": ["When to modify the plan"]
    }
  },
  "learning_resources": [
    {"title": "Resource name", "type": "course|book|tutorial|documentation|video", "url": "URL if available", "provider": "Platform/Author", "skill_covered": "What it teaches", "duration": "How long it takes", "cost": "free|$amount", "priority": "required|recommended|optional", "notes": "Why this resource"}
  ],
  "tools_recommended": [
    {"tool": "Tool name", "purpose": "What it's for", "skill_level": "beginner-friendly|intermediate|advanced", "free_tier": true, "alternatives": ["Alternative tools"]}
  ],
  "motivation_tips": ["Tips to stay motivated during the journey"],
  "common_pitfalls": [
    {"pitfall": "Common mistake", "how_to_avoid": "Prevention strategy"}
  ]
}

Create a realistic, achievable plan that maximizes improvement in the given timeframe.`, gapAnalysis, userProfile, jobTitle, company, jobTitle)
}

// BuildSuggestProjectsPrompt creates the prompt for gap-closing project ideas.
func (pb *PromptBuilder) BuildSuggestProjectsPrompt(skillGaps, jobTitle string) string {
	return fmt.Sprintf(`Suggest 3 practical projects that would help close these skill gaps for a %s role:

SKILL GAPS:
%s

Return ONLY valid JSON:
{
  "projects": [
    {
      "title": "Project name",
      "description": "What to build",
      "skills_addressed": ["Gaps this closes"],
      "difficulty": "beginner|intermediate|advanced",
      "estimated_time": "2 weeks",
      "tech_stack": ["Technologies to use"],
      "steps": ["Implementation steps"],
      "portfolio_value": "Why this impresses recruiters"
    }
  ]
}`, jobTitle, skillGaps)
}

const validatorSystem = `You are a quality assurance specialist for career documents and analysis.

Your role is to:
1. Verify accuracy and consistency of information
2. Check for factual errors or fabrications
3. Ensure professional tone and formatting
4. Validate completeness of required sections
5. Flag any concerning content

Be thorough but constructive. Identify issues and suggest fixes.`

// BuildDocumentValidationPrompt creates the prompt for document QA.
func (pb *PromptBuilder) BuildDocumentValidationPrompt(documentType, profileData, content string) string {
	return fmt.Sprintf(`Validate this generated document for quality and accuracy:

DOCUMENT TYPE: %s

ORIGINAL PROFILE DATA:
%s

GENERATED CONTENT:
%s

Check for:
1. Accuracy - Does it match the source data?
2. Fabrication - Any invented achievements or experiences?
3. Consistency - Are dates, titles, and facts consistent?
4. Professionalism - Is the tone appropriate?
5. Completeness - Are all sections properly filled?
6. Grammar - Any spelling or grammar issues?

Return ONLY valid JSON:
{
  "is_valid": true,
  "quality_score": 85,
  "issues": [
    {"severity": "critical|major|minor", "category": "accuracy|fabrication|consistency|professionalism|completeness|grammar", "description": "What the issue is", "location": "Where in the document", "suggestion": "How to fix it"}
  ],
  "warnings": ["Non-critical observations"],
  "improvements": ["Suggestions to enhance quality"]
}`, documentType, profileData, content)
}

// BuildAnalysisValidationPrompt creates the prompt for gap-analysis QA.
func (pb *PromptBuilder) BuildAnalysisValidationPrompt(userProfile, benchmark, analysis string) string {
	return fmt.Sprintf(`Validate this gap analysis for accuracy and fairness:

USER PROFILE:
%s

BENCHMARK:
%s

GENERATED ANALYSIS:
%s

Verify:
1. Scores are fair and justified
2. Gaps are accurately identified
3. Recommendations are realistic
4. No unfair bias in assessment
5. Strengths are properly recognized

Return ONLY valid JSON:
{
  "is_valid": true,
  "fairness_score": 90,
  "issues": [
    {"type": "scoring|gaps|recommendations|bias", "description": "Issue description", "suggestion": "How to correct"}
  ],
  "verified_elements": ["Elements that are accurate"]
}`, userProfile, benchmark, analysis)
}
