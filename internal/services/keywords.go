package services

import (
	"strings"

	"careerpilot/internal/models"
)

// knownKeywords is the closed vocabulary for the job-description fallback.
var knownKeywords = map[string]bool{
	"javascript": true, "typescript": true, "python": true, "java": true,
	"go": true, "rust": true, "ruby": true, "php": true,
	"swift": true, "kotlin": true, "react": true, "angular": true,
	"vue": true, "svelte": true, "next": true, "nuxt": true,
	"node": true, "express": true, "django": true, "flask": true,
	"fastapi": true, "spring": true,
	"sql": true, "postgres": true, "mysql": true, "mongodb": true,
	"redis": true, "elasticsearch": true,
	"aws": true, "gcp": true, "azure": true, "docker": true,
	"kubernetes": true, "terraform": true,
	"git": true, "github": true, "gitlab": true, "jenkins": true,
	"ci": true, "cd": true,
	"graphql": true, "rest": true, "grpc": true, "microservices": true,
	"tailwind": true, "css": true, "html": true, "sass": true,
	"jest": true, "playwright": true, "cypress": true, "selenium": true,
	"figma": true, "agile": true, "scrum": true, "kanban": true,
	"machine": true, "learning": true, "ai": true, "ml": true, "nlp": true,
	"linux": true, "bash": true, "shell": true,
}

const maxKeywords = 25

const keywordTrimCutset = ".,;:!?()[]{}\"'"

// DeriveKeywords returns the target keywords for a run: the benchmark's ideal
// skill names when present, otherwise a closed-vocabulary scan of the job
// description. Order follows first appearance and duplicates are dropped, so
// the result is deterministic for a given input.
func DeriveKeywords(benchmark *models.BenchmarkProfile, jdText string) []string {
	keywords := make([]string, 0, len(benchmark.IdealSkills))
	for _, skill := range benchmark.IdealSkills {
		if skill.Name != "" {
			keywords = append(keywords, skill.Name)
		}
	}
	if len(keywords) > 0 {
		return keywords
	}
	return ExtractKeywordsFromJD(jdText)
}

// ExtractKeywordsFromJD scans the job description token-wise against the
// known vocabulary, capped at 25 keywords.
func ExtractKeywordsFromJD(jdText string) []string {
	found := []string{}
	seen := map[string]bool{}

	for _, word := range strings.Fields(strings.ToLower(jdText)) {
		clean := strings.ToLower(strings.Trim(word, keywordTrimCutset))
		if clean == "" || seen[clean] || !knownKeywords[clean] {
			continue
		}
		seen[clean] = true
		found = append(found, clean)
		if len(found) == maxKeywords {
			break
		}
	}

	return found
}
