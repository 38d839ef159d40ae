package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"careerpilot/internal/models"
)

func TestExtractKeywordsFromJDDeduplicatesAndKeepsOrder(t *testing.T) {
	jd := "We use React and TypeScript. Experience with Postgres, Docker and React required."
	keywords := ExtractKeywordsFromJD(jd)

	assert.Equal(t, []string{"react", "typescript", "postgres", "docker"}, keywords)
}

func TestExtractKeywordsFromJDStripsPunctuation(t *testing.T) {
	jd := "Stack: (Python), [Go]; \"AWS\"! Kubernetes?"
	keywords := ExtractKeywordsFromJD(jd)

	assert.Equal(t, []string{"python", "go", "aws", "kubernetes"}, keywords)
}

func TestExtractKeywordsFromJDIgnoresUnknownWords(t *testing.T) {
	keywords := ExtractKeywordsFromJD("We need a friendly team player who loves spreadsheets")
	assert.Empty(t, keywords)
}

func TestExtractKeywordsFromJDCapsAtTwentyFive(t *testing.T) {
	var sb strings.Builder
	for known := range knownKeywords {
		sb.WriteString(known)
		sb.WriteString(" ")
	}
	keywords := ExtractKeywordsFromJD(sb.String())
	assert.Len(t, keywords, 25)
}

func TestExtractKeywordsFromJDDeterministic(t *testing.T) {
	jd := "python react go docker aws python go"
	first := ExtractKeywordsFromJD(jd)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractKeywordsFromJD(jd), fmt.Sprintf("run %d differed", i))
	}
}

func TestDeriveKeywordsPrefersBenchmarkSkills(t *testing.T) {
	benchmark := &models.BenchmarkProfile{
		IdealSkills: []models.IdealSkill{
			{Name: "Kubernetes"},
			{Name: ""},
			{Name: "Terraform"},
		},
	}
	keywords := DeriveKeywords(benchmark, "python react")

	assert.Equal(t, []string{"Kubernetes", "Terraform"}, keywords)
}

func TestDeriveKeywordsFallsBackToJD(t *testing.T) {
	benchmark := &models.BenchmarkProfile{}
	keywords := DeriveKeywords(benchmark, "python and react experience")

	assert.Equal(t, []string{"python", "react"}, keywords)
}
