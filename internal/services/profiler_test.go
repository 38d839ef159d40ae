package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/models"
)

func TestParseResumeBlankInputSkipsModel(t *testing.T) {
	fake := newFakeCompletion()
	svc := NewProfilerService(fake, NewPromptBuilder())

	profile, err := svc.ParseResume(context.Background(), "   \n\t ")
	require.NoError(t, err)

	assert.Equal(t, models.EmptyCandidateProfile(), profile)
	assert.Zero(t, fake.callCount())
}

func TestParseResumeNormalizesSkillEnums(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match: "Parse the following resume",
		payload: `{
			"name": "Ada Lovelace",
			"skills": [
				{"name": "Go", "level": "GURU", "category": "technical"},
				{"name": "Postgres", "level": "Advanced", "category": "databases"},
				{"name": "", "level": "expert", "category": "technical"}
			],
			"experience": [
				{"company": "Acme", "title": "Engineer"},
				{"company": "", "title": "Ghost"}
			]
		}`,
	})
	svc := NewProfilerService(fake, NewPromptBuilder())

	profile, err := svc.ParseResume(context.Background(), "Ada Lovelace. Engineer at Acme.")
	require.NoError(t, err)

	require.Len(t, profile.Skills, 2)
	assert.Equal(t, models.SkillLevelIntermediate, profile.Skills[0].Level)
	assert.Equal(t, models.SkillLevelAdvanced, profile.Skills[1].Level)
	assert.Equal(t, models.SkillCategoryTechnical, profile.Skills[1].Category)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)

	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Languages)
}

func TestParseResumeParseFailureSurfaces(t *testing.T) {
	fake := newFakeCompletion(scriptedResponse{
		match:   "Parse the following resume",
		payload: "I could not do that, sorry.",
	})
	svc := NewProfilerService(fake, NewPromptBuilder())

	_, err := svc.ParseResume(context.Background(), "some resume text")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailure)
}
