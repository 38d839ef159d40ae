package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFromFencedBlock(t *testing.T) {
	text := "Here is the result:\n```json\n{\"score\": 85}\n```\nHope that helps!"
	assert.Equal(t, `{"score": 85}`, ExtractJSON(text))
}

func TestExtractJSONFromPlainFence(t *testing.T) {
	text := "```\n{\"valid\": true}\n```"
	assert.Equal(t, `{"valid": true}`, ExtractJSON(text))
}

func TestExtractJSONFromSurroundingProse(t *testing.T) {
	text := `Sure! {"name": "Ada", "skills": ["go"]} Let me know if you need more.`
	assert.Equal(t, `{"name": "Ada", "skills": ["go"]}`, ExtractJSON(text))
}

func TestExtractJSONArray(t *testing.T) {
	text := `The keywords are: ["go", "postgres"]`
	assert.Equal(t, `["go", "postgres"]`, ExtractJSON(text))
}

func TestExtractJSONPassthrough(t *testing.T) {
	assert.Equal(t, "plain text", ExtractJSON("plain text"))
}

func TestParseJSONValid(t *testing.T) {
	var out struct {
		Score float64 `json:"score"`
	}
	require.NoError(t, ParseJSON(`{"score": 72.5}`, &out))
	assert.Equal(t, 72.5, out.Score)
}

func TestParseJSONRepairsPythonLiterals(t *testing.T) {
	var out struct {
		Valid bool    `json:"valid"`
		Note  *string `json:"note"`
	}
	require.NoError(t, ParseJSON(`{"valid": True, "note": None}`, &out))
	assert.True(t, out.Valid)
	assert.Nil(t, out.Note)
}

func TestParseJSONFailureWrapsSentinel(t *testing.T) {
	var out map[string]any
	err := ParseJSON("not json at all", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailure)
}
