package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONFromFencedBlock(t *testing.T) {
	content := "Here you go:\n```json\n{\"summary\": \"done\"}\n```\nAnything else?"
	assert.Equal(t, `{"summary": "done"}`, ExtractJSON(content))
}

func TestExtractJSONBareObject(t *testing.T) {
	content := `The answer is {"suggestedPerson": "Ana", "reason": "expertise"} as requested.`
	assert.Equal(t, `{"suggestedPerson": "Ana", "reason": "expertise"}`, ExtractJSON(content))
}

func TestExtractJSONRemovesTrailingCommas(t *testing.T) {
	content := `{"summary": "x",}`
	assert.Equal(t, `{"summary": "x"}`, ExtractJSON(content))
}

func TestExtractJSONNoObject(t *testing.T) {
	assert.Equal(t, "", ExtractJSON("no json here"))
}

func TestExtractJSONArrayFromFencedBlock(t *testing.T) {
	content := "```json\n[{\"title\": \"a\", \"description\": \"b\"}]\n```"
	assert.Equal(t, `[{"title": "a", "description": "b"}]`, ExtractJSONArray(content))
}

func TestExtractJSONArrayBare(t *testing.T) {
	content := `Tasks: [{"title": "a", "description": "b"},]`
	assert.Equal(t, `[{"title": "a", "description": "b"}]`, ExtractJSONArray(content))
}

func TestExtractJSONArrayNoArray(t *testing.T) {
	assert.Equal(t, "", ExtractJSONArray(`{"not": "an array"}`))
}
