package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_JobMatchPrompt(t *testing.T) {
	prompt, err := Get(AnalysisFile, KeyJobMatch)
	require.NoError(t, err)

	assert.Contains(t, prompt, "compatibility_score")
	assert.Contains(t, prompt, "{{.Resume}}")
	assert.Contains(t, prompt, "{{.JobDescription}}")
	assert.Contains(t, prompt, "Only output valid JSON")
}

func TestGet_ResumeAnalysisPrompt(t *testing.T) {
	prompt, err := Get(AnalysisFile, KeyResumeAnalysis)
	require.NoError(t, err)

	assert.Contains(t, prompt, "suggested_roles")
	assert.Contains(t, prompt, "{{.Resume}}")
	assert.Contains(t, prompt, "{{.Industry}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get(AnalysisFile, "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", KeyJobMatch)
	require.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet(AnalysisFile, "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	template := "RESUME:\n{{.Resume}}\n\nJOB_DESCRIPTION:\n{{.JobDescription}}"
	result := Format(template, map[string]string{
		"Resume":         `{"skills":["Go"]}`,
		"JobDescription": `{"title":"Backend Engineer"}`,
	})

	assert.Contains(t, result, `{"skills":["Go"]}`)
	assert.Contains(t, result, `{"title":"Backend Engineer"}`)
	assert.NotContains(t, result, "{{.")
}

func TestList(t *testing.T) {
	keys, err := List(AnalysisFile)
	require.NoError(t, err)
	assert.Contains(t, keys, KeyJobMatch)
	assert.Contains(t, keys, KeyResumeAnalysis)
}
