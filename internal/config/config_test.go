package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"user_id": "user-1",
		"industry": "web",
		"policy": "exclusive_partial",
		"model": "gemini-1.5-flash-latest",
		"port": 8080
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.Equal(t, "web", cfg.Industry)
	assert.Equal(t, "exclusive_partial", cfg.Policy)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Policy(t *testing.T) {
	assert.NoError(t, (&Config{Policy: "allow_overlap"}).Validate())
	assert.NoError(t, (&Config{Policy: "exclusive_partial"}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Policy: "bogus"}).Validate())
}

func TestValidate_ResumeFileMissing(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ResumeFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	cfg := &Config{Resume: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{UserID: "set-by-flag", Port: 9000}
	merged := cfg.MergeWithDefaults(Config{
		UserID:   "from-file",
		Industry: "web",
		Model:    "gemini-1.5-flash-latest",
		Port:     8080,
	})

	assert.Equal(t, "set-by-flag", merged.UserID)
	assert.Equal(t, "web", merged.Industry)
	assert.Equal(t, "gemini-1.5-flash-latest", merged.Model)
	assert.Equal(t, 9000, merged.Port)
}
