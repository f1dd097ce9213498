package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	t.Cleanup(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
	})
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

const sampleResumeText = `John Doe
john.doe@example.com
Senior Software Engineer at Tech Corp 2020 - Present
Led development using React and Node.js

SKILLS
JavaScript, React, Node.js, Python`

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestParseResume(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/resumes", ParseResumeRequest{Text: sampleResumeText})

	require.Equal(t, http.StatusOK, rec.Code)

	var resume types.ParsedResume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resume))
	assert.Contains(t, resume.Skills, "React")
	assert.Equal(t, "john.doe@example.com", resume.ContactInfo.Email)
}

func TestParseResume_MissingText(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/resumes", ParseResumeRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestParseJob(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/jobs/parse", ParseJobRequest{
		Title:       "Frontend Developer",
		Company:     "Example Inc",
		Description: "We require React experience. 3+ years of experience needed.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var jd types.JobDescription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jd))
	assert.Equal(t, "Frontend Developer", jd.Title)
	assert.Contains(t, jd.Skills, "react")
	assert.Equal(t, "3+ years", jd.ExperienceRequired)
}

func TestParseJob_MissingFields(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/jobs/parse", ParseJobRequest{Title: "Dev"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestJob_InvalidURL(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/jobs/ingest", IngestJobRequest{URL: "not a url"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatch_Heuristic(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/match", MatchRequest{
		ResumeText: sampleResumeText,
		JobTitle:   "Frontend Developer",
		JobCompany: "Example Inc",
		JobText:    "We need React and Node.js. SQL required.",
		UserID:     "user-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "user-1", result.UserID)
	assert.GreaterOrEqual(t, result.CompatibilityScore, 0)
	assert.LessOrEqual(t, result.CompatibilityScore, 100)
	assert.Contains(t, result.MatchedSkills, "react")
	assert.Contains(t, result.MissingSkills, "sql")

	// The match lands in history.
	assert.Equal(t, 1, s.history.Len())
}

func TestMatch_MissingResume(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/match", MatchRequest{JobText: "React needed"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume")
}

func TestMatch_UnknownPolicy(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/match", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "React needed",
		Policy:     "bogus",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "policy")
}

func TestMatchLLM_NoClientConfigured(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/match/llm", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "React needed",
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "configuration")
}

type stubClient struct {
	reply string
	err   error
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *stubClient) Close() error { return nil }

func TestMatchLLM_Success(t *testing.T) {
	s := newTestServer(t)
	s.client = &stubClient{reply: `{
		"compatibility_score": 85,
		"matched_skills": ["react"],
		"missing_skills": ["sql"],
		"feedback": {"skill_score": 90, "overall_assessment": "Good fit."}
	}`}

	rec := doJSON(t, s, "POST", "/match/llm", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "React and SQL needed.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 85, result.CompatibilityScore)
	assert.Equal(t, []string{"react"}, result.MatchedSkills)
	assert.Equal(t, "Good fit.", result.Feedback.OverallAssessment)
}

func TestMatchLLM_TransportFailure(t *testing.T) {
	s := newTestServer(t)
	s.client = &stubClient{err: &llm.TransportError{StatusCode: 503, Body: "overloaded"}}

	rec := doJSON(t, s, "POST", "/match/llm", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "React needed",
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "POST", "/analyze", AnalyzeRequest{
		ResumeText: sampleResumeText,
		Industry:   "web",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.ResumeAnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.NotEmpty(t, result.SuggestedRoles)
}

func TestListMatches_InMemory(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, "POST", "/match", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "React needed",
	})
	doJSON(t, s, "POST", "/match", MatchRequest{
		ResumeText: sampleResumeText,
		JobText:    "Python needed",
	})

	rec := doJSON(t, s, "GET", "/matches", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 2)
	// Newest first.
	assert.Contains(t, matches[0].JobDescription.Skills, "python")
}

func TestCourses(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/courses?skills=React&per_skill=1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var recommendations []types.CourseRecommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommendations))
	require.Len(t, recommendations, 1)
	assert.Equal(t, "react", recommendations[0].Skill)
	assert.NotEmpty(t, recommendations[0].URL)
}

func TestCourses_MissingSkills(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, "GET", "/courses", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&llm.ConfigError{}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&llm.TransportError{}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&llm.DecodeError{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
