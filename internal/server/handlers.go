package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseResumeRequest is the body for POST /resumes.
type ParseResumeRequest struct {
	Text     string `json:"text" validate:"required"`
	UserID   string `json:"user_id"`
	Filename string `json:"filename"`
	Save     bool   `json:"save"`
}

// ParseJobRequest is the body for POST /jobs/parse.
type ParseJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// IngestJobRequest is the body for POST /jobs/ingest.
type IngestJobRequest struct {
	URL        string `json:"url" validate:"required,url"`
	Title      string `json:"title"`   // overrides the extracted title
	Company    string `json:"company"` // overrides the extracted company
	UseBrowser bool   `json:"use_browser"`
}

// MatchRequest is the body for POST /match and POST /match/llm. The resume
// and job may be given as parsed records or as raw text.
type MatchRequest struct {
	Resume     *types.ParsedResume   `json:"resume"`
	ResumeText string                `json:"resume_text"`
	Job        *types.JobDescription `json:"job"`
	JobTitle   string                `json:"job_title"`
	JobCompany string                `json:"job_company"`
	JobText    string                `json:"job_text"`
	UserID     string                `json:"user_id"`
	Policy     string                `json:"policy"`
}

// AnalyzeRequest is the body for POST /analyze.
type AnalyzeRequest struct {
	Resume     *types.ParsedResume `json:"resume"`
	ResumeText string              `json:"resume_text"`
	Industry   string              `json:"industry"`
}

func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0]
			return &ErrValidation{
				Field:   strings.ToLower(field.Field()),
				Message: "failed on rule " + field.Tag(),
			}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// resolveResume accepts a parsed record as-is, or parses raw text.
func (s *Server) resolveResume(parsed *types.ParsedResume, text string) (*types.ParsedResume, error) {
	if parsed != nil {
		return parsed, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ErrValidation{Field: "resume", Message: "either resume or resume_text is required"}
	}
	return parsing.ParseResumeText(text), nil
}

// resolveJob accepts a parsed record as-is, or parses the raw posting text.
func (s *Server) resolveJob(req *MatchRequest) (types.JobDescription, error) {
	if req.Job != nil {
		return *req.Job, nil
	}
	if strings.TrimSpace(req.JobText) == "" {
		return types.JobDescription{}, &ErrValidation{Field: "job", Message: "either job or job_text is required"}
	}
	return parsing.ParseJobDescription(req.JobTitle, req.JobCompany, req.JobText), nil
}

func (s *Server) resolvePolicy(policy string) (matching.Policy, error) {
	switch matching.Policy(policy) {
	case "":
		return s.policy, nil
	case matching.PolicyAllowOverlap:
		return matching.PolicyAllowOverlap, nil
	case matching.PolicyExclusivePartial:
		return matching.PolicyExclusivePartial, nil
	default:
		return "", &ErrValidation{Field: "policy", Message: "unknown policy: " + policy}
	}
}

// handleParseResume parses resume text into a structured record.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req ParseResumeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resume := parsing.ParseResumeText(req.Text)

	if req.Save && s.store != nil {
		filename := req.Filename
		if filename == "" {
			filename = "resume.txt"
		}
		id, err := s.store.SaveResume(r.Context(), req.UserID, filename, resume)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id, "resume": resume})
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleParseJob parses a job description into a structured record.
func (s *Server) handleParseJob(w http.ResponseWriter, r *http.Request) {
	var req ParseJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	jd := parsing.ParseJobDescription(req.Title, req.Company, req.Description)
	s.jsonResponse(w, http.StatusOK, jd)
}

// handleIngestJob fetches a job posting URL and parses it into a structured
// job description. Falls back to browser rendering for client-side pages
// when requested.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req IngestJobRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	result, err := fetch.Posting(r.Context(), req.URL, nil)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	extracted, err := fetch.ExtractPosting(result.HTML)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if req.UseBrowser && fetch.ShouldUseBrowser(extracted.Description) {
		html, err := fetch.RenderPosting(r.Context(), req.URL, fetch.DefaultTimeout)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		if rendered, err := fetch.ExtractPosting(html); err == nil {
			extracted = rendered
		}
	}

	title := req.Title
	if title == "" {
		title = extracted.Title
	}
	company := req.Company
	if company == "" {
		company = extracted.Company
	}

	jd := parsing.ParseJobDescription(title, company, extracted.Description)
	s.jsonResponse(w, http.StatusOK, jd)
}

// handleMatch runs the heuristic scoring path.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resume, err := s.resolveResume(req.Resume, req.ResumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	jd, err := s.resolveJob(&req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	policy, err := s.resolvePolicy(req.Policy)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	result := scoring.CompileMatch(resume, jd, scoring.Options{
		UserID: req.UserID,
		Policy: policy,
	})

	s.recordMatch(r, result)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleMatchLLM runs the external analysis path.
func (s *Server) handleMatchLLM(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.errorResponse(w, &llm.ConfigError{Message: "API key is not set"})
		return
	}

	var req MatchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resume, err := s.resolveResume(req.Resume, req.ResumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	jd, err := s.resolveJob(&req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	result, err := llm.AnalyzeMatch(r.Context(), s.client, resume, jd, req.UserID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.recordMatch(r, result)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyze runs the resume-only heuristic analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resume, err := s.resolveResume(req.Resume, req.ResumeText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = s.industry
	}

	result := scoring.AnalyzeResume(resume, industry, s.roles, s.courses)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListMatches returns match history, newest first. Reads from the
// database when configured, the in-memory history otherwise.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if s.store != nil {
		userID := r.URL.Query().Get("user_id")
		matches, err := s.store.ListMatches(r.Context(), userID, limit)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		if matches == nil {
			matches = []types.MatchResult{}
		}
		s.jsonResponse(w, http.StatusOK, matches)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.history.List(limit))
}

// handleCourses looks up course recommendations for the given skills.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	skillsParam := r.URL.Query().Get("skills")
	if strings.TrimSpace(skillsParam) == "" {
		s.errorResponse(w, &ErrValidation{Field: "skills", Message: "skills query parameter is required"})
		return
	}
	skills := strings.Split(skillsParam, ",")

	industry := r.URL.Query().Get("industry")
	perSkill, _ := strconv.Atoi(r.URL.Query().Get("per_skill"))

	recommendations := s.courses.ForSkills(skills, industry, perSkill)
	s.jsonResponse(w, http.StatusOK, recommendations)
}

// recordMatch appends the result to in-process history and, when a database
// is configured, persists it. Persistence failures are logged, not fatal.
func (s *Server) recordMatch(r *http.Request, result *types.MatchResult) {
	s.history.Add(result)
	if s.store != nil {
		if err := s.store.SaveMatch(r.Context(), result); err != nil {
			// History already has the result; the client still gets it.
			log.Printf("failed to persist match %s: %v", result.ID, err)
		}
	}
}
