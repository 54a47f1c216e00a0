package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-matcher/internal/match"
	"github.com/jonathan/resume-matcher/internal/types"
)

// matchRequest is the payload for POST /match
type matchRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required"`
	Persist    bool   `json:"persist,omitempty"`
}

// matchResponse is the result of scoring one resume
type matchResponse struct {
	RunID  *uuid.UUID         `json:"run_id,omitempty"`
	Resume types.ResumeRecord `json:"resume"`
	Job    types.JobRecord    `json:"job"`
	Result types.MatchResult  `json:"result"`
}

// batchResume is one resume in a batch request
type batchResume struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// batchRequest is the payload for POST /match/batch
type batchRequest struct {
	JobText string        `json:"job_text" validate:"required"`
	Resumes []batchResume `json:"resumes" validate:"required,min=1,dive"`
	Persist bool          `json:"persist,omitempty"`
}

// batchResponse is the ranked outcome of a batch run
type batchResponse struct {
	RunID   *uuid.UUID          `json:"run_id,omitempty"`
	Job     types.JobRecord     `json:"job"`
	Results []match.RankedMatch `json:"results"`
}

// decodeAndValidate parses the JSON body into dst and runs struct validation.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}

// handleMatch scores a single resume against a job description
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resume, job, result := s.matcher.ScoreText(r.Context(), req.ResumeText, req.JobText)
	resp := matchResponse{Resume: resume, Job: job, Result: result}

	if req.Persist && s.store != nil {
		runID, err := s.store.CreateMatchRun(r.Context(), job)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist run: "+err.Error())
			return
		}
		if _, err := s.store.SaveMatchResult(r.Context(), runID, "resume", resume, result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist result: "+err.Error())
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatchBatch scores several resumes against one job description and
// returns them ranked best first
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resumes := make([]match.BatchResume, len(req.Resumes))
	for i, item := range req.Resumes {
		resumes[i] = match.BatchResume{Name: item.Name, Text: item.Text}
	}

	ranked, err := s.matcher.ScoreBatch(r.Context(), resumes, req.JobText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "batch scoring failed: "+err.Error())
		return
	}

	job := s.matcher.ExtractJob(req.JobText)
	resp := batchResponse{Job: job, Results: ranked}

	if req.Persist && s.store != nil {
		runID, err := s.store.CreateMatchRun(r.Context(), job)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist run: "+err.Error())
			return
		}
		for _, entry := range ranked {
			if _, err := s.store.SaveMatchResult(r.Context(), runID, entry.Name, entry.Resume, entry.Result); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, "failed to persist result: "+err.Error())
				return
			}
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListRuns lists recent persisted runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	runs, err := s.store.ListMatchRuns(r.Context(), 50)
	if err != nil {
		log.Error().Err(err).Msg("failed to list match runs")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one persisted run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetMatchRun(r.Context(), runID)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID.String()).Msg("failed to get match run")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleRunResults returns the stored results of a run, best match first
func (s *Server) handleRunResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	results, err := s.store.ListMatchResults(r.Context(), runID)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID.String()).Msg("failed to list match results")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list results")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// handleDeleteRun deletes a persisted run and its results
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	if err := s.store.DeleteMatchRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
