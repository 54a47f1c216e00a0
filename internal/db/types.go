package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MatchRun represents one scoring run against a single job description
type MatchRun struct {
	ID           uuid.UUID `json:"id"`
	Position     string    `json:"position"`
	ReqExpYears  int       `json:"req_exp_years"`
	ReqEducation string    `json:"req_education"`
	ReqSkills    string    `json:"req_skills"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchResultRow represents one scored resume within a run
type MatchResultRow struct {
	ID              uuid.UUID       `json:"id"`
	RunID           uuid.UUID       `json:"run_id"`
	ResumeName      string          `json:"resume_name"`
	CandidateName   string          `json:"candidate_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Skills          string          `json:"skills"`
	ExperienceYears float64         `json:"experience_years"`
	Education       string          `json:"education"`
	TotalPercent    float64         `json:"total_percent"`
	Breakdown       types.Breakdown `json:"breakdown"`
	CreatedAt       time.Time       `json:"created_at"`
}
