package model

import "time"

type AssessmentType string

const (
	AssessmentStandard  AssessmentType = "standard"
	AssessmentBenchmark AssessmentType = "benchmark"
)

// Assessment is a candidate-facing evaluation instance.
type Assessment struct {
	ID                    uint           `json:"id"`
	AssessmentType        AssessmentType `json:"assessment_type"`
	CandidateName         string         `json:"candidate_name"`
	CandidateEmail        string         `json:"candidate_email"`
	Position              string         `json:"position"`
	Region                string         `json:"region"`
	ManagerIDs            []uint         `json:"manager_ids"`
	PrimaryManagerID      *uint          `json:"primary_manager_id"`
	ManagerName           string         `json:"manager_name"`
	ManagerEmail          string         `json:"manager_email"`
	Completed             bool           `json:"completed"`
	EmailSent             bool           `json:"email_sent"`
	UniqueLink            string         `json:"unique_link"`
	CreatedAt             time.Time      `json:"created_at"`
	FirstAccessedAt       *time.Time     `json:"first_accessed_at"`
	CompletedAt           *time.Time     `json:"completed_at"`
	CompletionTimeSeconds *int           `json:"completion_time_seconds"`
}

// Status is the candidate-facing progress of the assessment.
func (a Assessment) Status() string {
	switch {
	case a.Completed:
		return "completed"
	case a.FirstAccessedAt != nil:
		return "in_progress"
	default:
		return "not_started"
	}
}
