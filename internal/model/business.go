package model

import "time"

// Business is the tenant root as the platform returns it.
type Business struct {
	ID                         uint      `json:"id"`
	Name                       string    `json:"name"`
	Slug                       string    `json:"slug"`
	PrimaryColor               string    `json:"primary_color"`
	LogoURL                    string    `json:"logo_url,omitempty"`
	Active                     bool      `json:"active"`
	AssessmentTemplateUploaded bool      `json:"assessment_template_uploaded"`
	CreatedAt                  time.Time `json:"created_at"`
}

type BusinessStats struct {
	TotalAssessments     int `json:"total_assessments"`
	CompletedAssessments int `json:"completed_assessments"`
	PendingAssessments   int `json:"pending_assessments"`
}

// BusinessDetails is the aggregate the console refetches after every mutation.
type BusinessDetails struct {
	Business      Business       `json:"business"`
	HRUsers       []HRUser       `json:"hr_users"`
	Managers      []Manager      `json:"managers"`
	QuestionPairs []QuestionPair `json:"question_pairs"`
	Stats         BusinessStats  `json:"stats"`
}

type HRUser struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	IsActive   bool   `json:"is_active"`
	BusinessID uint   `json:"business_id,omitempty"`
}
