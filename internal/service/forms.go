package service

import (
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"strings"
)

type CreateBusinessForm struct {
	Name         string `form:"name" json:"name" binding:"required"`
	PrimaryColor string `form:"primary_color" json:"primary_color"`
}

type UpdateBusinessForm struct {
	Name         string `json:"name" binding:"required"`
	PrimaryColor string `json:"primary_color"`
	Active       *bool  `json:"active"`
}

type HRUserForm struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password"`
	IsActive  *bool  `json:"is_active"`
}

type ManagerForm struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Region    string `json:"region"`
	Position  string `json:"position"`
	IsDefault bool   `json:"is_default"`
}

func (f ManagerForm) input() platform.ManagerInput {
	return platform.ManagerInput{
		Name:      strings.TrimSpace(f.Name),
		Email:     strings.TrimSpace(f.Email),
		Region:    strings.TrimSpace(f.Region),
		Position:  strings.TrimSpace(f.Position),
		IsDefault: f.IsDefault,
	}
}

type QuestionPairForm struct {
	StatementA string `json:"statement_a" binding:"required"`
	StatementB string `json:"statement_b" binding:"required"`
	Active     *bool  `json:"active"`
}

// AssessmentForm is filled by the operator; the manager fields come from a
// ManagerSelection through Apply.
type AssessmentForm struct {
	CandidateName    string `json:"candidate_name" binding:"required"`
	CandidateEmail   string `json:"candidate_email" binding:"required,email"`
	Position         string `json:"position"`
	Region           string `json:"region"`
	ManagerIDs       []uint `json:"manager_ids"`
	PrimaryManagerID *uint  `json:"primary_manager_id"`
	ManagerName      string `json:"manager_name"`
	ManagerEmail     string `json:"manager_email"`
}

func (f AssessmentForm) input() platform.AssessmentInput {
	return platform.AssessmentInput{
		CandidateName:    strings.TrimSpace(f.CandidateName),
		CandidateEmail:   strings.TrimSpace(f.CandidateEmail),
		Position:         strings.TrimSpace(f.Position),
		Region:           strings.TrimSpace(f.Region),
		ManagerIDs:       f.ManagerIDs,
		PrimaryManagerID: f.PrimaryManagerID,
		ManagerName:      f.ManagerName,
		ManagerEmail:     f.ManagerEmail,
	}
}

type BenchmarkEmailForm struct {
	Email  string `json:"email" binding:"required,email"`
	Region string `json:"region"`
}

type EmailTemplateForm struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type TrainingMaterialForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	DocumentURL string `json:"document_url"`
	Active      *bool  `json:"active"`
}

func (f TrainingMaterialForm) material() model.TrainingMaterial {
	active := true
	if f.Active != nil {
		active = *f.Active
	}
	return model.TrainingMaterial{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Icon:        f.Icon,
		Color:       f.Color,
		DocumentURL: f.DocumentURL,
		Active:      active,
	}
}

// Upload is a file received from the operator.
type Upload struct {
	Filename string
	Size     int64
	Content  []byte
}
