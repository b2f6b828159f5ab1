package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"io"
	"net/http"
)

// AssessmentInput is the body of assessment create and edit calls.
type AssessmentInput struct {
	CandidateName    string `json:"candidate_name"`
	CandidateEmail   string `json:"candidate_email"`
	Position         string `json:"position"`
	Region           string `json:"region"`
	ManagerIDs       []uint `json:"manager_ids"`
	PrimaryManagerID *uint  `json:"primary_manager_id"`
	ManagerName      string `json:"manager_name"`
	ManagerEmail     string `json:"manager_email"`
}

// Report is a streamed PDF assessment report.
type Report struct {
	Body               io.ReadCloser
	ContentType        string
	ContentDisposition string
	ContentLength      int64
}

func (c *Client) ListAssessments(ctx context.Context, businessID uint) ([]model.Assessment, error) {
	var out struct {
		Assessments []model.Assessment `json:"assessments"`
	}
	path := fmt.Sprintf("/api/businesses/%d/assessments/", businessID)
	err := c.get(ctx, "list_assessments", path, nil, &out, "Failed to fetch assessments")
	return out.Assessments, err
}

func (c *Client) CreateAssessment(ctx context.Context, businessID uint, in AssessmentInput) (*model.Assessment, error) {
	var out model.Assessment
	path := fmt.Sprintf("/api/businesses/%d/create-assessment/", businessID)
	if err := c.doJSON(ctx, "create_assessment", http.MethodPost, path, in, &out, "Failed to create assessment"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAssessment(ctx context.Context, assessmentID uint, in AssessmentInput) error {
	path := fmt.Sprintf("/api/assessments/%d/", assessmentID)
	return c.doJSON(ctx, "update_assessment", http.MethodPut, path, in, nil, "Failed to update assessment")
}

func (c *Client) DeleteAssessment(ctx context.Context, assessmentID uint) error {
	path := fmt.Sprintf("/api/assessments/%d/", assessmentID)
	return c.doJSON(ctx, "delete_assessment", http.MethodDelete, path, nil, nil, "Failed to delete assessment")
}

// ResendAssessment issues a fresh link to the candidate; the old one stops working.
func (c *Client) ResendAssessment(ctx context.Context, assessmentID uint) error {
	path := fmt.Sprintf("/api/admin/assessments/%d/resend/", assessmentID)
	return c.doJSON(ctx, "resend_assessment", http.MethodPost, path, nil, nil, "Failed to resend assessment")
}

// PreviewReport streams the inline report of a completed assessment.
func (c *Client) PreviewReport(ctx context.Context, assessmentID uint) (*Report, error) {
	return c.openReport(ctx, assessmentID, false)
}

// DownloadReport streams the attachment variant of the report.
func (c *Client) DownloadReport(ctx context.Context, assessmentID uint) (*Report, error) {
	return c.openReport(ctx, assessmentID, true)
}

func (c *Client) openReport(ctx context.Context, assessmentID uint, download bool) (*Report, error) {
	variant, op := "preview", "preview_report"
	if download {
		variant, op = "download", "download_report"
	}
	resp, err := c.send(ctx, request{
		op:       op,
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/admin/assessments/%d/%s/", assessmentID, variant),
		fallback: "Failed to load assessment report",
	})
	if err != nil {
		return nil, err
	}
	return &Report{
		Body:               resp.Body,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
		ContentLength:      resp.ContentLength,
	}, nil
}
