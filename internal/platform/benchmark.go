package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"net/http"
)

func (c *Client) ListBenchmarkEmails(ctx context.Context, businessID uint) ([]model.BenchmarkEmail, error) {
	var out struct {
		Emails []model.BenchmarkEmail `json:"emails"`
	}
	path := fmt.Sprintf("/api/businesses/%d/benchmark-emails/", businessID)
	err := c.get(ctx, "list_benchmark_emails", path, nil, &out, "Failed to fetch benchmark emails")
	return out.Emails, err
}

// AddBenchmarkEmails persists a whole batch in one request.
func (c *Client) AddBenchmarkEmails(ctx context.Context, businessID uint, emails []model.BenchmarkEmail) error {
	path := fmt.Sprintf("/api/businesses/%d/add-benchmark-emails/", businessID)
	body := map[string]interface{}{"emails": emails}
	return c.doJSON(ctx, "add_benchmark_emails", http.MethodPost, path, body, nil, "Failed to upload benchmark emails")
}

func (c *Client) SendBenchmarkEmail(ctx context.Context, businessID uint, email string) error {
	path := fmt.Sprintf("/api/businesses/%d/send-benchmark-email/", businessID)
	body := map[string]string{"email": email}
	return c.doJSON(ctx, "send_benchmark_email", http.MethodPost, path, body, nil, "Failed to send email")
}

func (c *Client) BenchmarkResults(ctx context.Context, businessID uint) ([]model.BenchmarkResult, error) {
	var out struct {
		Results []model.BenchmarkResult `json:"results"`
	}
	path := fmt.Sprintf("/api/businesses/%d/benchmark-results/", businessID)
	err := c.get(ctx, "benchmark_results", path, nil, &out, "Failed to fetch benchmark data")
	return out.Results, err
}

func (c *Client) GetEmailTemplate(ctx context.Context, businessID uint, kind model.TemplateType) (*model.EmailTemplate, error) {
	var out model.EmailTemplate
	path := fmt.Sprintf("/api/businesses/%d/email-templates/%s/", businessID, kind)
	if err := c.get(ctx, "get_email_template", path, nil, &out, "Failed to load email template"); err != nil {
		return nil, err
	}
	if out.TemplateType == "" {
		out.TemplateType = kind
	}
	return &out, nil
}

func (c *Client) SaveEmailTemplate(ctx context.Context, businessID uint, tpl model.EmailTemplate) error {
	path := fmt.Sprintf("/api/businesses/%d/email-templates/%s/", businessID, tpl.TemplateType)
	return c.doJSON(ctx, "save_email_template", http.MethodPut, path, tpl, nil, "Failed to save email template")
}
