package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"io"
	"net/http"
)

type NewBusiness struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	PrimaryColor string `json:"primary_color"`
}

type BusinessUpdate struct {
	Name         string `json:"name"`
	PrimaryColor string `json:"primary_color"`
	Active       *bool  `json:"active,omitempty"`
}

func (c *Client) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	var out struct {
		Businesses []model.Business `json:"businesses"`
	}
	err := c.get(ctx, "list_businesses", "/api/businesses/list/", nil, &out, "Failed to fetch businesses")
	return out.Businesses, err
}

func (c *Client) GetBusinessDetails(ctx context.Context, businessID uint) (*model.BusinessDetails, error) {
	var out model.BusinessDetails
	path := fmt.Sprintf("/api/businesses/%d/details/", businessID)
	if err := c.get(ctx, "business_details", path, nil, &out, "Failed to fetch business details"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBusiness(ctx context.Context, in NewBusiness) (*model.Business, error) {
	var out model.Business
	if err := c.doJSON(ctx, "create_business", http.MethodPost, "/api/businesses/", in, &out, "Failed to create business"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBusiness(ctx context.Context, businessID uint, in BusinessUpdate) error {
	path := fmt.Sprintf("/api/businesses/%d/", businessID)
	return c.doJSON(ctx, "update_business", http.MethodPut, path, in, nil, "Failed to update business")
}

func (c *Client) DeleteBusiness(ctx context.Context, businessID uint) error {
	path := fmt.Sprintf("/api/businesses/%d/", businessID)
	return c.doJSON(ctx, "delete_business", http.MethodDelete, path, nil, nil, "Failed to delete business")
}

func (c *Client) UploadBusinessLogo(ctx context.Context, businessID uint, filename string, content io.Reader) error {
	path := fmt.Sprintf("/api/businesses/%d/logo/", businessID)
	return c.upload(ctx, "upload_logo", path, "logo", filename, content, nil, "Failed to upload logo")
}

// UploadAssessmentTemplate sends a question-pair CSV template for a business.
func (c *Client) UploadAssessmentTemplate(ctx context.Context, businessID uint, filename string, content io.Reader) error {
	path := fmt.Sprintf("/api/businesses/%d/upload-template/", businessID)
	return c.upload(ctx, "upload_template", path, "file", filename, content, nil, "Failed to upload assessment template")
}
