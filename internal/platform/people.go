package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"net/http"
)

type NewHRUser struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Password   string `json:"password"`
	BusinessID uint   `json:"business_id"`
}

type HRUserUpdate struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsActive  *bool  `json:"is_active,omitempty"`
	Password  string `json:"password,omitempty"`
}

type ManagerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Region    string `json:"region"`
	Position  string `json:"position"`
	IsDefault bool   `json:"is_default"`
}

func (c *Client) ListBusinessHRUsers(ctx context.Context, businessID uint) ([]model.HRUser, error) {
	var out struct {
		HRUsers []model.HRUser `json:"hr_users"`
	}
	path := fmt.Sprintf("/api/businesses/%d/hr-users/", businessID)
	err := c.get(ctx, "list_hr_users", path, nil, &out, "Failed to fetch HR users")
	return out.HRUsers, err
}

func (c *Client) CreateHRUser(ctx context.Context, in NewHRUser) (*model.HRUser, error) {
	var out model.HRUser
	if err := c.doJSON(ctx, "create_hr_user", http.MethodPost, "/api/hr-users/", in, &out, "Failed to create HR user"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHRUser(ctx context.Context, userID uint, in HRUserUpdate) error {
	path := fmt.Sprintf("/api/hr-users/%d/", userID)
	return c.doJSON(ctx, "update_hr_user", http.MethodPut, path, in, nil, "Failed to update HR user")
}

func (c *Client) DeleteHRUser(ctx context.Context, userID uint) error {
	path := fmt.Sprintf("/api/hr-users/%d/", userID)
	return c.doJSON(ctx, "delete_hr_user", http.MethodDelete, path, nil, nil, "Failed to delete HR user")
}

// ResetHRUserPassword asks the platform to email a password reset link.
func (c *Client) ResetHRUserPassword(ctx context.Context, userID uint) error {
	path := fmt.Sprintf("/api/hr-users/%d/reset-password/", userID)
	return c.doJSON(ctx, "reset_hr_password", http.MethodPost, path, nil, nil, "Failed to reset password")
}

func (c *Client) ListManagers(ctx context.Context, businessID uint) ([]model.Manager, error) {
	var out struct {
		Managers []model.Manager `json:"managers"`
	}
	path := fmt.Sprintf("/api/businesses/%d/managers/", businessID)
	err := c.get(ctx, "list_managers", path, nil, &out, "Failed to fetch managers")
	return out.Managers, err
}

func (c *Client) CreateManager(ctx context.Context, businessID uint, in ManagerInput) (*model.Manager, error) {
	var out model.Manager
	path := fmt.Sprintf("/api/businesses/%d/managers/", businessID)
	if err := c.doJSON(ctx, "create_manager", http.MethodPost, path, in, &out, "Failed to create manager"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateManager(ctx context.Context, managerID uint, in ManagerInput) error {
	path := fmt.Sprintf("/api/managers/%d/", managerID)
	return c.doJSON(ctx, "update_manager", http.MethodPut, path, in, nil, "Failed to update manager")
}

func (c *Client) DeleteManager(ctx context.Context, managerID uint) error {
	path := fmt.Sprintf("/api/managers/%d/", managerID)
	return c.doJSON(ctx, "delete_manager", http.MethodDelete, path, nil, nil, "Failed to delete manager")
}
