package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"strings"
)

type HRUserService struct {
	Platform *platform.Client
	Activity *Activity
}

func NewHRUserService(client *platform.Client, activity *Activity) *HRUserService {
	return &HRUserService{Platform: client, Activity: activity}
}

func (s *HRUserService) List(ctx context.Context, businessID uint) ([]model.HRUser, error) {
	return s.Platform.ListBusinessHRUsers(ctx, businessID)
}

func (s *HRUserService) Create(ctx context.Context, businessID uint, form HRUserForm) (*model.BusinessDetails, error) {
	if strings.TrimSpace(form.Password) == "" {
		return nil, util.ErrPasswordRequired
	}
	_, err := s.Platform.CreateHRUser(ctx, platform.NewHRUser{
		Email:      strings.TrimSpace(form.Email),
		FirstName:  strings.TrimSpace(form.FirstName),
		LastName:   strings.TrimSpace(form.LastName),
		Password:   form.Password,
		BusinessID: businessID,
	})
	s.Activity.Done(ctx, "hr_user.create", form.Email, err, "HR user created successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

func (s *HRUserService) Update(ctx context.Context, businessID, userID uint, form HRUserForm) (*model.BusinessDetails, error) {
	err := s.Platform.UpdateHRUser(ctx, userID, platform.HRUserUpdate{
		Email:     strings.TrimSpace(form.Email),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		IsActive:  form.IsActive,
		Password:  form.Password,
	})
	s.Activity.Done(ctx, "hr_user.update", fmt.Sprintf("hr_user:%d", userID), err, "HR user updated successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

func (s *HRUserService) Delete(ctx context.Context, businessID, userID uint) (*model.BusinessDetails, error) {
	err := s.Platform.DeleteHRUser(ctx, userID)
	s.Activity.Done(ctx, "hr_user.delete", fmt.Sprintf("hr_user:%d", userID), err, "HR user deleted successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

// ResetPassword triggers the platform's password reset mail.
func (s *HRUserService) ResetPassword(ctx context.Context, userID uint) error {
	err := s.Platform.ResetHRUserPassword(ctx, userID)
	s.Activity.Done(ctx, "hr_user.reset_password", fmt.Sprintf("hr_user:%d", userID), err, "Password reset email sent")
	return err
}
