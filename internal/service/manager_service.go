package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/platform"
)

type ManagerService struct {
	Platform *platform.Client
	Activity *Activity
}

func NewManagerService(client *platform.Client, activity *Activity) *ManagerService {
	return &ManagerService{Platform: client, Activity: activity}
}

func (s *ManagerService) List(ctx context.Context, businessID uint) ([]model.Manager, error) {
	return s.Platform.ListManagers(ctx, businessID)
}

func (s *ManagerService) Create(ctx context.Context, businessID uint, form ManagerForm) (*model.BusinessDetails, error) {
	_, err := s.Platform.CreateManager(ctx, businessID, form.input())
	s.Activity.Done(ctx, "manager.create", form.Email, err, "Manager created successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

func (s *ManagerService) Update(ctx context.Context, businessID, managerID uint, form ManagerForm) (*model.BusinessDetails, error) {
	err := s.Platform.UpdateManager(ctx, managerID, form.input())
	s.Activity.Done(ctx, "manager.update", fmt.Sprintf("manager:%d", managerID), err, "Manager updated successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

func (s *ManagerService) Delete(ctx context.Context, businessID, managerID uint) (*model.BusinessDetails, error) {
	err := s.Platform.DeleteManager(ctx, managerID)
	s.Activity.Done(ctx, "manager.delete", fmt.Sprintf("manager:%d", managerID), err, "Manager deleted successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}
