package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
)

type TrainingService struct {
	Platform  *platform.Client
	Activity  *Activity
	Storage   *StorageService
	Reorderer *Reorderer
}

func NewTrainingService(client *platform.Client, activity *Activity, storage *StorageService, debounce time.Duration) *TrainingService {
	s := &TrainingService{Platform: client, Activity: activity, Storage: storage}
	s.Reorderer = NewReorderer(debounce, s.persistOrder, s.orderFlushed)
	return s
}

// List returns materials in display order, preferring an unsaved local order.
func (s *TrainingService) List(ctx context.Context, businessID uint) ([]model.TrainingMaterial, error) {
	if local, ok := s.Reorderer.Local(businessID); ok {
		return local, nil
	}
	list, err := s.Platform.ListTrainingMaterials(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return SortMaterials(list), nil
}

func (s *TrainingService) Create(ctx context.Context, businessID uint, form TrainingMaterialForm) ([]model.TrainingMaterial, error) {
	current, err := s.List(ctx, businessID)
	if err != nil {
		return nil, err
	}
	m := form.material()
	m.Order = len(current)

	_, err = s.Platform.CreateTrainingMaterial(ctx, businessID, m)
	s.Activity.Done(ctx, "training.create", m.Title, err, "Training material created successfully")
	if err != nil {
		return nil, err
	}
	return s.refetch(ctx, businessID)
}

func (s *TrainingService) Update(ctx context.Context, businessID, materialID uint, form TrainingMaterialForm) ([]model.TrainingMaterial, error) {
	title := strings.TrimSpace(form.Title)
	patch := platform.TrainingMaterialPatch{
		Title:       &title,
		Description: &form.Description,
		Icon:        &form.Icon,
		Color:       &form.Color,
		DocumentURL: &form.DocumentURL,
		Active:      form.Active,
	}
	return s.patch(ctx, businessID, materialID, "training.update", patch, "Training material updated successfully")
}

func (s *TrainingService) Delete(ctx context.Context, businessID, materialID uint) ([]model.TrainingMaterial, error) {
	err := s.Platform.DeleteTrainingMaterial(ctx, materialID)
	s.Activity.Done(ctx, "training.delete", materialTarget(materialID), err, "Training material deleted successfully")
	if err != nil {
		return nil, err
	}
	s.Reorderer.Remove(businessID, materialID)
	return s.refetch(ctx, businessID)
}

// ToggleActive flips the active flag of one material.
func (s *TrainingService) ToggleActive(ctx context.Context, businessID, materialID uint) ([]model.TrainingMaterial, error) {
	current, err := s.List(ctx, businessID)
	if err != nil {
		return nil, err
	}
	var target *model.TrainingMaterial
	for i := range current {
		if current[i].ID == materialID {
			target = &current[i]
			break
		}
	}
	if target == nil {
		return nil, util.ErrMaterialNotFound
	}

	active := !target.Active
	msg := "Training material deactivated"
	if active {
		msg = "Training material activated"
	}
	return s.patch(ctx, businessID, materialID, "training.toggle", platform.TrainingMaterialPatch{Active: &active}, msg)
}

// Move reorders locally right away; the new order is saved once the operator
// stops moving items.
func (s *TrainingService) Move(ctx context.Context, businessID, materialID uint, dir Direction) ([]model.TrainingMaterial, error) {
	var base []model.TrainingMaterial
	if _, ok := s.Reorderer.Local(businessID); !ok {
		list, err := s.Platform.ListTrainingMaterials(ctx, businessID)
		if err != nil {
			return nil, err
		}
		base = list
	}
	list, err := s.Reorderer.Move(businessID, util.OperatorIDFromContext(ctx), base, materialID, dir)
	if err == util.ErrMaterialNotFound && base == nil {
		// the local order was flushed between the check and the move
		if base, err = s.Platform.ListTrainingMaterials(ctx, businessID); err != nil {
			return nil, err
		}
		return s.Reorderer.Move(businessID, util.OperatorIDFromContext(ctx), base, materialID, dir)
	}
	return list, err
}

// UploadDocument stores a document and links it to the material.
func (s *TrainingService) UploadDocument(ctx context.Context, businessID, materialID uint, file *Upload) ([]model.TrainingMaterial, error) {
	key, url, err := s.Storage.StoreDocument(ctx, businessID, file)
	if err != nil {
		s.Activity.Done(ctx, "training.document", materialTarget(materialID), err, "")
		return nil, err
	}

	list, err := s.patch(ctx, businessID, materialID, "training.document",
		platform.TrainingMaterialPatch{DocumentURL: &url}, "Document uploaded successfully")
	if err != nil {
		if derr := s.Storage.Delete(ctx, key); derr != nil {
			logger.Log.Warn("remove orphan document failed", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}
	return list, nil
}

func (s *TrainingService) patch(ctx context.Context, businessID, materialID uint, action string, patch platform.TrainingMaterialPatch, message string) ([]model.TrainingMaterial, error) {
	err := s.Platform.UpdateTrainingMaterial(ctx, materialID, patch)
	s.Activity.Done(ctx, action, materialTarget(materialID), err, message)
	if err != nil {
		return nil, err
	}
	return s.refetch(ctx, businessID)
}

// refetch reloads the server list after a mutation and merges it into any
// pending local order.
func (s *TrainingService) refetch(ctx context.Context, businessID uint) ([]model.TrainingMaterial, error) {
	list, err := s.Platform.ListTrainingMaterials(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if local, ok := s.Reorderer.Reconcile(businessID, list); ok {
		return local, nil
	}
	return SortMaterials(list), nil
}

// persistOrder writes every material's final order, one call per material.
func (s *TrainingService) persistOrder(ctx context.Context, businessID uint, materials []model.TrainingMaterial) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, m := range materials {
		order := m.Order
		if err := s.Platform.UpdateTrainingMaterial(ctx, m.ID, platform.TrainingMaterialPatch{Order: &order}); err != nil {
			return err
		}
	}
	logger.Log.Info("training order saved",
		zap.Uint("business_id", businessID),
		zap.Int("materials", len(materials)))
	return nil
}

func (s *TrainingService) orderFlushed(businessID, operatorID uint, err error) {
	ctx := util.WithOperatorID(context.Background(), operatorID)
	s.Activity.Done(ctx, "training.reorder", businessTarget(businessID), err, "Training order saved")
}

// Shutdown saves pending orders before exit.
func (s *TrainingService) Shutdown() {
	s.Reorderer.FlushAll()
}

func materialTarget(id uint) string {
	return fmt.Sprintf("training_material:%d", id)
}
