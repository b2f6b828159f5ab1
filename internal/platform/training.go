package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"net/http"
)

// TrainingMaterialPatch carries only the fields to change.
type TrainingMaterialPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	DocumentURL *string `json:"document_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

func (c *Client) ListTrainingMaterials(ctx context.Context, businessID uint) ([]model.TrainingMaterial, error) {
	var out struct {
		TrainingMaterials []model.TrainingMaterial `json:"training_materials"`
	}
	err := c.get(ctx, "list_training_materials", "/api/training-materials/", businessQuery(businessID), &out, "Failed to fetch training materials")
	return out.TrainingMaterials, err
}

func (c *Client) CreateTrainingMaterial(ctx context.Context, businessID uint, in model.TrainingMaterial) (*model.TrainingMaterial, error) {
	body := struct {
		model.TrainingMaterial
		BusinessID uint `json:"business_id"`
	}{in, businessID}
	var out model.TrainingMaterial
	if err := c.doJSON(ctx, "create_training_material", http.MethodPost, "/api/training-materials/", body, &out, "Failed to create training material"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTrainingMaterial(ctx context.Context, materialID uint, patch TrainingMaterialPatch) error {
	path := fmt.Sprintf("/api/training-materials/%d/", materialID)
	return c.doJSON(ctx, "update_training_material", http.MethodPut, path, patch, nil, "Failed to update training material")
}

func (c *Client) DeleteTrainingMaterial(ctx context.Context, materialID uint) error {
	path := fmt.Sprintf("/api/training-materials/%d/", materialID)
	return c.doJSON(ctx, "delete_training_material", http.MethodDelete, path, nil, nil, "Failed to delete training material")
}
