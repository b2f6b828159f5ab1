package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	Service *service.TrainingService
}

func NewTrainingController(svc *service.TrainingService) *TrainingController {
	return &TrainingController{Service: svc}
}

type moveRequest struct {
	Direction service.Direction `json:"direction" binding:"required,oneof=up down"`
}

// List godoc
// @Summary List training materials
// @Description Materials in display order, including moves not yet saved
// @Tags training
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training [get]
func (c *TrainingController) List(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	list, err := c.Service.List(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Create godoc
// @Summary Create training material
// @Tags training
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body service.TrainingMaterialForm true "material"
// @Success 201 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training [post]
func (c *TrainingController) Create(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form service.TrainingMaterialForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.Create(ctx.Request.Context(), businessID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, list)
}

// Update godoc
// @Summary Update training material
// @Tags training
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param materialId path int true "material id"
// @Param body body service.TrainingMaterialForm true "material"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training/{materialId} [put]
func (c *TrainingController) Update(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(ctx, "materialId")
	if !ok {
		return
	}
	var form service.TrainingMaterialForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.Update(ctx.Request.Context(), businessID, materialID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Delete godoc
// @Summary Delete training material
// @Tags training
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param materialId path int true "material id"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training/{materialId} [delete]
func (c *TrainingController) Delete(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(ctx, "materialId")
	if !ok {
		return
	}
	list, err := c.Service.Delete(ctx.Request.Context(), businessID, materialID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Toggle godoc
// @Summary Toggle material visibility
// @Tags training
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param materialId path int true "material id"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training/{materialId}/toggle [post]
func (c *TrainingController) Toggle(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(ctx, "materialId")
	if !ok {
		return
	}
	list, err := c.Service.ToggleActive(ctx.Request.Context(), businessID, materialID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Move godoc
// @Summary Move material up or down
// @Description Reorders immediately; the order is saved after a short pause in moves
// @Tags training
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param materialId path int true "material id"
// @Param body body moveRequest true "direction"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training/{materialId}/move [post]
func (c *TrainingController) Move(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(ctx, "materialId")
	if !ok {
		return
	}
	var req moveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.Move(ctx.Request.Context(), businessID, materialID, req.Direction)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// UploadDocument godoc
// @Summary Upload material document
// @Tags training
// @Accept multipart/form-data
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param materialId path int true "material id"
// @Param file formData file true "document"
// @Success 200 {object} util.Response{data=[]model.TrainingMaterial}
// @Router /console/businesses/{id}/training/{materialId}/document [post]
func (c *TrainingController) UploadDocument(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(ctx, "materialId")
	if !ok {
		return
	}
	file, ok := readUpload(ctx, "file", false)
	if !ok {
		return
	}
	list, err := c.Service.UploadDocument(ctx.Request.Context(), businessID, materialID, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}
