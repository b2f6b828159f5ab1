package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	Service *service.BusinessService
}

func NewBusinessController(svc *service.BusinessService) *BusinessController {
	return &BusinessController{Service: svc}
}

// List godoc
// @Summary List businesses
// @Description Sidebar business list, optionally fuzzy matched by name
// @Tags businesses
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "name search"
// @Success 200 {object} util.Response{data=[]model.Business}
// @Router /console/businesses [get]
func (c *BusinessController) List(ctx *gin.Context) {
	businesses, err := c.Service.List(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, businesses)
}

// Details godoc
// @Summary Business details
// @Tags businesses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id} [get]
func (c *BusinessController) Details(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	details, err := c.Service.Details(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// Create godoc
// @Summary Create business
// @Description Creates the business then uploads the optional logo. A failed logo upload is reported in logoWarning.
// @Tags businesses
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "business name"
// @Param primary_color formData string false "brand color"
// @Param logo formData file false "logo image, 2MB max"
// @Success 201 {object} util.Response{data=service.CreateBusinessResult}
// @Failure 400 {object} util.Response
// @Router /console/businesses [post]
func (c *BusinessController) Create(ctx *gin.Context) {
	var form service.CreateBusinessForm
	if err := ctx.ShouldBind(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	logo, ok := readUpload(ctx, "logo", true)
	if !ok {
		return
	}

	result, err := c.Service.Create(ctx.Request.Context(), form, logo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// Update godoc
// @Summary Update business
// @Tags businesses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body service.UpdateBusinessForm true "changes"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id} [put]
func (c *BusinessController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form service.UpdateBusinessForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.Service.Update(ctx.Request.Context(), id, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// Delete godoc
// @Summary Delete business
// @Tags businesses
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response
// @Router /console/businesses/{id} [delete]
func (c *BusinessController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadLogo godoc
// @Summary Replace business logo
// @Tags businesses
// @Accept multipart/form-data
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param logo formData file true "logo image"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/logo [post]
func (c *BusinessController) UploadLogo(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	logo, ok := readUpload(ctx, "logo", false)
	if !ok {
		return
	}
	details, err := c.Service.UploadLogo(ctx.Request.Context(), id, logo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// UploadTemplate godoc
// @Summary Upload question template
// @Description CSV or XLSX with attribute1, attribute2, statement_a, statement_b columns
// @Tags businesses
// @Accept multipart/form-data
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param file formData file true "template"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/template [post]
func (c *BusinessController) UploadTemplate(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	file, ok := readUpload(ctx, "file", false)
	if !ok {
		return
	}
	details, err := c.Service.UploadQuestionTemplate(ctx.Request.Context(), id, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}
