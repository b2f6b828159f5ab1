package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// assessmentRequest is an assessment form plus the manager selection that
// fills its manager fields.
type assessmentRequest struct {
	service.AssessmentForm
	SelectionID string `json:"selection_id"`
}

type managerRequest struct {
	ManagerID uint `json:"manager_id" binding:"required"`
}

// List godoc
// @Summary List assessments
// @Description Standard assessments of a business, narrowed by the date and status filters
// @Tags assessments
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param dateEnabled query bool false "apply the date range"
// @Param start query string false "start date YYYY-MM-DD"
// @Param end query string false "end date YYYY-MM-DD"
// @Param statusEnabled query bool false "apply the status filter"
// @Param status query string false "all, completed or pending"
// @Success 200 {object} util.Response{data=service.AssessmentList}
// @Router /console/businesses/{id}/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var filter service.AssessmentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.List(ctx.Request.Context(), businessID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// StartSelection godoc
// @Summary Start manager selection
// @Description Opens a selection draft, seeded from the assessment when assessment_id is given
// @Tags assessments
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param assessment_id query int false "assessment being edited"
// @Success 201 {object} util.Response{data=service.SelectionDraft}
// @Router /console/businesses/{id}/selections [post]
func (c *AssessmentController) StartSelection(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var assessmentID uint
	if raw := ctx.Query("assessment_id"); raw != "" {
		id, valid := util.ParseID(raw)
		if !valid {
			util.BadRequest(ctx, "Invalid assessment_id")
			return
		}
		assessmentID = id
	}
	draft, err := c.Service.StartSelection(ctx.Request.Context(), businessID, assessmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, draft)
}

// GetSelection godoc
// @Summary Get manager selection
// @Tags assessments
// @Security ApiKeyAuth
// @Param selectionId path string true "selection id"
// @Success 200 {object} util.Response{data=service.SelectionDraft}
// @Router /console/selections/{selectionId} [get]
func (c *AssessmentController) GetSelection(ctx *gin.Context) {
	draft, err := c.Service.Selection(ctx.Request.Context(), ctx.Param("selectionId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, draft)
}

// ToggleManager godoc
// @Summary Toggle a manager in the selection
// @Tags assessments
// @Accept json
// @Security ApiKeyAuth
// @Param selectionId path string true "selection id"
// @Param body body managerRequest true "manager"
// @Success 200 {object} util.Response{data=service.SelectionDraft}
// @Router /console/selections/{selectionId}/toggle [post]
func (c *AssessmentController) ToggleManager(ctx *gin.Context) {
	var req managerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	draft, err := c.Service.ToggleManager(ctx.Request.Context(), ctx.Param("selectionId"), req.ManagerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, draft)
}

// SetPrimary godoc
// @Summary Choose the primary manager
// @Tags assessments
// @Accept json
// @Security ApiKeyAuth
// @Param selectionId path string true "selection id"
// @Param body body managerRequest true "manager"
// @Success 200 {object} util.Response{data=service.SelectionDraft}
// @Router /console/selections/{selectionId}/primary [put]
func (c *AssessmentController) SetPrimary(ctx *gin.Context) {
	var req managerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	draft, err := c.Service.SetPrimary(ctx.Request.Context(), ctx.Param("selectionId"), req.ManagerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, draft)
}

// Create godoc
// @Summary Create assessment
// @Tags assessments
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body assessmentRequest true "assessment"
// @Success 201 {object} util.Response{data=[]model.Assessment}
// @Failure 400 {object} util.Response
// @Router /console/businesses/{id}/assessments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req assessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.Create(ctx.Request.Context(), businessID, req.AssessmentForm, req.SelectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, list)
}

// Update godoc
// @Summary Update assessment
// @Tags assessments
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param assessmentId path int true "assessment id"
// @Param body body assessmentRequest true "assessment"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /console/businesses/{id}/assessments/{assessmentId} [put]
func (c *AssessmentController) Update(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assessmentID, ok := pathID(ctx, "assessmentId")
	if !ok {
		return
	}
	var req assessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	list, err := c.Service.Update(ctx.Request.Context(), businessID, assessmentID, req.AssessmentForm, req.SelectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Delete godoc
// @Summary Delete assessment
// @Tags assessments
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param assessmentId path int true "assessment id"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /console/businesses/{id}/assessments/{assessmentId} [delete]
func (c *AssessmentController) Delete(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assessmentID, ok := pathID(ctx, "assessmentId")
	if !ok {
		return
	}
	list, err := c.Service.Delete(ctx.Request.Context(), businessID, assessmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Resend godoc
// @Summary Resend assessment emails
// @Tags assessments
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param assessmentId path int true "assessment id"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /console/businesses/{id}/assessments/{assessmentId}/resend [post]
func (c *AssessmentController) Resend(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assessmentID, ok := pathID(ctx, "assessmentId")
	if !ok {
		return
	}
	list, err := c.Service.Resend(ctx.Request.Context(), businessID, assessmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Report godoc
// @Summary Assessment report
// @Description Streams the PDF report inline, or as an attachment with download=true
// @Tags assessments
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param assessmentId path int true "assessment id"
// @Param download query bool false "attachment variant"
// @Success 200 {file} binary
// @Router /console/assessments/{assessmentId}/report [get]
func (c *AssessmentController) Report(ctx *gin.Context) {
	assessmentID, ok := pathID(ctx, "assessmentId")
	if !ok {
		return
	}
	download := ctx.Query("download") == "true"

	report, err := c.Service.Report(ctx.Request.Context(), assessmentID, download)
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer report.Body.Close()

	contentType := report.ContentType
	if contentType == "" {
		contentType = util.MimePDF
	}
	headers := map[string]string{}
	if report.ContentDisposition != "" {
		headers["Content-Disposition"] = report.ContentDisposition
	}
	ctx.DataFromReader(http.StatusOK, report.ContentLength, contentType, report.Body, headers)
}
