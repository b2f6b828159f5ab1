package controller

import (
	"bytes"
	"hr_console/internal/model"
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

type BenchmarkController struct {
	Service *service.BenchmarkService
}

func NewBenchmarkController(svc *service.BenchmarkService) *BenchmarkController {
	return &BenchmarkController{Service: svc}
}

type sendBenchmarkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type previewRequest struct {
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Variables map[string]string `json:"variables"`
}

// templateType reads the template path parameter, answering 400 for unknown
// types.
func templateType(ctx *gin.Context) (model.TemplateType, bool) {
	switch kind := model.TemplateType(ctx.Param("type")); kind {
	case model.TemplateBenchmark, model.TemplateStandard:
		return kind, true
	}
	util.BadRequest(ctx, "Template type must be benchmark or standard")
	return "", false
}

// Emails godoc
// @Summary List benchmark emails
// @Tags benchmark
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.BenchmarkEmail}
// @Router /console/businesses/{id}/benchmark/emails [get]
func (c *BenchmarkController) Emails(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	emails, err := c.Service.Emails(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, emails)
}

// Import godoc
// @Summary Import benchmark emails
// @Description CSV with an email column and an optional region column; all valid rows are sent in one batch
// @Tags benchmark
// @Accept multipart/form-data
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param file formData file true "csv file"
// @Success 200 {object} util.Response{data=[]model.BenchmarkEmail}
// @Failure 400 {object} util.Response
// @Router /console/businesses/{id}/benchmark/emails/import [post]
func (c *BenchmarkController) Import(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	file, ok := readUpload(ctx, "file", false)
	if !ok {
		return
	}
	emails, err := c.Service.ImportCSV(ctx.Request.Context(), businessID, bytes.NewReader(file.Content))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, emails)
}

// Add godoc
// @Summary Add one benchmark email
// @Tags benchmark
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body service.BenchmarkEmailForm true "email"
// @Success 201 {object} util.Response{data=[]model.BenchmarkEmail}
// @Router /console/businesses/{id}/benchmark/emails [post]
func (c *BenchmarkController) Add(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form service.BenchmarkEmailForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	emails, err := c.Service.AddEmail(ctx.Request.Context(), businessID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, emails)
}

// Send godoc
// @Summary Send the benchmark link
// @Tags benchmark
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body sendBenchmarkRequest true "recipient"
// @Success 200 {object} util.Response{data=[]model.BenchmarkEmail}
// @Router /console/businesses/{id}/benchmark/send [post]
func (c *BenchmarkController) Send(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req sendBenchmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	emails, err := c.Service.Send(ctx.Request.Context(), businessID, req.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, emails)
}

// Results godoc
// @Summary Benchmark results chart
// @Tags benchmark
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param region query string false "region, all by default"
// @Success 200 {object} util.Response{data=service.BenchmarkChart}
// @Router /console/businesses/{id}/benchmark/results [get]
func (c *BenchmarkController) Results(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	chart, err := c.Service.Results(ctx.Request.Context(), businessID, ctx.Query("region"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, chart)
}

// Template godoc
// @Summary Get email template
// @Tags benchmark
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param type path string true "benchmark or standard"
// @Success 200 {object} util.Response{data=model.EmailTemplate}
// @Router /console/businesses/{id}/email-templates/{type} [get]
func (c *BenchmarkController) Template(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	kind, ok := templateType(ctx)
	if !ok {
		return
	}
	tpl, err := c.Service.Template(ctx.Request.Context(), businessID, kind)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tpl)
}

// SaveTemplate godoc
// @Summary Save email template
// @Tags benchmark
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param type path string true "benchmark or standard"
// @Param body body service.EmailTemplateForm true "template"
// @Success 200 {object} util.Response{data=model.EmailTemplate}
// @Router /console/businesses/{id}/email-templates/{type} [put]
func (c *BenchmarkController) SaveTemplate(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	kind, ok := templateType(ctx)
	if !ok {
		return
	}
	var form service.EmailTemplateForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	tpl, err := c.Service.SaveTemplate(ctx.Request.Context(), businessID, kind, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tpl)
}

// Preview godoc
// @Summary Preview email template
// @Description Renders the posted subject and body, or the saved template when both are empty
// @Tags benchmark
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param type path string true "benchmark or standard"
// @Param body body previewRequest true "template and variables"
// @Success 200 {object} util.Response{data=service.RenderedTemplate}
// @Router /console/businesses/{id}/email-templates/{type}/preview [post]
func (c *BenchmarkController) Preview(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	kind, ok := templateType(ctx)
	if !ok {
		return
	}
	var req previewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tpl := model.EmailTemplate{TemplateType: kind, Subject: req.Subject, Body: req.Body}
	if req.Subject == "" && req.Body == "" {
		saved, err := c.Service.Template(ctx.Request.Context(), businessID, kind)
		if err != nil {
			respondError(ctx, err)
			return
		}
		tpl = *saved
	}
	util.Success(ctx, service.Preview(tpl, req.Variables))
}
