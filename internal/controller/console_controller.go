package controller

import (
	"hr_console/internal/model"
	"hr_console/internal/service"
	"hr_console/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ConsoleController serves the operator's own console state: module
// visibility, pending notices and the audit trail.
type ConsoleController struct {
	Modules *service.ModuleVisibilityService
	Notices *service.NoticeService
	Audit   *service.AuditService
}

func NewConsoleController(modules *service.ModuleVisibilityService, notices *service.NoticeService, audit *service.AuditService) *ConsoleController {
	return &ConsoleController{Modules: modules, Notices: notices, Audit: audit}
}

type moduleRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// ListModules godoc
// @Summary Module visibility
// @Tags console
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=map[string]bool}
// @Router /console/modules [get]
func (c *ConsoleController) ListModules(ctx *gin.Context) {
	visible, err := c.Modules.Load(ctx.Request.Context(), util.OperatorIDFromContext(ctx.Request.Context()))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, visible)
}

// SetModule godoc
// @Summary Show or hide a module
// @Tags console
// @Accept json
// @Security ApiKeyAuth
// @Param module path string true "module id"
// @Param body body moduleRequest true "visibility"
// @Success 200 {object} util.Response{data=map[string]bool}
// @Router /console/modules/{module} [put]
func (c *ConsoleController) SetModule(ctx *gin.Context) {
	var req moduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	reqCtx := ctx.Request.Context()
	visible, err := c.Modules.Set(reqCtx, util.OperatorIDFromContext(reqCtx), ctx.Param("module"), *req.Visible)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, visible)
}

// ToggleModule godoc
// @Summary Toggle a module
// @Tags console
// @Security ApiKeyAuth
// @Param module path string true "module id"
// @Success 200 {object} util.Response{data=map[string]bool}
// @Router /console/modules/{module}/toggle [post]
func (c *ConsoleController) ToggleModule(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	visible, err := c.Modules.Toggle(reqCtx, util.OperatorIDFromContext(reqCtx), ctx.Param("module"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, visible)
}

// ListNotices godoc
// @Summary Pending notices
// @Description Success and error notices of the operator that have not expired yet
// @Tags console
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Notice}
// @Router /console/notices [get]
func (c *ConsoleController) ListNotices(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	notices, err := c.Notices.List(reqCtx, util.OperatorIDFromContext(reqCtx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, notices)
}

// ListAudit godoc
// @Summary Audit trail
// @Description The operator's own entries; admins may pass all=true
// @Tags console
// @Security ApiKeyAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param all query bool false "every operator, admin only"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /console/audit [get]
func (c *ConsoleController) ListAudit(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	operatorID := util.OperatorIDFromContext(ctx.Request.Context())
	if ctx.Query("all") == "true" {
		claims := util.GetOperatorFromContext(ctx)
		if claims == nil || claims.Role != model.RoleAdmin {
			util.Forbidden(ctx)
			return
		}
		operatorID = 0
	}

	entries, total, err := c.Audit.List(operatorID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Paged(ctx, entries, total, page, limit)
}
