package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

// PeopleController serves HR users and managers of a business.
type PeopleController struct {
	HRUsers  *service.HRUserService
	Managers *service.ManagerService
}

func NewPeopleController(hrUsers *service.HRUserService, managers *service.ManagerService) *PeopleController {
	return &PeopleController{HRUsers: hrUsers, Managers: managers}
}

// ListHRUsers godoc
// @Summary List HR users
// @Tags hr-users
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.HRUser}
// @Router /console/businesses/{id}/hr-users [get]
func (c *PeopleController) ListHRUsers(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	users, err := c.HRUsers.List(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// CreateHRUser godoc
// @Summary Create HR user
// @Tags hr-users
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body service.HRUserForm true "HR user"
// @Success 201 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/hr-users [post]
func (c *PeopleController) CreateHRUser(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form service.HRUserForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.HRUsers.Create(ctx.Request.Context(), businessID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, details)
}

// UpdateHRUser godoc
// @Summary Update HR user
// @Tags hr-users
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param userId path int true "HR user id"
// @Param body body service.HRUserForm true "HR user"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/hr-users/{userId} [put]
func (c *PeopleController) UpdateHRUser(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	var form service.HRUserForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.HRUsers.Update(ctx.Request.Context(), businessID, userID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// DeleteHRUser godoc
// @Summary Delete HR user
// @Tags hr-users
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param userId path int true "HR user id"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/hr-users/{userId} [delete]
func (c *PeopleController) DeleteHRUser(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	details, err := c.HRUsers.Delete(ctx.Request.Context(), businessID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// ResetHRUserPassword godoc
// @Summary Send HR user password reset
// @Tags hr-users
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param userId path int true "HR user id"
// @Success 200 {object} util.Response
// @Router /console/businesses/{id}/hr-users/{userId}/reset-password [post]
func (c *PeopleController) ResetHRUserPassword(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	if err := c.HRUsers.ResetPassword(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListManagers godoc
// @Summary List managers
// @Tags managers
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.Manager}
// @Router /console/businesses/{id}/managers [get]
func (c *PeopleController) ListManagers(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	managers, err := c.Managers.List(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, managers)
}

// CreateManager godoc
// @Summary Create manager
// @Tags managers
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param body body service.ManagerForm true "manager"
// @Success 201 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/managers [post]
func (c *PeopleController) CreateManager(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form service.ManagerForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.Managers.Create(ctx.Request.Context(), businessID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, details)
}

// UpdateManager godoc
// @Summary Update manager
// @Tags managers
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param managerId path int true "manager id"
// @Param body body service.ManagerForm true "manager"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/managers/{managerId} [put]
func (c *PeopleController) UpdateManager(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	managerID, ok := pathID(ctx, "managerId")
	if !ok {
		return
	}
	var form service.ManagerForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.Managers.Update(ctx.Request.Context(), businessID, managerID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// DeleteManager godoc
// @Summary Delete manager
// @Tags managers
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param managerId path int true "manager id"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/managers/{managerId} [delete]
func (c *PeopleController) DeleteManager(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	managerID, ok := pathID(ctx, "managerId")
	if !ok {
		return
	}
	details, err := c.Managers.Delete(ctx.Request.Context(), businessID, managerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}
