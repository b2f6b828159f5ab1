package controller

import (
	"hr_console/internal/service"
	"hr_console/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionPairController struct {
	Service *service.QuestionPairService
}

func NewQuestionPairController(svc *service.QuestionPairService) *QuestionPairController {
	return &QuestionPairController{Service: svc}
}

// List godoc
// @Summary List question pairs
// @Tags question-pairs
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.QuestionPair}
// @Router /console/businesses/{id}/question-pairs [get]
func (c *QuestionPairController) List(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	pairs, err := c.Service.List(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, pairs)
}

// Attributes godoc
// @Summary List attributes
// @Tags question-pairs
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Success 200 {object} util.Response{data=[]model.Attribute}
// @Router /console/businesses/{id}/attributes [get]
func (c *QuestionPairController) Attributes(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	attrs, err := c.Service.Attributes(ctx.Request.Context(), businessID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attrs)
}

// Update godoc
// @Summary Update question pair
// @Tags question-pairs
// @Accept json
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param pairId path int true "question pair id"
// @Param body body service.QuestionPairForm true "statements"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/question-pairs/{pairId} [put]
func (c *QuestionPairController) Update(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	pairID, ok := pathID(ctx, "pairId")
	if !ok {
		return
	}
	var form service.QuestionPairForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.Service.Update(ctx.Request.Context(), businessID, pairID, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// Delete godoc
// @Summary Delete question pair
// @Tags question-pairs
// @Security ApiKeyAuth
// @Param id path int true "business id"
// @Param pairId path int true "question pair id"
// @Success 200 {object} util.Response{data=model.BusinessDetails}
// @Router /console/businesses/{id}/question-pairs/{pairId} [delete]
func (c *QuestionPairController) Delete(ctx *gin.Context) {
	businessID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	pairID, ok := pathID(ctx, "pairId")
	if !ok {
		return
	}
	details, err := c.Service.Delete(ctx.Request.Context(), businessID, pairID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, details)
}
