package controller

import (
	"errors"
	"hr_console/internal/platform"
	"hr_console/internal/service"
	"hr_console/internal/util"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps every multipart file read into memory.
const maxUploadBytes = 20 << 20

var badRequestErrors = []error{
	util.ErrNoValidRows,
	util.ErrMissingEmailColumn,
	util.ErrNoManagersSelected,
	util.ErrNoPrimaryManager,
	util.ErrManagerNotSelected,
	util.ErrUnknownManager,
	util.ErrLogoNotImage,
	util.ErrLogoTooLarge,
	util.ErrInvalidTemplate,
	util.ErrUnsupportedTemplate,
	util.ErrInvalidDirection,
	util.ErrUnknownModule,
	util.ErrInvalidDateRange,
	util.ErrPasswordRequired,
}

var notFoundErrors = []error{
	util.ErrSelectionNotFound,
	util.ErrMaterialNotFound,
	util.ErrOperatorNotFound,
}

// respondError maps service and platform errors onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		util.Error(ctx, status, apiErr.Message)
		return
	}

	for _, e := range badRequestErrors {
		if errors.Is(err, e) {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	for _, e := range notFoundErrors {
		if errors.Is(err, e) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrOperatorDisabled), errors.Is(err, util.ErrPermissionDenied):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID reads a positive numeric path parameter, answering 400 otherwise.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, ok := util.ParseID(ctx.Param(name))
	if !ok {
		util.BadRequest(ctx, "Invalid "+name)
	}
	return id, ok
}

// readUpload loads a multipart file. ok is false and nothing is written when
// the field is absent and optional is set.
func readUpload(ctx *gin.Context, field string, optional bool) (*service.Upload, bool) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if optional && errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		util.BadRequest(ctx, "Missing file field "+field)
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, false
	}
	if len(content) > maxUploadBytes {
		util.Error(ctx, http.StatusRequestEntityTooLarge, "File is too large")
		return nil, false
	}
	return &service.Upload{Filename: header.Filename, Size: header.Size, Content: content}, true
}
