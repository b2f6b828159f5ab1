package util

import "errors"

var (
	ErrOperatorNotFound    = errors.New("operator not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrOperatorDisabled    = errors.New("operator account disabled")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNoValidRows         = errors.New("no valid rows")
	ErrMissingEmailColumn  = errors.New("csv is missing the email column")
	ErrNoManagersSelected  = errors.New("at least one manager must be selected")
	ErrNoPrimaryManager    = errors.New("a primary contact must be chosen among the selected managers")
	ErrManagerNotSelected  = errors.New("primary contact must be one of the selected managers")
	ErrUnknownManager      = errors.New("manager does not belong to this business")
	ErrLogoNotImage        = errors.New("logo must be an image")
	ErrLogoTooLarge        = errors.New("logo must be smaller than 2MB")
	ErrInvalidTemplate     = errors.New("question template is missing required columns")
	ErrMaterialNotFound    = errors.New("training material not found")
	ErrInvalidDirection    = errors.New("direction must be up or down")
	ErrUnknownModule       = errors.New("unknown console module")
	ErrSelectionNotFound   = errors.New("selection session not found")
	ErrInvalidDateRange    = errors.New("invalid date in filter")
	ErrUnsupportedTemplate = errors.New("template must be a .csv or .xlsx file")
	ErrPasswordRequired    = errors.New("password is required for new HR users")
)
