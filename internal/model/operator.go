package model

import (
	"time"
)

type OperatorRole string

const (
	RoleAdmin  OperatorRole = "admin"
	RoleViewer OperatorRole = "viewer"
)

// swagger:model Operator
type Operator struct {
	Record
	Name      string       `gorm:"size:100;not null" json:"name"`
	Email     string       `gorm:"size:100;unique;not null" json:"email"`
	Password  string       `gorm:"size:100;not null" json:"-"`
	Role      OperatorRole `gorm:"size:20;default:'admin'" json:"role"`
	Disabled  bool         `gorm:"default:false" json:"disabled"`
	LastLogin *time.Time   `json:"lastLogin,omitempty"`
}

func (Operator) TableName() string {
	return "console_operators"
}
