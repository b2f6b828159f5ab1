package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is embedded by console tables that are edited in place.
type Record struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LogRecord is embedded by append-only console tables. Ids sort by creation
// time.
type LogRecord struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (r *LogRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}

// NewID returns a time-ordered UUID, falling back to a random one.
func NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
