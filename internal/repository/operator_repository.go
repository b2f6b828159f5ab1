package repository

import (
	"hr_console/internal/model"
	"time"

	"gorm.io/gorm"
)

type OperatorRepository struct {
	DB *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

func (r *OperatorRepository) Create(op *model.Operator) error {
	return r.DB.Create(op).Error
}

func (r *OperatorRepository) FindByID(id uint) (*model.Operator, error) {
	var op model.Operator
	err := r.DB.First(&op, id).Error
	return &op, err
}

func (r *OperatorRepository) FindByEmail(email string) (*model.Operator, error) {
	var op model.Operator
	err := r.DB.Where("email = ?", email).First(&op).Error
	return &op, err
}

func (r *OperatorRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.DB.Model(&model.Operator{}).
		Where("id = ?", id).
		Update("last_login", at).
		Error
}
