package repository

import (
	"hr_console/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository stores module visibility per operator.
type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) Load(operatorID uint) (map[string]bool, error) {
	var prefs []model.ModulePreference
	if err := r.DB.Where("operator_id = ?", operatorID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(prefs))
	for _, p := range prefs {
		out[p.ModuleID] = p.Visible
	}
	return out, nil
}

func (r *PreferenceRepository) Save(operatorID uint, moduleID string, visible bool) error {
	pref := model.ModulePreference{OperatorID: operatorID, ModuleID: moduleID, Visible: visible}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "operator_id"}, {Name: "module_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"visible": visible}),
	}).Create(&pref).Error
}
