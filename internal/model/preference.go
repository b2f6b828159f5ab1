package model

// Module ids of the console sidebar.
const (
	ModuleSidebar       = "sidebarModule"
	ModuleHRUsers       = "hrUsersModule"
	ModuleAssessments   = "assessmentModule"
	ModuleBenchmark     = "benchmarkModule"
	ModuleManagers      = "managersModule"
	ModuleQuestionPairs = "questionPairsModule"
	ModuleTraining      = "trainingModule"
)

var AllModules = []string{
	ModuleSidebar,
	ModuleHRUsers,
	ModuleAssessments,
	ModuleBenchmark,
	ModuleManagers,
	ModuleQuestionPairs,
	ModuleTraining,
}

// ModulePreference stores whether an operator shows one console module.
type ModulePreference struct {
	Record
	OperatorID uint   `gorm:"uniqueIndex:idx_operator_module;not null" json:"operatorId"`
	ModuleID   string `gorm:"uniqueIndex:idx_operator_module;size:64;not null" json:"moduleId"`
	Visible    bool   `gorm:"not null" json:"visible"`
}

func (ModulePreference) TableName() string {
	return "console_module_preferences"
}
