package model

type AuditOutcome string

const (
	OutcomeSuccess AuditOutcome = "success"
	OutcomeWarning AuditOutcome = "warning"
	OutcomeFailure AuditOutcome = "failure"
)

// AuditEntry records one mutating console action.
type AuditEntry struct {
	LogRecord
	OperatorID uint         `gorm:"index" json:"operatorId"`
	Action     string       `gorm:"size:64;index" json:"action"`
	Target     string       `gorm:"size:255" json:"target"`
	Outcome    AuditOutcome `gorm:"size:16" json:"outcome"`
	Detail     string       `gorm:"type:text" json:"detail,omitempty"`
}

func (AuditEntry) TableName() string {
	return "console_audit_entries"
}
