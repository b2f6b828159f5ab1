package util

// DateFormat is the layout of filter dates.
const DateFormat = "2006-01-02"

const (
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

// DefaultRegion is used for benchmark emails imported without a region.
const DefaultRegion = "Default"

// Statuses accepted by the assessment list filter.
const (
	StatusAll       = "all"
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

var QuestionTemplateColumns = []string{"attribute1", "attribute2", "statement_a", "statement_b"}
