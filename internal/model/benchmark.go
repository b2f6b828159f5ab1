package model

// BenchmarkEmail is one address of a benchmark campaign.
type BenchmarkEmail struct {
	Email     string `json:"email"`
	Region    string `json:"region"`
	Sent      bool   `json:"sent"`
	Completed bool   `json:"completed"`
}

// BenchmarkResult is one attribute score of one completed benchmark.
type BenchmarkResult struct {
	Attribute string  `json:"attribute"`
	Region    string  `json:"region"`
	Score     float64 `json:"score"`
}

type TemplateType string

const (
	TemplateBenchmark TemplateType = "benchmark"
	TemplateStandard  TemplateType = "standard"
)

type EmailTemplate struct {
	TemplateType TemplateType `json:"template_type"`
	Subject      string       `json:"subject"`
	Body         string       `json:"body"`
}
