package service

import (
	"context"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// RegionAll selects every region of the results chart.
const RegionAll = "all"

// AttributeAverage is one bar of the benchmark chart.
type AttributeAverage struct {
	Attribute string  `json:"attribute"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

type BenchmarkChart struct {
	Regions  []string           `json:"regions"`
	Region   string             `json:"region"`
	Averages []AttributeAverage `json:"averages"`
}

// RenderedTemplate is an email template with variables substituted.
type RenderedTemplate struct {
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Placeholders []string `json:"placeholders"`
}

type BenchmarkService struct {
	Platform *platform.Client
	Activity *Activity
}

func NewBenchmarkService(client *platform.Client, activity *Activity) *BenchmarkService {
	return &BenchmarkService{Platform: client, Activity: activity}
}

func (s *BenchmarkService) Emails(ctx context.Context, businessID uint) ([]model.BenchmarkEmail, error) {
	return s.Platform.ListBenchmarkEmails(ctx, businessID)
}

// ImportCSV parses an upload and submits every valid row in one batch. Nothing
// is sent when the file has no valid rows.
func (s *BenchmarkService) ImportCSV(ctx context.Context, businessID uint, r io.Reader) ([]model.BenchmarkEmail, error) {
	emails, err := ParseBenchmarkCSV(r)
	if err != nil {
		s.Activity.Done(ctx, "benchmark.import", businessTarget(businessID), err, "")
		return nil, err
	}
	return s.add(ctx, businessID, "benchmark.import", emails, "Benchmark emails uploaded successfully")
}

// AddEmail adds one address with the same normalization as a CSV row.
func (s *BenchmarkService) AddEmail(ctx context.Context, businessID uint, form BenchmarkEmailForm) ([]model.BenchmarkEmail, error) {
	entry, ok := normalizeBenchmarkEmail(form.Email, form.Region)
	if !ok {
		return nil, util.ErrNoValidRows
	}
	return s.add(ctx, businessID, "benchmark.add", []model.BenchmarkEmail{entry}, "Benchmark email added successfully")
}

func (s *BenchmarkService) add(ctx context.Context, businessID uint, action string, emails []model.BenchmarkEmail, message string) ([]model.BenchmarkEmail, error) {
	err := s.Platform.AddBenchmarkEmails(ctx, businessID, emails)
	s.Activity.Done(ctx, action, businessTarget(businessID), err, message)
	if err != nil {
		return nil, err
	}
	return s.Platform.ListBenchmarkEmails(ctx, businessID)
}

// Send mails (or re-mails) the benchmark link to one address.
func (s *BenchmarkService) Send(ctx context.Context, businessID uint, email string) ([]model.BenchmarkEmail, error) {
	email = strings.TrimSpace(email)
	err := s.Platform.SendBenchmarkEmail(ctx, businessID, email)
	s.Activity.Done(ctx, "benchmark.send", email, err, "Benchmark email sent successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.ListBenchmarkEmails(ctx, businessID)
}

// Results builds the chart for region, or for every region when region is
// empty or "all".
func (s *BenchmarkService) Results(ctx context.Context, businessID uint, region string) (*BenchmarkChart, error) {
	results, err := s.Platform.BenchmarkResults(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if region == "" {
		region = RegionAll
	}
	return &BenchmarkChart{
		Regions:  BenchmarkRegions(results),
		Region:   region,
		Averages: AverageByAttribute(results, region),
	}, nil
}

// BenchmarkRegions lists "all" followed by each region in first-seen order.
func BenchmarkRegions(results []model.BenchmarkResult) []string {
	regions := []string{RegionAll}
	seen := map[string]bool{}
	for _, r := range results {
		if r.Region == "" || seen[r.Region] {
			continue
		}
		seen[r.Region] = true
		regions = append(regions, r.Region)
	}
	return regions
}

// AverageByAttribute averages scores per attribute, rounded to one decimal.
func AverageByAttribute(results []model.BenchmarkResult, region string) []AttributeAverage {
	type bucket struct {
		sum   decimal.Decimal
		count int64
	}
	var order []string
	buckets := map[string]*bucket{}

	for _, r := range results {
		if region != RegionAll && r.Region != region {
			continue
		}
		b, ok := buckets[r.Attribute]
		if !ok {
			b = &bucket{sum: decimal.Zero}
			buckets[r.Attribute] = b
			order = append(order, r.Attribute)
		}
		b.sum = b.sum.Add(decimal.NewFromFloat(r.Score))
		b.count++
	}

	out := make([]AttributeAverage, 0, len(order))
	for _, attr := range order {
		b := buckets[attr]
		avg := b.sum.Div(decimal.NewFromInt(b.count)).Round(1)
		out = append(out, AttributeAverage{Attribute: attr, Average: avg.InexactFloat64(), Count: int(b.count)})
	}
	return out
}

func (s *BenchmarkService) Template(ctx context.Context, businessID uint, kind model.TemplateType) (*model.EmailTemplate, error) {
	return s.Platform.GetEmailTemplate(ctx, businessID, kind)
}

func (s *BenchmarkService) SaveTemplate(ctx context.Context, businessID uint, kind model.TemplateType, form EmailTemplateForm) (*model.EmailTemplate, error) {
	tpl := model.EmailTemplate{TemplateType: kind, Subject: form.Subject, Body: form.Body}
	err := s.Platform.SaveEmailTemplate(ctx, businessID, tpl)
	s.Activity.Done(ctx, "email_template.save", string(kind), err, "Email template saved successfully")
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Preview renders a template with the given variables.
func Preview(tpl model.EmailTemplate, vars map[string]string) RenderedTemplate {
	placeholders := util.TemplatePlaceholders(tpl.Subject + "\n" + tpl.Body)
	return RenderedTemplate{
		Subject:      util.RenderTemplate(tpl.Subject, vars),
		Body:         util.RenderTemplate(tpl.Body, vars),
		Placeholders: placeholders,
	}
}
