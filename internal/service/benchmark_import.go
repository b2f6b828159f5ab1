package service

import (
	"encoding/csv"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ParseBenchmarkCSV reads a campaign upload. The header must name an email
// column; region is optional. Rows without an email are skipped, and an
// upload that leaves nothing is rejected with util.ErrNoValidRows.
func ParseBenchmarkCSV(r io.Reader) ([]model.BenchmarkEmail, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, util.ErrNoValidRows
	}
	if err != nil {
		return nil, errors.Wrap(err, "CSV parsing error")
	}

	emailCol, regionCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "email":
			emailCol = i
		case "region":
			regionCol = i
		}
	}
	if emailCol < 0 {
		return nil, util.ErrMissingEmailColumn
	}

	var emails []model.BenchmarkEmail
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "CSV parsing error")
		}

		entry, ok := normalizeBenchmarkEmail(field(record, emailCol), field(record, regionCol))
		if ok {
			emails = append(emails, entry)
		}
	}

	if len(emails) == 0 {
		return nil, util.ErrNoValidRows
	}
	return emails, nil
}

// normalizeBenchmarkEmail builds an un-sent campaign entry; ok is false when
// the email is blank.
func normalizeBenchmarkEmail(email, region string) (model.BenchmarkEmail, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.BenchmarkEmail{}, false
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = util.DefaultRegion
	}
	return model.BenchmarkEmail{Email: email, Region: region, Sent: false, Completed: false}, true
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
