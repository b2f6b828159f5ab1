package service

import (
	"bytes"
	"encoding/csv"
	"hr_console/internal/util"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// QuestionTemplateCSV returns the upload as a CSV template. Spreadsheets are
// converted from their first sheet; either way the header must carry every
// template column.
func QuestionTemplateCSV(filename string, content []byte) ([]byte, error) {
	var rows [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(content))
		r.FieldsPerRecord = -1
		header, err := r.Read()
		if err != nil {
			return nil, util.ErrInvalidTemplate
		}
		if err := checkTemplateHeader(header); err != nil {
			return nil, err
		}
		return content, nil
	case ".xlsx":
		var err error
		rows, err = readSheet(content)
		if err != nil {
			return nil, err
		}
	default:
		return nil, util.ErrUnsupportedTemplate
	}

	if len(rows) == 0 {
		return nil, util.ErrInvalidTemplate
	}
	if err := checkTemplateHeader(rows[0]); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "write template csv")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "write template csv")
	}
	return buf.Bytes(), nil
}

func readSheet(content []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "open spreadsheet")
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, util.ErrInvalidTemplate
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "read spreadsheet")
	}
	return rows, nil
}

func checkTemplateHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = true
	}
	for _, col := range util.QuestionTemplateColumns {
		if !seen[col] {
			return util.ErrInvalidTemplate
		}
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
