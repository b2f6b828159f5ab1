package service

import (
	"hr_console/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestQuestionTemplateCSV_PassesValidCSV(t *testing.T) {
	in := []byte("attribute1,attribute2,statement_a,statement_b\nBold,Careful,I act,I plan\n")
	out, err := QuestionTemplateCSV("pairs.csv", in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestQuestionTemplateCSV_RejectsMissingColumns(t *testing.T) {
	_, err := QuestionTemplateCSV("pairs.csv", []byte("attribute1,statement_a\nx,y\n"))
	assert.ErrorIs(t, err, util.ErrInvalidTemplate)

	_, err = QuestionTemplateCSV("pairs.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, util.ErrUnsupportedTemplate)
}

func TestQuestionTemplateCSV_ConvertsSpreadsheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"attribute1", "attribute2", "statement_a", "statement_b"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Bold", "Careful", "I act fast", "I plan, then act"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	out, err := QuestionTemplateCSV("Pairs.XLSX", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t,
		"attribute1,attribute2,statement_a,statement_b\nBold,Careful,I act fast,\"I plan, then act\"\n",
		string(out))
}
