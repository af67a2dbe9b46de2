package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

func TestBuildWorkbook(t *testing.T) {
	declared := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	results := []*models.Result{
		{
			ID:              "r1",
			DeclarationDate: declared,
			Student:         &models.User{Name: "Asha", RollNo: "R1"},
			Items: []*models.ResultItem{
				{
					Subject:       &models.Subject{SubCode: "CS101", SubName: "Algorithms"},
					MarksObtained: 88,
					TotalMarks:    100,
				},
				{
					Subject:       &models.Subject{SubCode: "MA201", SubName: "Linear Algebra"},
					MarksObtained: 72.5,
					TotalMarks:    100,
				},
			},
		},
	}

	file, err := buildWorkbook(results)
	require.NoError(t, err)
	defer file.Close()

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)

	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reopened.Close()

	header, err := reopened.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Student", header)

	name, _ := reopened.GetCellValue(exportSheet, "A2")
	assert.Equal(t, "Asha", name)
	date, _ := reopened.GetCellValue(exportSheet, "C2")
	assert.Equal(t, "2026-03-15", date)
	code, _ := reopened.GetCellValue(exportSheet, "D2")
	assert.Equal(t, "CS101", code)
	marks, _ := reopened.GetCellValue(exportSheet, "F2")
	assert.Equal(t, "88", marks)

	secondCode, _ := reopened.GetCellValue(exportSheet, "D3")
	assert.Equal(t, "MA201", secondCode)

	rows, err := reopened.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + one row per item
}

func TestBuildWorkbookEmpty(t *testing.T) {
	file, err := buildWorkbook(nil)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
