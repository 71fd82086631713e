package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ayushqc/college-info-api/internal/model"
)

func TestBuildWorkbook(t *testing.T) {
	colleges := []model.College{
		{
			Name:     "Government Engineering College",
			District: "Bhopal",
			Programs: []model.Program{
				{Name: "Computer Science", Cutoff: 92.5, Eligibility: "10+2 PCM", Medium: "English"},
				{Name: "Mechanical Engineering", Cutoff: 85, Medium: "English"},
			},
			Contact: model.Contact{Phone: "0755-1234567", Email: "info@gec.example"},
		},
		{
			Name:     "Arts College",
			District: "Indore",
		},
	}

	buf, err := NewExportService().BuildWorkbook(colleges)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)

	// Header + two program rows + one row for the program-less college.
	require.Len(t, rows, 4)
	assert.Equal(t, "College", rows[0][0])
	assert.Equal(t, "Program", rows[0][3])

	assert.Equal(t, "Government Engineering College", rows[1][0])
	assert.Equal(t, "Computer Science", rows[1][3])
	assert.Equal(t, "92.5", rows[1][4])

	assert.Equal(t, "Mechanical Engineering", rows[2][3])

	assert.Equal(t, "Arts College", rows[3][0])
	assert.Equal(t, "Indore", rows[3][1])
}

func TestBuildWorkbookEmpty(t *testing.T) {
	buf, err := NewExportService().BuildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}
