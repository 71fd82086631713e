package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ayushqc/college-info-api/internal/model"
)

// ExportSheet is the name of the single worksheet in exported workbooks.
const ExportSheet = "Colleges"

var exportHeaders = []string{
	"College", "District", "Address",
	"Program", "Cutoff", "Eligibility", "Medium",
	"Phone", "Email", "Website",
}

// ExportService renders college records into spreadsheet form.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook serializes colleges into an xlsx buffer, one row per
// college-program pair. A college without programs still emits a single row
// with empty program columns.
func (s *ExportService) BuildWorkbook(colleges []model.College) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ExportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header %s: %w", cell, err)
		}
	}

	row := 2
	for _, college := range colleges {
		programs := college.Programs
		if len(programs) == 0 {
			programs = []model.Program{{}}
		}
		for _, p := range programs {
			values := []interface{}{
				college.Name, college.District, college.Address,
				p.Name, p.Cutoff, p.Eligibility, p.Medium,
				college.Contact.Phone, college.Contact.Email, college.Contact.Website,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(ExportSheet, cell, v); err != nil {
					return nil, fmt.Errorf("write cell %s: %w", cell, err)
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}
