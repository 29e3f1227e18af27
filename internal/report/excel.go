package report

import (
	"fmt"
	"io"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Exam Schedule"

var excelHeader = []interface{}{"Course Name", "Course ID", "Student Count", "Exam Time", "Room Assigned"}

// Excel writes the tabular export as an .xlsx workbook to Path.
type Excel struct {
	Path string
}

func (e *Excel) Report(schedule *model.Schedule) error {
	f, err := Workbook(schedule.Rows())
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("excel report %s: %w", e.Path, err)
	}
	return nil
}

// WriteExcel streams the workbook for rows to w.
func WriteExcel(w io.Writer, rows []*model.ScheduleCSVRow) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Workbook builds a single sheet workbook, header first and one row per
// scheduled course. The caller closes it.
func Workbook(rows []*model.ScheduleCSVRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &excelHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{r.CourseName, r.CourseID, r.StudentCount, r.ExamTime, r.Classroom}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "E", 18); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
