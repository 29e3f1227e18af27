package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-exam-schedule/pkg/model"
)

// ExportSchedule formats the schedule data into ScheduleCSVRow structs and
// writes it to the CSV file specified by the given path.
func ExportSchedule(schedule *model.Schedule, path string, delim rune) (string, error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := WriteSchedule(out, schedule, delim); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteSchedule writes one row per assigned course. Unscheduled courses
// are left out of the table.
func WriteSchedule(w io.Writer, schedule *model.Schedule, delim rune) error {
	rows := schedule.Rows()
	writer := csv.NewWriter(w)
	writer.Comma = delim
	return gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer))
}

// ExportScheduleString returns the CSV export as a string.
func ExportScheduleString(schedule *model.Schedule, delim rune) (string, error) {
	var sb strings.Builder
	if err := WriteSchedule(&sb, schedule, delim); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ReadScheduleRows parses a previously exported schedule.
func ReadScheduleRows(in io.Reader, delim rune) ([]*model.ScheduleCSVRow, error) {
	rows := []*model.ScheduleCSVRow{}
	if err := gocsv.UnmarshalCSV(newReader(in, delim), &rows); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return rows, nil
}
