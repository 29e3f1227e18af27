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

// LoadCourses reads and parses given csv file for course data.
func LoadCourses(path string, delim rune) ([]*model.Course, error) {
	courses := []*model.Course{}
	if err := unmarshalFile(path, delim, &courses); err != nil {
		return nil, err
	}
	normalizeCourses(courses)
	return courses, nil
}

// ReadCourses parses course data from an arbitrary reader, e.g. an upload.
func ReadCourses(in io.Reader, delim rune) ([]*model.Course, error) {
	courses := []*model.Course{}
	if err := gocsv.UnmarshalCSV(newReader(in, delim), &courses); err != nil {
		return nil, fmt.Errorf("parse courses: %w", err)
	}
	normalizeCourses(courses)
	return courses, nil
}

// LoadClassrooms reads and parses given csv file for classroom data.
func LoadClassrooms(path string, delim rune) ([]*model.Classroom, error) {
	classrooms := []*model.Classroom{}
	if err := unmarshalFile(path, delim, &classrooms); err != nil {
		return nil, err
	}
	normalizeClassrooms(classrooms)
	return classrooms, nil
}

func ReadClassrooms(in io.Reader, delim rune) ([]*model.Classroom, error) {
	classrooms := []*model.Classroom{}
	if err := gocsv.UnmarshalCSV(newReader(in, delim), &classrooms); err != nil {
		return nil, fmt.Errorf("parse classrooms: %w", err)
	}
	normalizeClassrooms(classrooms)
	return classrooms, nil
}

// LoadReservations reads existing classroom bookings. An empty path means
// there are none.
func LoadReservations(path string, delim rune) ([]*model.Reservation, error) {
	reservations := []*model.Reservation{}
	if path == "" {
		return reservations, nil
	}
	if err := unmarshalFile(path, delim, &reservations); err != nil {
		return nil, err
	}
	normalizeReservations(reservations)
	return reservations, nil
}

func ReadReservations(in io.Reader, delim rune) ([]*model.Reservation, error) {
	reservations := []*model.Reservation{}
	if err := gocsv.UnmarshalCSV(newReader(in, delim), &reservations); err != nil {
		return nil, fmt.Errorf("parse reservations: %w", err)
	}
	normalizeReservations(reservations)
	return reservations, nil
}

func unmarshalFile(path string, delim rune, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s, please make sure the file exists: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalCSV(newReader(f, delim), out); err != nil {
		return fmt.Errorf("failed to parse data from %s, please check the data integrity and format: %w", path, err)
	}
	return nil
}

func newReader(in io.Reader, delim rune) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.TrimLeadingSpace = true
	return r
}

func normalizeCourses(courses []*model.Course) {
	for _, c := range courses {
		c.Name = strings.TrimSpace(c.Name)
		c.ExamTime = model.NormalizeSlot(c.ExamTime)
	}
}

func normalizeClassrooms(classrooms []*model.Classroom) {
	for _, c := range classrooms {
		c.ID = strings.TrimSpace(c.ID)
	}
}

func normalizeReservations(reservations []*model.Reservation) {
	for _, r := range reservations {
		r.Classroom = strings.TrimSpace(r.Classroom)
		r.Slot = model.NormalizeSlot(r.Slot)
	}
}
