package main

import (
	"fmt"
	"mime/multipart"

	"github.com/rhyrak/go-exam-schedule/internal/csvio"
	"github.com/rhyrak/go-exam-schedule/internal/scheduler"
	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"go.uber.org/zap"
)

type uploads struct {
	courses      *multipart.FileHeader
	classrooms   *multipart.FileHeader
	reservations *multipart.FileHeader // optional
}

// createSchedule parses the uploaded CSV files and runs the allocator on
// them. Every call works on its own classroom slice.
func createSchedule(files uploads, m scheduler.ConflictModel, delim rune, logger *zap.Logger) (*model.Schedule, string, error) {
	var in scheduler.Input
	var err error

	in.Courses, err = readUpload(files.courses, func(f multipart.File) ([]*model.Course, error) {
		return csvio.ReadCourses(f, delim)
	})
	if err != nil {
		return nil, "", err
	}
	in.Classrooms, err = readUpload(files.classrooms, func(f multipart.File) ([]*model.Classroom, error) {
		return csvio.ReadClassrooms(f, delim)
	})
	if err != nil {
		return nil, "", err
	}
	if files.reservations != nil {
		in.Reservations, err = readUpload(files.reservations, func(f multipart.File) ([]*model.Reservation, error) {
			return csvio.ReadReservations(f, delim)
		})
		if err != nil {
			return nil, "", err
		}
	}

	schedule, err := scheduler.Run(in, scheduler.WithConflictModel(m), scheduler.WithLogger(logger))
	if err != nil {
		return nil, "", err
	}
	_, msg := scheduler.Validate(in.Courses, schedule, m)
	return schedule, msg, nil
}

func readUpload[T any](fh *multipart.FileHeader, parse func(multipart.File) (T, error)) (T, error) {
	var zero T
	f, err := fh.Open()
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", fh.Filename, err)
	}
	return out, nil
}
