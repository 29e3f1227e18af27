package scheduler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rhyrak/go-exam-schedule/pkg/model"
)

// ErrInvalidInput marks records rejected before scheduling.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// ValidateInput rejects missing names and slots, negative student counts and
// capacities, duplicate classroom names, and reservations for unknown rooms.
func ValidateInput(courses []*model.Course, rooms []*model.Classroom, reservations []*model.Reservation) error {
	var errs []error
	for i, c := range courses {
		if c == nil {
			errs = append(errs, fmt.Errorf("course %d is missing", i+1))
			continue
		}
		if err := validate.Struct(c); err != nil {
			errs = append(errs, fmt.Errorf("course %d (%s): %w", i+1, c.Name, err))
		}
	}

	seen := make(map[string]bool, len(rooms))
	for i, r := range rooms {
		if r == nil {
			errs = append(errs, fmt.Errorf("classroom %d is missing", i+1))
			continue
		}
		if err := validate.Struct(r); err != nil {
			errs = append(errs, fmt.Errorf("classroom %d (%s): %w", i+1, r.ID, err))
			continue
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("classroom %d: duplicate name %s", i+1, r.ID))
		}
		seen[r.ID] = true
	}

	for i, res := range reservations {
		if res == nil {
			errs = append(errs, fmt.Errorf("reservation %d is missing", i+1))
			continue
		}
		if err := validate.Struct(res); err != nil {
			errs = append(errs, fmt.Errorf("reservation %d: %w", i+1, err))
			continue
		}
		if !seen[res.Classroom] {
			errs = append(errs, fmt.Errorf("reservation %d: unknown classroom %s", i+1, res.Classroom))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// ApplyReservations books the reserved slots on the matching classrooms
// without taking them out of the run.
func ApplyReservations(rooms []*model.Classroom, reservations []*model.Reservation) error {
	byID := make(map[string]*model.Classroom, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}
	for _, res := range reservations {
		room, ok := byID[res.Classroom]
		if !ok {
			return fmt.Errorf("%w: reservation for unknown classroom %s", ErrInvalidInput, res.Classroom)
		}
		room.Reserve(res.Slot)
	}
	return nil
}
