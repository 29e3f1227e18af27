package scheduler

import "github.com/rhyrak/go-exam-schedule/pkg/model"

// Input is everything a front end collects before a run.
type Input struct {
	Courses      []*model.Course
	Classrooms   []*model.Classroom
	Reservations []*model.Reservation
}

// Run validates the input, clears previous bookings, applies reservations
// and schedules the courses. Classrooms are booked in place.
func Run(in Input, opts ...Option) (*model.Schedule, error) {
	if err := ValidateInput(in.Courses, in.Classrooms, in.Reservations); err != nil {
		return nil, err
	}
	for _, c := range in.Classrooms {
		c.Reset()
	}
	if err := ApplyReservations(in.Classrooms, in.Reservations); err != nil {
		return nil, err
	}
	return NewAllocator(opts...).Schedule(in.Courses, in.Classrooms), nil
}
