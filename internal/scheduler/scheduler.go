package scheduler

import (
	"slices"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"go.uber.org/zap"
)

// ConflictModel selects how a classroom remembers its bookings.
type ConflictModel string

const (
	// SingleSlot keeps only the last booked slot and gives each classroom
	// to at most one course per run.
	SingleSlot ConflictModel = "single"
	// SlotSet keeps every booked slot; a classroom can host one exam per slot.
	SlotSet ConflictModel = "slots"
)

type Allocator struct {
	conflictModel ConflictModel
	logger        *zap.Logger
}

type Option func(*Allocator)

func WithConflictModel(m ConflictModel) Option {
	return func(a *Allocator) {
		if m != "" {
			a.conflictModel = m
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{conflictModel: SingleSlot, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Schedule places every course into a classroom with the default allocator.
func Schedule(courses []*model.Course, rooms []*model.Classroom) *model.Schedule {
	return NewAllocator().Schedule(courses, rooms)
}

// Schedule assigns classrooms greedily, largest course first. Courses with
// equal student counts keep their input order. Each course takes the first
// feasible classroom in the order rooms are given; placed courses are never
// revisited. The chosen classrooms are booked in place.
func (a *Allocator) Schedule(courses []*model.Course, rooms []*model.Classroom) *model.Schedule {
	ordered := slices.Clone(courses)
	slices.SortStableFunc(ordered, func(c1, c2 *model.Course) int {
		return c2.StudentCount - c1.StudentCount
	})

	schedule := model.NewSchedule(len(ordered))
	for _, course := range ordered {
		idx := a.findRoom(rooms, course)
		if idx < 0 {
			a.logger.Debug("no available room",
				zap.String("course", course.Name),
				zap.Int("students", course.StudentCount),
				zap.String("slot", course.ExamTime))
			schedule.Skip(course)
			continue
		}
		rooms[idx].Book(course.ExamTime)
		schedule.Assign(course, rooms[idx])
		a.logger.Debug("course assigned",
			zap.String("course", course.Name),
			zap.String("classroom", rooms[idx].ID),
			zap.String("slot", course.ExamTime))
	}

	a.logger.Info("exam schedule generated",
		zap.Int("assigned", len(schedule.Assignments)),
		zap.Int("unscheduled", len(schedule.Unscheduled)),
		zap.String("conflict_model", string(a.conflictModel)))
	return schedule
}

// Find the index of the first fitting classroom, -1 if there is none.
func (a *Allocator) findRoom(rooms []*model.Classroom, course *model.Course) int {
	for i, r := range rooms {
		if Feasible(r, course, a.conflictModel) {
			return i
		}
	}
	return -1
}

// Feasible checks capacity and time conflicts for placing course into room.
func Feasible(room *model.Classroom, course *model.Course, m ConflictModel) bool {
	if room.Capacity < course.StudentCount {
		return false
	}
	if m == SlotSet {
		return !room.IsBookedAt(course.ExamTime)
	}
	return room.IsAvailable() && !Conflicts(room, course.ExamTime)
}

// Conflicts reports a clash only when the single recorded booking equals slot.
// A classroom booked for another slot is not considered busy.
func Conflicts(room *model.Classroom, slot string) bool {
	return room.BookedSlot != "" && room.BookedSlot == slot
}
