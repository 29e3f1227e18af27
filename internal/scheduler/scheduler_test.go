package scheduler

import (
	"testing"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(name string, id, students int, slot string) *model.Course {
	return &model.Course{Name: name, ID: id, StudentCount: students, ExamTime: slot}
}

func room(id string, capacity int) *model.Classroom {
	return &model.Classroom{ID: id, Capacity: capacity}
}

func assignedNames(s *model.Schedule) map[string]string {
	out := make(map[string]string, len(s.Assignments))
	for _, a := range s.Assignments {
		out[a.Course.Name] = a.Classroom.ID
	}
	return out
}

func TestSchedule_Scenarios(t *testing.T) {
	testCases := []struct {
		name        string
		courses     []*model.Course
		rooms       []*model.Classroom
		expect      map[string]string
		unscheduled []string
	}{
		{
			name:        "single room goes to the larger course",
			courses:     []*model.Course{course("Algo", 1, 50, "10:00"), course("DB", 2, 30, "10:00")},
			rooms:       []*model.Classroom{room("R1", 60)},
			expect:      map[string]string{"Algo": "R1"},
			unscheduled: []string{"DB"},
		},
		{
			name:        "two rooms fit both courses",
			courses:     []*model.Course{course("Algo", 1, 50, "10:00"), course("DB", 2, 30, "10:00")},
			rooms:       []*model.Classroom{room("R1", 60), room("R2", 40)},
			expect:      map[string]string{"Algo": "R1", "DB": "R2"},
			unscheduled: []string{},
		},
		{
			name:        "course larger than every room",
			courses:     []*model.Course{course("Huge", 7, 500, "09:00")},
			rooms:       []*model.Classroom{room("R1", 60), room("R2", 400)},
			expect:      map[string]string{},
			unscheduled: []string{"Huge"},
		},
		{
			name:        "empty input",
			courses:     nil,
			rooms:       nil,
			expect:      map[string]string{},
			unscheduled: []string{},
		},
		{
			name:        "no rooms",
			courses:     []*model.Course{course("Algo", 1, 10, "10:00")},
			rooms:       nil,
			expect:      map[string]string{},
			unscheduled: []string{"Algo"},
		},
		{
			name:        "larger course claims the first fitting room",
			courses:     []*model.Course{course("Small", 1, 10, "10:00"), course("Big", 2, 90, "11:00")},
			rooms:       []*model.Classroom{room("Hall", 100), room("Lab", 20)},
			expect:      map[string]string{"Big": "Hall", "Small": "Lab"},
			unscheduled: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Schedule(tc.courses, tc.rooms)
			assert.Equal(t, tc.expect, assignedNames(s))
			var unscheduled = []string{}
			for _, c := range s.Unscheduled {
				unscheduled = append(unscheduled, c.Name)
			}
			assert.Equal(t, tc.unscheduled, unscheduled)
			valid, msg := Validate(tc.courses, s, SingleSlot)
			assert.True(t, valid, msg)
		})
	}
}

func TestSchedule_BooksChosenRoom(t *testing.T) {
	rooms := []*model.Classroom{room("R1", 60), room("R2", 40)}
	Schedule([]*model.Course{course("Algo", 1, 50, "10:00")}, rooms)

	assert.False(t, rooms[0].IsAvailable())
	assert.Equal(t, "10:00", rooms[0].BookedSlot)
	assert.True(t, rooms[1].IsAvailable())
	assert.Equal(t, "", rooms[1].BookedSlot)
}

func TestSchedule_StableOrderForEqualDemand(t *testing.T) {
	first := course("First", 1, 30, "10:00")
	second := course("Second", 2, 30, "12:00")
	rooms := []*model.Classroom{room("Only", 30)}

	s := Schedule([]*model.Course{first, second}, rooms)
	require.Len(t, s.Assignments, 1)
	assert.Same(t, first, s.Assignments[0].Course)

	rooms[0].Reset()
	s = Schedule([]*model.Course{second, first}, rooms)
	require.Len(t, s.Assignments, 1)
	assert.Same(t, second, s.Assignments[0].Course)
}

func TestSchedule_InsertionOrderIsProcessingOrder(t *testing.T) {
	courses := []*model.Course{
		course("C", 3, 10, "10:00"),
		course("A", 1, 50, "10:00"),
		course("B", 2, 30, "10:00"),
	}
	rooms := []*model.Classroom{room("R1", 100), room("R2", 100), room("R3", 100)}
	s := Schedule(courses, rooms)

	var order []string
	for _, a := range s.Assignments {
		order = append(order, a.Course.Name+"->"+a.Classroom.ID)
	}
	assert.Equal(t, []string{"A->R1", "B->R2", "C->R3"}, order)
	// input slice is left in caller order
	assert.Equal(t, "C", courses[0].Name)
}

func TestSchedule_Deterministic(t *testing.T) {
	build := func() ([]*model.Course, []*model.Classroom) {
		return []*model.Course{
				course("A", 1, 40, "10:00"),
				course("B", 2, 40, "10:00"),
				course("C", 3, 25, "11:00"),
				course("D", 4, 80, "09:00"),
				course("E", 5, 5, "09:00"),
			}, []*model.Classroom{
				room("R1", 30), room("R2", 90), room("R3", 45), room("R4", 10),
			}
	}
	c1, r1 := build()
	c2, r2 := build()
	assert.Equal(t, assignedNames(Schedule(c1, r1)), assignedNames(Schedule(c2, r2)))
}

func TestSchedule_Properties(t *testing.T) {
	courses := []*model.Course{
		course("A", 1, 120, "09:00"),
		course("B", 2, 60, "09:00"),
		course("C", 3, 60, "11:00"),
		course("D", 4, 15, "11:00"),
		course("E", 5, 0, "13:00"),
		course("F", 6, 200, "13:00"),
	}
	rooms := []*model.Classroom{room("Lab", 20), room("Hall", 150), room("Small", 0), room("Mid", 70)}

	for _, m := range []ConflictModel{SingleSlot, SlotSet} {
		for _, r := range rooms {
			r.Reset()
		}
		s := NewAllocator(WithConflictModel(m)).Schedule(courses, rooms)
		for _, a := range s.Assignments {
			assert.GreaterOrEqual(t, a.Classroom.Capacity, a.Course.StudentCount)
		}
		assert.Equal(t, len(courses), len(s.Assignments)+len(s.Unscheduled))
		valid, msg := Validate(courses, s, m)
		assert.True(t, valid, msg)
	}
}

func TestConflicts_SingleSlotMemory(t *testing.T) {
	r := room("R1", 60)
	assert.False(t, Conflicts(r, "10:00"))

	r.Reserve("10:00")
	assert.True(t, Conflicts(r, "10:00"))
	assert.False(t, Conflicts(r, "11:00"))

	assert.False(t, Feasible(r, course("Same", 1, 10, "10:00"), SingleSlot))
	assert.True(t, Feasible(r, course("Other", 2, 10, "11:00"), SingleSlot))
	assert.False(t, Feasible(r, course("TooBig", 3, 61, "11:00"), SingleSlot))
}

func TestSchedule_ReservedRoom(t *testing.T) {
	rooms := []*model.Classroom{room("R1", 60), room("R2", 60)}
	rooms[0].Reserve("10:00")

	s := Schedule([]*model.Course{course("Algo", 1, 50, "10:00")}, rooms)
	assert.Equal(t, map[string]string{"Algo": "R2"}, assignedNames(s))

	rooms[1].Reset()
	s = Schedule([]*model.Course{course("Algo", 1, 50, "11:00")}, []*model.Classroom{rooms[0]})
	assert.Equal(t, map[string]string{"Algo": "R1"}, assignedNames(s))
	// only the most recent booking is remembered
	assert.Equal(t, "11:00", rooms[0].BookedSlot)
	assert.False(t, Conflicts(rooms[0], "10:00"))
}

func TestSchedule_SlotSetModel(t *testing.T) {
	courses := []*model.Course{
		course("Algo", 1, 50, "10:00"),
		course("DB", 2, 30, "10:00"),
		course("OS", 3, 40, "11:00"),
	}
	rooms := []*model.Classroom{room("R1", 60)}
	rooms[0].Reserve("09:00")

	s := NewAllocator(WithConflictModel(SlotSet)).Schedule(courses, rooms)
	assert.Equal(t, map[string]string{"Algo": "R1", "OS": "R1"}, assignedNames(s))
	require.Len(t, s.Unscheduled, 1)
	assert.Equal(t, "DB", s.Unscheduled[0].Name)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, rooms[0].BookedSlots())

	valid, msg := Validate(courses, s, SlotSet)
	assert.True(t, valid, msg)
	// the same result breaks the single slot rules
	valid, _ = Validate(courses, s, SingleSlot)
	assert.False(t, valid)
}

func TestValidate_ReportsViolations(t *testing.T) {
	a := course("A", 1, 50, "10:00")
	b := course("B", 2, 10, "10:00")
	lost := course("Lost", 3, 10, "10:00")
	r := room("R1", 20)

	s := model.NewSchedule(3)
	s.Assign(a, r)
	s.Assign(b, r)

	valid, msg := Validate([]*model.Course{a, b, lost}, s, SingleSlot)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Classroom capacity check.")
	assert.Contains(t, msg, "[FAIL]: Course partition check.")
	assert.Contains(t, msg, "[FAIL]: Classroom collision check.")
	assert.Contains(t, msg, "Lost (ID: 3) appears 0 times")
}
