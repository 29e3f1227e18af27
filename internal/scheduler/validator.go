package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
)

// Validate checks schedule for capacity violations, lost courses and
// classroom collisions. Returns false and a message for invalid schedules.
func Validate(courses []*model.Course, schedule *model.Schedule, m ConflictModel) (bool, string) {
	var message string
	var valid bool = true
	var hasCapacityViolation bool = false
	var hasLostCourse bool = false
	var hasClassroomCollision bool = false

	for _, a := range schedule.Assignments {
		if a.Classroom.Capacity < a.Course.StudentCount {
			valid = false
			hasCapacityViolation = true
			message += fmt.Sprintf("- %s needs %d seats, %s has %d\n", a.Course.Name, a.Course.StudentCount, a.Classroom.ID, a.Classroom.Capacity)
		}
	}

	counts := make(map[*model.Course]int, len(courses))
	for _, a := range schedule.Assignments {
		counts[a.Course]++
	}
	for _, c := range schedule.Unscheduled {
		counts[c]++
	}
	for _, c := range courses {
		if n := counts[c]; n != 1 {
			valid = false
			hasLostCourse = true
			message += fmt.Sprintf("- %s (ID: %d) appears %d times in the result\n", c.Name, c.ID, n)
		}
	}
	if len(counts) != len(courses) {
		valid = false
		hasLostCourse = true
		message += "- Result contains courses that were not requested\n"
	}

	usedRooms := make(map[string]bool)
	for _, a := range schedule.Assignments {
		key := a.Classroom.ID
		if m == SlotSet {
			key += "@" + a.Slot
		}
		if usedRooms[key] {
			valid = false
			hasClassroomCollision = true
			message += "- Classroom " + a.Classroom.ID + " assigned multiple times\n"
		} else {
			usedRooms[key] = true
		}
	}

	if len(schedule.Unscheduled) > 0 {
		message += fmt.Sprintf("- There are %d unscheduled courses:\n", len(schedule.Unscheduled))
		for _, un := range schedule.Unscheduled {
			message += fmt.Sprintf("    %s %d %d %s\n", un.Name, un.ID, un.StudentCount, un.ExamTime)
		}
	}

	if hasClassroomCollision {
		message = "[FAIL]: Classroom collision check.\n" + message
	} else {
		message = "[  OK]: Classroom collision check.\n" + message
	}
	if hasLostCourse {
		message = "[FAIL]: Course partition check.\n" + message
	} else {
		message = "[  OK]: Course partition check.\n" + message
	}
	if hasCapacityViolation {
		message = "[FAIL]: Classroom capacity check.\n" + message
	} else {
		message = "[  OK]: Classroom capacity check.\n" + message
	}

	return valid, message
}
