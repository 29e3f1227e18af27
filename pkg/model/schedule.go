package model

// Assignment pairs a course with the classroom it was placed into.
type Assignment struct {
	Course    *Course
	Classroom *Classroom
	Slot      string
}

// Schedule holds assignments in the order courses were processed,
// followed by the courses that could not be placed.
type Schedule struct {
	Assignments []Assignment
	Unscheduled []*Course
}

type ScheduleCSVRow struct {
	CourseName   string `csv:"course_name" json:"course_name"`
	CourseID     int    `csv:"course_id" json:"course_id"`
	StudentCount int    `csv:"student_count" json:"student_count"`
	ExamTime     string `csv:"exam_time" json:"exam_time"`
	Classroom    string `csv:"classroom" json:"classroom"`
}

/* NewSchedule creates an empty schedule with room for the given number of courses. */
func NewSchedule(courses int) *Schedule {
	return &Schedule{
		Assignments: make([]Assignment, 0, courses),
		Unscheduled: []*Course{},
	}
}

// Assign appends a placed course.
func (s *Schedule) Assign(course *Course, classroom *Classroom) {
	s.Assignments = append(s.Assignments, Assignment{Course: course, Classroom: classroom, Slot: course.ExamTime})
}

// Skip records a course that has no feasible classroom.
func (s *Schedule) Skip(course *Course) {
	s.Unscheduled = append(s.Unscheduled, course)
}

// ClassroomOf returns the classroom assigned to course, or nil.
func (s *Schedule) ClassroomOf(course *Course) *Classroom {
	for _, a := range s.Assignments {
		if a.Course == course {
			return a.Classroom
		}
	}
	return nil
}

// Rows converts the assignments into export rows. Unscheduled courses
// are not part of the table.
func (s *Schedule) Rows() []*ScheduleCSVRow {
	rows := make([]*ScheduleCSVRow, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		rows = append(rows, &ScheduleCSVRow{
			CourseName:   a.Course.Name,
			CourseID:     a.Course.ID,
			StudentCount: a.Course.StudentCount,
			ExamTime:     a.Slot,
			Classroom:    a.Classroom.ID,
		})
	}
	return rows
}
