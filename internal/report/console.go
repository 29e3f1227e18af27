package report

import (
	"fmt"
	"io"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
)

// Console prints a human readable schedule, unscheduled courses included.
type Console struct {
	Out io.Writer
}

func (c *Console) Report(schedule *model.Schedule) error {
	w := &errWriter{w: c.Out}
	w.printf("\n--- Exam Schedule ---\n")
	for _, a := range schedule.Assignments {
		w.printf("%s -> %s\n", a.Course, a.Classroom)
	}
	if len(schedule.Unscheduled) > 0 {
		w.printf("\n--- Unscheduled ---\n")
		for _, course := range schedule.Unscheduled {
			w.printf("No available room for %s\n", course)
		}
	}
	w.printf("Assigned: %d, unscheduled: %d\n", len(schedule.Assignments), len(schedule.Unscheduled))
	return w.err
}

// errWriter keeps the first write error and skips the remaining writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
