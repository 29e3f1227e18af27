// Package report renders a generated exam schedule to its sinks.
package report

import (
	"errors"
	"fmt"

	"github.com/rhyrak/go-exam-schedule/internal/csvio"
	"github.com/rhyrak/go-exam-schedule/pkg/model"
)

// Reporter consumes the allocator output. Implementations must list
// assignments in insertion order.
type Reporter interface {
	Report(schedule *model.Schedule) error
}

// All runs every reporter, even when one of them fails.
func All(schedule *model.Schedule, reporters ...Reporter) error {
	var errs []error
	for _, r := range reporters {
		if err := r.Report(schedule); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CSV writes the tabular export to Path.
type CSV struct {
	Path      string
	Delimiter rune
}

func (c *CSV) Report(schedule *model.Schedule) error {
	delim := c.Delimiter
	if delim == 0 {
		delim = ';'
	}
	if _, err := csvio.ExportSchedule(schedule, c.Path, delim); err != nil {
		return fmt.Errorf("csv report: %w", err)
	}
	return nil
}
