package model

import (
	"fmt"
	"strings"
)

// Course is one exam to be scheduled.
type Course struct {
	Name         string `csv:"Course_Name" validate:"required"`
	ID           int    `csv:"Course_ID"`
	StudentCount int    `csv:"Number_of_Students" validate:"gte=0"`
	ExamTime     string `csv:"Exam_Time" validate:"required"`
}

func (c *Course) String() string {
	return fmt.Sprintf("Course: %s (ID: %d), Students: %d, Exam Time: %s", c.Name, c.ID, c.StudentCount, c.ExamTime)
}

// NormalizeSlot trims the slot identifier and pads single digit hours,
// so "9:00" and "09:00" name the same slot.
func NormalizeSlot(slot string) string {
	slot = strings.TrimSpace(slot)
	if len(slot) == 4 && slot[1] == ':' {
		slot = "0" + slot
	}
	return slot
}
