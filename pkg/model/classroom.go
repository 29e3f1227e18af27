package model

import (
	"fmt"
	"sort"
)

type Classroom struct {
	ID         string          `csv:"classroom_id" validate:"required"`
	Capacity   int             `csv:"capacity" validate:"gte=0"`
	BookedSlot string          `csv:"-"`
	occupied   bool            `csv:"-"`
	slots      map[string]bool `csv:"-"`
}

// IsAvailable reports whether the classroom has not been given to a course yet.
func (c *Classroom) IsAvailable() bool {
	return !c.occupied
}

// IsBookedAt checks every slot the classroom has been booked for,
// not only the last one.
func (c *Classroom) IsBookedAt(slot string) bool {
	return c.slots[slot]
}

// Reserve records an existing booking without taking the classroom
// out of the run.
func (c *Classroom) Reserve(slot string) {
	c.BookedSlot = slot
	c.mark(slot)
}

// Book places an exam into the classroom at the given slot.
func (c *Classroom) Book(slot string) {
	c.occupied = true
	c.BookedSlot = slot
	c.mark(slot)
}

// BookedSlots returns every slot the classroom holds, sorted.
func (c *Classroom) BookedSlots() []string {
	slots := make([]string, 0, len(c.slots))
	for s := range c.slots {
		slots = append(slots, s)
	}
	sort.Strings(slots)
	return slots
}

// Reset clears all bookings.
func (c *Classroom) Reset() {
	c.occupied = false
	c.BookedSlot = ""
	c.slots = nil
}

func (c *Classroom) mark(slot string) {
	if c.slots == nil {
		c.slots = make(map[string]bool)
	}
	c.slots[slot] = true
}

func (c *Classroom) String() string {
	return fmt.Sprintf("%s (Capacity: %d)", c.ID, c.Capacity)
}
