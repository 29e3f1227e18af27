// Package prompt collects courses and classrooms line by line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"golang.org/x/term"
)

// Collector reads answers from in. Questions are only written when
// Interactive is set; an interactive session re-asks malformed numbers,
// a piped one fails on them.
type Collector struct {
	in          *bufio.Scanner
	out         io.Writer
	Interactive bool
}

func New(in io.Reader, out io.Writer, interactive bool) *Collector {
	return &Collector{in: bufio.NewScanner(in), out: out, Interactive: interactive}
}

// Stdin prompts on the terminal when stdin is one.
func Stdin() *Collector {
	return New(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Courses asks for the number of courses and then each course's details.
func (c *Collector) Courses() ([]*model.Course, error) {
	n, err := c.count("Enter number of courses:")
	if err != nil {
		return nil, err
	}
	courses := make([]*model.Course, 0, n)
	for i := 0; i < n; i++ {
		c.say("Enter details for course %d:\n", i+1)
		name, err := c.text("Course Name: ")
		if err != nil {
			return nil, err
		}
		id, err := c.number("Course ID: ", false)
		if err != nil {
			return nil, err
		}
		students, err := c.number("Number of Students: ", true)
		if err != nil {
			return nil, err
		}
		slot, err := c.text("Exam Time (HH:mm): ")
		if err != nil {
			return nil, err
		}
		courses = append(courses, &model.Course{
			Name:         name,
			ID:           id,
			StudentCount: students,
			ExamTime:     model.NormalizeSlot(slot),
		})
	}
	return courses, nil
}

// Classrooms asks for the number of rooms and then each room's name and capacity.
func (c *Collector) Classrooms() ([]*model.Classroom, error) {
	n, err := c.count("\nEnter number of rooms:")
	if err != nil {
		return nil, err
	}
	rooms := make([]*model.Classroom, 0, n)
	for i := 0; i < n; i++ {
		c.say("Enter details for room %d:\n", i+1)
		name, err := c.text("Room Name: ")
		if err != nil {
			return nil, err
		}
		capacity, err := c.number("Room Capacity: ", true)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, &model.Classroom{ID: name, Capacity: capacity})
	}
	return rooms, nil
}

func (c *Collector) count(question string) (int, error) {
	return c.number(question+"\n", true)
}

func (c *Collector) number(question string, nonNegative bool) (int, error) {
	for {
		line, err := c.text(question)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && nonNegative && n < 0 {
			convErr = errors.New("must not be negative")
		}
		if convErr == nil {
			return n, nil
		}
		if !c.Interactive {
			return 0, fmt.Errorf("invalid number %q: %w", line, convErr)
		}
		c.say("Invalid number %q, try again.\n", line)
	}
}

func (c *Collector) text(question string) (string, error) {
	c.say("%s", question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Collector) say(format string, args ...interface{}) {
	if c.Interactive {
		fmt.Fprintf(c.out, format, args...)
	}
}
