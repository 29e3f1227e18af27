package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rhyrak/go-exam-schedule/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Piped(t *testing.T) {
	input := "2\nAlgo\n1\n50\n10:00\nDB\n2\n30\n9:00\n1\nR1\n60\n"
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, false)

	courses, err := c.Courses()
	require.NoError(t, err)
	assert.Equal(t, []*model.Course{
		{Name: "Algo", ID: 1, StudentCount: 50, ExamTime: "10:00"},
		{Name: "DB", ID: 2, StudentCount: 30, ExamTime: "09:00"},
	}, courses)

	rooms, err := c.Classrooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "R1", rooms[0].ID)
	assert.Equal(t, 60, rooms[0].Capacity)

	assert.Empty(t, out.String())
}

func TestCollector_InteractiveRetries(t *testing.T) {
	input := "one\n-1\n1\nR1\nlots\n40\n"
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, true)

	rooms, err := c.Classrooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 40, rooms[0].Capacity)
	assert.Contains(t, out.String(), "Enter number of rooms:")
	assert.Contains(t, out.String(), `Invalid number "one", try again.`)
	assert.Contains(t, out.String(), `Invalid number "lots", try again.`)
}

func TestCollector_Errors(t *testing.T) {
	c := New(strings.NewReader("abc\n"), io.Discard, false)
	_, err := c.Courses()
	assert.ErrorContains(t, err, `invalid number "abc"`)

	c = New(strings.NewReader("1\nAlgo\n"), io.Discard, false)
	_, err = c.Courses()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
