package menu_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-coursedb/core"
	"github.com/0xRadioAc7iv/go-coursedb/internal/menu"
	"github.com/0xRadioAc7iv/go-coursedb/internal/record"
)

func newStore(t *testing.T) *core.Store {
	t.Helper()

	s, err := core.Open(filepath.Join(t.TempDir(), "courses.dat"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func run(t *testing.T, s *core.Store, input string) string {
	t.Helper()

	var out bytes.Buffer
	m := menu.New(s, strings.NewReader(input), &out, zerolog.Nop())
	require.NoError(t, m.Run())

	return out.String()
}

func TestPromptedCreateAndRead(t *testing.T) {
	s := newStore(t)

	input := strings.Join([]string{
		"C", "3", "Data Structures", "MWF", "3", "30",
		"r", "3",
	}, "\n") + "\n"

	out := run(t, s, input)

	assert.Contains(t, out, "Course created successfully.")
	assert.Contains(t, out, "Course number: 3\nCourse name: Data Structures\nScheduled days: MWF\nCredit hours: 3\nEnrolled Students: 30\n")

	got, err := s.Read(3)
	require.NoError(t, err)
	assert.Equal(t, record.Course{Name: "Data Structures", Schedule: "MWF", Hours: 3, Size: 30}, got)
}

func TestPromptedCreateKeepsFirstScheduleWord(t *testing.T) {
	s := newStore(t)

	out := run(t, s, "c\n1\nCompilers\nTR extra\n4\n12\nc\n2\nNetworks\nM W F\n3\n20\n")
	assert.Equal(t, 2, strings.Count(out, "Course created successfully."))

	got, err := s.Read(1)
	require.NoError(t, err)
	assert.Equal(t, "TR", got.Schedule)

	got, err = s.Read(2)
	require.NoError(t, err)
	assert.Equal(t, "M", got.Schedule)
}

func TestPromptedUpdateKeepsEmptyFields(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Create(3, record.Course{Name: "Data Structures", Schedule: "MWF", Hours: 3, Size: 30}))

	out := run(t, s, "u\n3\n\nTR\n\n\n")

	assert.Contains(t, out, "Course updated successfully.")

	got, err := s.Read(3)
	require.NoError(t, err)
	assert.Equal(t, record.Course{Name: "Data Structures", Schedule: "TR", Hours: 3, Size: 30}, got)
}

func TestUpdateMissingCourseStopsBeforePrompting(t *testing.T) {
	s := newStore(t)

	out := run(t, s, "u\n8\n")

	assert.Contains(t, out, "ERROR: course not found")
	assert.NotContains(t, out, "press ENTER to keep current")
}

func TestOneLineCommands(t *testing.T) {
	s := newStore(t)

	input := strings.Join([]string{
		`c 3 "Data Structures" MWF 3 30`,
		`c 3 "Operating Systems" TR 4 20`,
		`u 3 - - 4 -`,
		`r 3`,
		`d 3`,
		`r 3`,
		`d 3`,
	}, "\n")

	out := run(t, s, input)

	assert.Equal(t, 1, strings.Count(out, "Course created successfully."))
	assert.Contains(t, out, "ERROR: course already exists")
	assert.Contains(t, out, "Credit hours: 4\n")
	assert.Contains(t, out, "Course name: Data Structures\n")
	assert.Contains(t, out, "Course number 3 was successfully deleted.")
	assert.Equal(t, 2, strings.Count(out, "ERROR: course not found"))
}

func TestInvalidInput(t *testing.T) {
	s := newStore(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown option", "x\n", "ERROR: invalid option"},
		{"bad number", "r abc\n", `ERROR: invalid course number "abc"`},
		{"negative number", "d -2\n", `ERROR: invalid course number "-2"`},
		{"bad hours", "c 1 Name TR many 3\n", `ERROR: invalid credit hours "many"`},
		{"zero hours", "c 1 Name TR 0 3\n", "ERROR: credit hours must be greater than zero"},
		{"wrong arity", "c 1 Name\n", "ERROR: usage: c"},
		{"unterminated quote", "c 1 \"Name\n", "ERROR:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, s, tt.input)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestHelpAndBlankLines(t *testing.T) {
	s := newStore(t)

	out := run(t, s, "\n\nh\n")

	assert.Contains(t, out, "Use - to keep a field unchanged.")
	assert.NotContains(t, out, "ERROR")
}

func TestEndOfInputMidPrompt(t *testing.T) {
	s := newStore(t)

	out := run(t, s, "c\n3\nData Str")

	assert.NotContains(t, out, "Course created successfully.")

	_, err := s.Read(3)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
