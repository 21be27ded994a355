// Package menu is the interactive terminal front-end of the course store.
//
// Each action can be entered as a bare letter, after which the fields are
// prompted one by one, or as a full command on a single line:
//
//	c 3 "Data Structures" MWF 3 30
//	r 3
//	u 3 - TR - -
//	d 3
//
// In update commands "-" keeps the current value.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/0xRadioAc7iv/go-coursedb/core"
	"github.com/0xRadioAc7iv/go-coursedb/internal/record"
	"github.com/0xRadioAc7iv/go-coursedb/internal/utils"
)

// CourseStore is the set of storage operations the menu drives.
type CourseStore interface {
	Create(number int64, course record.Course) error
	Read(number int64) (record.Course, error)
	Update(number int64, update core.CourseUpdate) error
	Delete(number int64) error
}

type Menu struct {
	store CourseStore
	in    *bufio.Reader
	out   io.Writer
	log   zerolog.Logger
}

const keepCurrent = "-"

var errInvalidInput = errors.New("invalid input")

func New(store CourseStore, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log,
	}
}

// Run shows the menu and executes commands until end of input.
func (m *Menu) Run() error {
	for {
		m.displayMenu()

		line, err := m.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, args, err := utils.SplitStringIntoCommandAndArguments(line)
		if err != nil {
			if !errors.Is(err, utils.ErrEmptyCommand) {
				m.printError(err.Error())
			}
			continue
		}

		m.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("command received")

		if err := m.handleCommand(cmd, args); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "c", "create":
		return m.handleCreate(args)
	case "u", "update":
		return m.handleUpdate(args)
	case "r", "read":
		return m.handleRead(args)
	case "d", "delete":
		return m.handleDelete(args)
	case "h", "help", "?":
		m.handleHelp()
	default:
		m.printError("invalid option")
	}
	return nil
}

// CreateCourse stores a new course at number.
func (m *Menu) CreateCourse(number int64, name, schedule string, hours, size uint32) error {
	return m.store.Create(number, record.Course{
		Name:     name,
		Schedule: schedule,
		Hours:    hours,
		Size:     size,
	})
}

func (m *Menu) ReadCourse(number int64) (record.Course, error) {
	return m.store.Read(number)
}

// UpdateCourse changes the given fields of the course at number. Nil
// arguments keep the stored value.
func (m *Menu) UpdateCourse(number int64, name, schedule *string, hours, size *uint32) error {
	return m.store.Update(number, core.CourseUpdate{
		Name:     name,
		Schedule: schedule,
		Hours:    hours,
		Size:     size,
	})
}

func (m *Menu) DeleteCourse(number int64) error {
	return m.store.Delete(number)
}

func (m *Menu) handleCreate(args []string) error {
	var number int64
	var name, schedule string
	var hours, size uint32
	var err error

	switch len(args) {
	case 0:
		if number, err = m.promptNumber("Course number: "); err != nil {
			return m.inputError(err)
		}
		if name, err = m.prompt("Course name: "); err != nil {
			return err
		}
		if schedule, err = m.prompt("Course schedule (MWF or TR): "); err != nil {
			return err
		}
		schedule = firstWord(schedule)
		if hours, err = m.promptUint("Course credit hours: ", "credit hours"); err != nil {
			return m.inputError(err)
		}
		if size, err = m.promptUint("Course enrollment: ", "enrollment"); err != nil {
			return m.inputError(err)
		}
	case 5:
		if number, err = parseNumber(args[0]); err != nil {
			return m.inputError(err)
		}
		name, schedule = args[1], args[2]
		if hours, err = parseUint(args[3], "credit hours"); err != nil {
			return m.inputError(err)
		}
		if size, err = parseUint(args[4], "enrollment"); err != nil {
			return m.inputError(err)
		}
	default:
		m.printError("usage: c <number> <name> <schedule> <hours> <enrollment>")
		return nil
	}

	if err := m.CreateCourse(number, name, schedule, hours, size); err != nil {
		m.reportStoreError(err)
		return nil
	}

	fmt.Fprintln(m.out, "Course created successfully.")
	return nil
}

func (m *Menu) handleUpdate(args []string) error {
	var number int64
	var err error

	if len(args) != 0 && len(args) != 5 {
		m.printError("usage: u <number> <name|-> <schedule|-> <hours|-> <enrollment|->")
		return nil
	}

	if len(args) == 0 {
		number, err = m.promptNumber("Course number: ")
	} else {
		number, err = parseNumber(args[0])
	}
	if err != nil {
		return m.inputError(err)
	}

	if _, err := m.ReadCourse(number); err != nil {
		m.reportStoreError(err)
		return nil
	}

	var fields [4]string
	if len(args) == 0 {
		prompts := [4]string{
			"Course name (press ENTER to keep current): ",
			"Course schedule (MWF or TR, press ENTER to keep current): ",
			"Course credit hours (press ENTER to keep current): ",
			"Course enrollment (press ENTER to keep current): ",
		}
		for i, p := range prompts {
			if fields[i], err = m.prompt(p); err != nil {
				return err
			}
		}
	} else {
		for i := range fields {
			if args[i+1] != keepCurrent {
				fields[i] = args[i+1]
			}
		}
	}

	name := optionalText(fields[0])
	schedule := optionalText(fields[1])

	hours, err := optionalUint(fields[2], "credit hours")
	if err != nil {
		return m.inputError(err)
	}
	size, err := optionalUint(fields[3], "enrollment")
	if err != nil {
		return m.inputError(err)
	}

	if err := m.UpdateCourse(number, name, schedule, hours, size); err != nil {
		m.reportStoreError(err)
		return nil
	}

	fmt.Fprintln(m.out, "Course updated successfully.")
	return nil
}

func (m *Menu) handleRead(args []string) error {
	number, err := m.numberFromArgs(args, "Enter a CS course number: ")
	if err != nil {
		return m.inputError(err)
	}

	course, err := m.ReadCourse(number)
	if err != nil {
		m.reportStoreError(err)
		return nil
	}

	fmt.Fprintf(m.out, "Course number: %d\n", number)
	fmt.Fprintf(m.out, "Course name: %s\n", course.Name)
	fmt.Fprintf(m.out, "Scheduled days: %s\n", course.Schedule)
	fmt.Fprintf(m.out, "Credit hours: %d\n", course.Hours)
	fmt.Fprintf(m.out, "Enrolled Students: %d\n", course.Size)
	return nil
}

func (m *Menu) handleDelete(args []string) error {
	number, err := m.numberFromArgs(args, "Enter a course number: ")
	if err != nil {
		return m.inputError(err)
	}

	if err := m.DeleteCourse(number); err != nil {
		m.reportStoreError(err)
		return nil
	}

	fmt.Fprintf(m.out, "Course number %d was successfully deleted.\n", number)
	return nil
}

func (m *Menu) handleHelp() {
	helpString := `
Commands (letter alone prompts for each field):

C <number> <name> <schedule> <hours> <enrollment>
  Create a course. Quote names containing spaces.

R <number>
  Show a course.

U <number> <name> <schedule> <hours> <enrollment>
  Update a course. Use - to keep a field unchanged.

D <number>
  Delete a course.

CTRL-D
  Exit.
`
	fmt.Fprintln(m.out, strings.TrimSpace(helpString))
}

func (m *Menu) displayMenu() {
	fmt.Fprintln(m.out, "Enter one of the following actions or press CTRL-D to exit.")
	fmt.Fprintln(m.out, "C - create a new course record")
	fmt.Fprintln(m.out, "U - update an existing course record")
	fmt.Fprintln(m.out, "R - read an existing course record")
	fmt.Fprintln(m.out, "D - delete an existing course record")
}

func (m *Menu) numberFromArgs(args []string, prompt string) (int64, error) {
	switch len(args) {
	case 0:
		return m.promptNumber(prompt)
	case 1:
		return parseNumber(args[0])
	default:
		return 0, fmt.Errorf("%w: expected a single course number", errInvalidInput)
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptNumber(label string) (int64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return parseNumber(s)
}

func (m *Menu) promptUint(label, field string) (uint32, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return parseUint(s, field)
}

// readLine returns the next input line without its line ending. A final
// line without a trailing newline is still returned.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// inputError reports malformed input and returns to the menu. End of input
// is passed through so Run can stop.
func (m *Menu) inputError(err error) error {
	if errors.Is(err, errInvalidInput) {
		m.printError(strings.TrimPrefix(err.Error(), errInvalidInput.Error()+": "))
		return nil
	}
	return err
}

func (m *Menu) reportStoreError(err error) {
	switch {
	case errors.Is(err, core.ErrAlreadyExists):
		m.printError("course already exists")
	case errors.Is(err, core.ErrNotFound):
		m.printError("course not found")
	case errors.Is(err, core.ErrInvalidHours):
		m.printError("credit hours must be greater than zero")
	case errors.Is(err, core.ErrInvalidRecordNumber):
		m.printError("invalid course number")
	default:
		m.log.Error().Err(err).Msg("store operation failed")
		m.printError(err.Error())
	}
}

func (m *Menu) printError(msg string) {
	fmt.Fprintf(m.out, "ERROR: %s\n", msg)
}

func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid course number %q", errInvalidInput, s)
	}
	return n, nil
}

func parseUint(s, field string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errInvalidInput, field, s)
	}
	return uint32(v), nil
}

// firstWord returns the first whitespace-separated word of s, or "".
func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalUint(s, field string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseUint(s, field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
