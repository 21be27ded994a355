package utils

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/0xRadioAc7iv/go-coursedb/internal"
)

// CLIInputs holds the parsed command-line flags. Only flags that were
// explicitly given override values loaded from the config file.
type CLIInputs struct {
	ConfigPath string
	DataFile   string
	LogLevel   string
	Pretty     bool

	set map[string]bool
}

func HandleCLIInputs(args []string, output io.Writer) (*CLIInputs, error) {
	in := &CLIInputs{set: make(map[string]bool)}

	fs := flag.NewFlagSet("coursedb", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&in.ConfigPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&in.DataFile, "file", internal.DEFAULT_DATA_FILE, "Course data file to open (created if missing)")
	fs.StringVar(&in.LogLevel, "log-level", internal.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn or error")
	fs.BoolVar(&in.Pretty, "pretty", true, "Human-readable log output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		in.set[f.Name] = true
	})

	return in, nil
}

// Apply overlays the explicitly set flags onto cfg.
func (in *CLIInputs) Apply(cfg *internal.Config) {
	if in.set["file"] {
		cfg.DataFile = in.DataFile
	}
	if in.set["log-level"] {
		cfg.Log.Level = in.LogLevel
	}
	if in.set["pretty"] {
		cfg.Log.Pretty = in.Pretty
	}
}

var ErrEmptyCommand = errors.New("empty command")

// SplitStringIntoCommandAndArguments tokenises an input line using shell
// quoting rules, so `c 3 "Data Structures" MWF 3 30` yields the command "c"
// and five arguments. The command is lower-cased.
func SplitStringIntoCommandAndArguments(line string) (cmd string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}

	if len(words) == 0 {
		return "", nil, ErrEmptyCommand
	}

	return strings.ToLower(words[0]), words[1:], nil
}
