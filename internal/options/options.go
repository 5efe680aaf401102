package options

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/pflag"

	"goxel/internal/buildinfo"
)

// Config is the start-up configuration. Empty paths mean "not given".
type Config struct {
	Input  string
	Export string
	Scale  float64
}

// Arity tells whether an option takes an argument.
type Arity uint8

const (
	NoArgument Arity = iota
	RequiredArgument
)

// Option is one row of the option table.
type Option struct {
	Name    string
	Short   string
	Arity   Arity
	ArgName string
	Help    string
	Apply   func(cfg *Config, arg string) error
}

// ExitError asks the caller to terminate the process with Code.
// Code 0 is used for --help and --version.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

const bugURL = "https://github.com/pegvin/goxel2/issues"

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

// Table lists the recognised options in usage order.
var Table = []Option{
	{Name: "export", Short: "e", Arity: RequiredArgument, ArgName: "FILENAME",
		Help: "Export the image to a file", Apply: applyExport},
	{Name: "scale", Short: "s", Arity: RequiredArgument, ArgName: "FLOAT",
		Help: "Set UI scale", Apply: applyScale},
	{Name: "help", Help: "Give this help list",
		Apply: func(*Config, string) error { return errHelp }},
	{Name: "version", Help: "Print program version",
		Apply: func(*Config, string) error { return errVersion }},
}

func applyExport(cfg *Config, arg string) error {
	cfg.Export = arg
	return nil
}

func applyScale(cfg *Config, arg string) error {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid scale %q: %w", arg, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("invalid scale %q: must be a positive number", arg)
	}
	cfg.Scale = v
	return nil
}

// Parse resolves args (without the program name) against Table.
//
// Help and version text go to stdout and yield an *ExitError with code 0.
// Unknown or malformed options are reported on stderr and yield code -1.
func Parse(args []string, stdout, stderr io.Writer) (Config, error) {
	return ParseTable(Table, args, stdout, stderr)
}

// ParseTable is Parse over an explicit option table.
func ParseTable(table []Option, args []string, stdout, stderr io.Writer) (Config, error) {
	cfg := Config{Scale: 1}

	fs := pflag.NewFlagSet("goxel2", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	byName := make(map[string]Option, len(table))
	for _, opt := range table {
		byName[opt.Name] = opt
		switch opt.Arity {
		case RequiredArgument:
			fs.StringP(opt.Name, opt.Short, "", opt.Help)
		default:
			fs.BoolP(opt.Name, opt.Short, false, opt.Help)
		}
	}

	// Options take effect in command-line order; the first help, version or
	// invalid value stops parsing.
	var applyErr error
	err := fs.ParseAll(args, func(f *pflag.Flag, value string) error {
		opt := byName[f.Name]
		if opt.Apply == nil {
			return nil
		}
		applyErr = opt.Apply(&cfg, value)
		return applyErr
	})
	switch {
	case err == nil:
	case errors.Is(err, errHelp):
		Usage(stdout, table)
		return cfg, &ExitError{Code: 0}
	case errors.Is(err, errVersion):
		fmt.Fprintln(stdout, buildinfo.String())
		return cfg, &ExitError{Code: 0}
	case applyErr != nil:
		fmt.Fprintf(stderr, "goxel2: %v\n", err)
		return cfg, &ExitError{Code: -1, Err: err}
	default:
		fmt.Fprintf(stderr, "goxel2: %v\n", err)
		fmt.Fprintln(stderr, "Try 'goxel2 --help' for more information.")
		return cfg, &ExitError{Code: -1, Err: err}
	}

	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	return cfg, nil
}

// Usage writes the help text for table.
func Usage(w io.Writer, table []Option) {
	fmt.Fprintln(w, "Usage: goxel2 [OPTION...] [INPUT]")
	fmt.Fprintln(w, "a 3D voxel art editor")
	fmt.Fprintln(w)
	for _, opt := range table {
		lead := "      "
		if opt.Short != "" {
			lead = "  -" + opt.Short + ", "
		}
		long := "--" + opt.Name
		if opt.Arity == RequiredArgument {
			long += "=" + opt.ArgName
		}
		fmt.Fprintf(w, "%s%-23s %s\n", lead, long, opt.Help)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report bugs to "+bugURL)
}
