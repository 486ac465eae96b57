package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Verbosity mirrors the host CLI's -q / -v / -vv / -vvv levels.
type Verbosity uint8

const (
	Quiet Verbosity = iota + 1
	Normal
	Verbose
	VeryVerbose
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	case VeryVerbose:
		return "very-verbose"
	case Debug:
		return "debug"
	default:
		return "verbosity(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseVerbosity accepts a name ("quiet", "normal", "verbose", "very-verbose",
// "debug"), a flag spelling ("-q", "-v", "-vv", "-vvv") or a count 0..3.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet", "-q", "q":
		return Quiet, nil
	case "", "normal", "0":
		return Normal, nil
	case "verbose", "-v", "v", "1":
		return Verbose, nil
	case "very-verbose", "veryverbose", "-vv", "vv", "2":
		return VeryVerbose, nil
	case "debug", "-vvv", "vvv", "3":
		return Debug, nil
	}
	return 0, errors.Errorf("console: unknown verbosity %q", s)
}

// ColorMode decides whether style tags are rendered as ANSI or stripped.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "color(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseColorMode accepts "auto", "always"/"true"/"on" and "never"/"false"/"off".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on", "yes":
		return ColorAlways, nil
	case "never", "false", "off", "no":
		return ColorNever, nil
	}
	return 0, errors.Errorf("console: unknown color mode %q", s)
}

// ErrorHandler receives write failures; sinks have no error return.
type ErrorHandler func(error)

// Options configures an Output.
type Options struct {
	Stdout       io.Writer // default: colorable os.Stdout
	Stderr       io.Writer // default: colorable os.Stderr
	Verbosity    Verbosity // default: Normal
	Color        ColorMode
	ErrorHandler ErrorHandler // default: print to os.Stderr

	// Styles adds or overrides named styles, e.g. "comment".
	Styles map[string]Style

	// Buffer tuning: initial capacity of the render buffer.
	// Defaults to 256 when <= 0
	BufferSize int
}
