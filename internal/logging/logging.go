package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch raw {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format: %s", raw)
	}
}

// New returns a logger writing to stderr. Verbose lowers the level to debug.
func New(verbose bool, format Format) *pterm.Logger {
	return NewWithWriter(os.Stderr, verbose, format)
}

func NewWithWriter(w io.Writer, verbose bool, format Format) *pterm.Logger {
	level := pterm.LogLevelWarn
	if verbose {
		level = pterm.LogLevelDebug
	}
	formatter := pterm.LogFormatterColorful
	if format == FormatJSON {
		formatter = pterm.LogFormatterJSON
	}
	return pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(level).
		WithFormatter(formatter).
		WithTime(false)
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}
