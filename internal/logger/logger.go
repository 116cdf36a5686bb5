// Package logger builds the zerolog logger shared by the demos and the CLI.
//
// Demo output goes to stdout; logs go to the writer given here (stderr in
// practice) so the two never interleave.
package logger

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to out at level.
//
// Colour is enabled only when out is a terminal.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = !isTerminal(out)
		w.TimeFormat = "15:04:05.999 |"
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
	})

	return zerolog.New(w).Level(level).With().Timestamp().Caller().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }

type tTesting interface {
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
	Cleanup(f func())
}

// NewTest returns a debug logger whose lines are attached to t.
func NewTest(t tTesting) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(zerolog.ConsoleTestWriter(t), func(w *zerolog.ConsoleWriter) {
		w.NoColor = true
	})).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

func init() { //nolint:gochecknoinits // caller paths are shortened once for every logger
	zerolog.CallerMarshalFunc = shortCaller
}

// shortCaller keeps the last two path elements: "demo/demo.go:42".
func shortCaller(_ uintptr, file string, line int) string {
	short := file
	seen := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			seen++
			if seen >= 2 {
				short = file[i+1:]
				break
			}
		}
	}
	return short + ":" + strconv.Itoa(line)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
