package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

type Console struct {
	level     Level
	component string
	color     bool
	out       io.Writer
	errOut    io.Writer
	mu        *sync.Mutex
}

// NewConsole logs to stdout, warnings and errors to stderr. Colour is on
// when stdout is a terminal.
func NewConsole(level Level) *Console {
	fd := os.Stdout.Fd()
	return newConsole(level, os.Stdout, os.Stderr, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func newConsole(level Level, out, errOut io.Writer, color bool) *Console {
	return &Console{
		level:  level,
		color:  color,
		out:    out,
		errOut: errOut,
		mu:     &sync.Mutex{},
	}
}

func (l *Console) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }
func (l *Console) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args...) }
func (l *Console) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args...) }
func (l *Console) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

func (l *Console) WithComponent(component string) Logger {
	c := *l
	c.component = component
	return &c
}

func (l *Console) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	translated := l10n.F(msg, args...)

	var output string
	switch {
	case l.component == "":
		output = translated
	case l.color:
		output = fmt.Sprintf("%s[%s]%s %s", colorCyan, l.component, colorReset, translated)
	default:
		output = fmt.Sprintf("[%s] %s", l.component, translated)
	}

	if l.color {
		switch level {
		case LevelDebug:
			output = colorGray + output + colorReset
		case LevelWarn:
			output = colorYellow + output + colorReset
		case LevelError:
			output = colorRed + output + colorReset
		}
	}

	w := l.out
	if level >= LevelWarn {
		w = l.errOut
	}

	// batch workers share one logger
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, output)
}
