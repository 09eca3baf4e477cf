// Package log provides context-aware logging for reana-dev.
//
// Diagnostics go to stderr; primary data output goes through the output
// package. Command echo lines use the reana-dev format "[component] command"
// so that interleaved subprocess output stays attributable.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/reanahub/reana-dev/internal/ui/styles"
)

type ctxKey struct{}

// Logger provides diagnostics and per-component command echo.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	styled  bool
}

// New creates a new logger. Styling is enabled only when out is a terminal.
func New(out io.Writer, verbose, quiet bool) *Logger {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: out, verbose: verbose, quiet: quiet, styled: styled}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, quiet: true}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Step announces a command about to run in a component directory, in the
// form "[component] command". Component may be empty for commands that run
// outside any component checkout.
func (l *Logger) Step(component, command string) {
	l.println(fmt.Sprintf("[%s] %s", component, command))
}

// Message displays a per-component message in the same style as Step.
func (l *Logger) Message(component, msg string) {
	l.println(fmt.Sprintf("[%s] %s", component, msg))
}

// Command logs an external command invocation.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if !l.verbose || l.quiet {
		return
	}
	line := fmt.Sprintf("$ %s %s", name, strings.Join(args, " "))
	if l.styled {
		line = styles.MutedStyle.Render(line)
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) println(line string) {
	if l.quiet {
		return
	}
	if l.styled {
		line = styles.Bold.Render(line)
	}
	fmt.Fprintln(l.out, line)
}
