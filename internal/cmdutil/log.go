// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log"
)

// Logger writes levelled, timestamped progress lines to stderr.
// Quiet silences INFO; warnings and errors always get through.
type Logger struct {
	l     *log.Logger
	quiet bool
}

func NewLogger(dst io.Writer, quiet bool) *Logger {
	return &Logger{l: log.New(dst, "", log.LstdFlags), quiet: quiet}
}

func (g *Logger) Infof(format string, a ...any) {
	if g == nil || g.quiet {
		return
	}
	g.l.Printf("INFO  "+format, a...)
}

func (g *Logger) Warnf(format string, a ...any) {
	if g == nil {
		return
	}
	g.l.Printf("WARN  "+format, a...)
}

func (g *Logger) Errorf(format string, a ...any) {
	if g == nil {
		return
	}
	g.l.Printf("ERROR "+format, a...)
}
