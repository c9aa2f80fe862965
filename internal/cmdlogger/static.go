// Package cmdlogger holds the slog handler used by the snyk-to-sarif CLI and
// printf-style helpers that log through the default slog logger.
package cmdlogger

import (
	"fmt"
	"log/slog"
)

func Debugf(msg string, args ...any) {
	slog.Debug(fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...any) {
	slog.Info(fmt.Sprintf(msg, args...))
}

func Warnf(msg string, args ...any) {
	slog.Warn(fmt.Sprintf(msg, args...))
}

func Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}

// HasErrored reports whether the default logger has handled an error-level
// record. It is always false when the default handler is not a [CmdLogger].
func HasErrored() bool {
	if l, ok := slog.Default().Handler().(CmdLogger); ok {
		return l.HasErrored()
	}

	return false
}

// SetLevel changes the minimum level of the default handler, if it is a [CmdLogger].
func SetLevel(level slog.Leveler) {
	if l, ok := slog.Default().Handler().(CmdLogger); ok {
		l.SetLevel(level)
	}
}
