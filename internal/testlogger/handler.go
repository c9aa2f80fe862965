// Package testlogger provides a slog handler that can be installed globally
// while tests run in parallel, forwarding each record to the handler that the
// currently running test registered.
package testlogger

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
)

// Handler is meant to be set as the default slog handler in TestMain.
type Handler struct {
	loggerMap sync.Map // map[string]cmdlogger.CmdLogger
}

func (tl *Handler) getLogger() cmdlogger.CmdLogger {
	key := getCallerInstance()

	val, ok := tl.loggerMap.Load(key)
	if !ok {
		panic("logger not found: " + key)
	}

	return val.(cmdlogger.CmdLogger)
}

// AddInstance registers the logger used by the calling test.
func (tl *Handler) AddInstance(logger cmdlogger.CmdLogger) {
	key := getCallerInstance()
	prev, _ := tl.loggerMap.Swap(key, logger)
	if prev != nil {
		panic("same logger being added twice")
	}
}

// Delete removes the logger added by AddInstance.
// This **must** be called before a test ends, as the same memory address may be reused.
func (tl *Handler) Delete() {
	tl.loggerMap.Delete(getCallerInstance())
}

func (tl *Handler) SendEverythingToStderr() {
	tl.getLogger().SendEverythingToStderr()
}

func (tl *Handler) SetLevel(level slog.Leveler) {
	tl.getLogger().SetLevel(level)
}

func (tl *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return tl.getLogger().Enabled(ctx, level)
}

func (tl *Handler) Handle(ctx context.Context, record slog.Record) error {
	return tl.getLogger().Handle(ctx, record)
}

func (tl *Handler) HasErrored() bool {
	return tl.getLogger().HasErrored()
}

func (tl *Handler) HasErroredBecauseInvalidConfig() bool {
	return tl.getLogger().HasErroredBecauseInvalidConfig()
}

func (tl *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tl.getLogger().WithAttrs(attrs)
}

func (tl *Handler) WithGroup(g string) slog.Handler {
	return tl.getLogger().WithGroup(g)
}

var _ cmdlogger.CmdLogger = &Handler{}

func New() *Handler {
	return &Handler{}
}

// getCallerInstance finds the frame of the test runner in the call stack, which
// looks like `testing.tRunner(0x12345678, 0x98765432)`.
//
// The pointer arguments are unique for as long as the test is running, so the
// line can be used as a key.
//
// Caveat: this cannot find the frame when called from another goroutine.
func getCallerInstance() string {
	sc := bufio.NewScanner(bytes.NewReader(debug.Stack()))
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), "testing.tRunner(") {
			return sc.Text()
		}
	}

	return ""
}
