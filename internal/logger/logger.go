// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the report-catalog binaries.
//
// The Logger type embeds zerolog.Logger so the whole zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available on *Logger. Components receive the
// process logger by pointer at construction time; request handlers and store
// calls use the request-scoped logger returned by FromContext or FromRequest,
// which carries the request's trace_id.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the field name under which request-scoped loggers record
// the request trace id.
const TraceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the process logger for the given role label
// (e.g. "catalog-server", "catalog-seed"). Output is JSON on os.Stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New constructs a *Logger writing JSON to w.
//
// Every entry carries:
//   - "role" set to role;
//   - a "time" timestamp;
//   - a "func" caller field holding the fully-qualified function name
//     instead of the default file:line.
//
// The global level is set to Debug.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting every field of the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with traceID together with a copy
// of ctx that carries it, so that FromContext(ctx) yields the child.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str(TraceIDField, traceID).Logger()}
	return child.WithContext(ctx), child
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
