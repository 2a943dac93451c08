// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/unemoji/pkg/status"
)

// 🎯 Logger writes user-facing lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Console lines go to console, structured
// records go to zlog.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

type contextKey struct{}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 🎯 FromContext gets the logger from context. Without one, console lines are
// discarded and records go to the context's zerolog logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, *zerolog.Ctx(ctx))
}

// 📝 LogFileResult prints the line for a sanitized or failed file
func (l *Logger) LogFileResult(ctx context.Context, res status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if line, ok := status.FormatFileResult(res); ok {
		fmt.Fprintln(l.console, line)
	}

	ev := l.zlog.Debug()
	if res.Status == status.StatusFailed {
		ev = l.zlog.Warn().Err(res.Err)
	}
	ev.Str("file", res.Path).
		Str("status", res.Status.String()).
		Int("matches", len(res.Matches)).
		Msg("file processed")
}

// 📝 Summary prints the footer for a finished run
func (l *Logger) Summary(ctx context.Context, r status.Report) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	for _, line := range status.FormatSummary(r) {
		fmt.Fprintln(l.console, line)
	}

	l.zlog.Info().
		Int("files_processed", r.FilesProcessed).
		Int("files_sanitized", r.FilesSanitized).
		Msg("run complete")
}

// 📝 Usage prints usage instructions for program
func (l *Logger) Usage(program string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range status.FormatUsage(program) {
		fmt.Fprintln(l.console, line)
	}
}

// 📝 InvalidTarget reports a path that is neither a file nor a directory
func (l *Logger) InvalidTarget(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, status.FormatInvalidTarget(path))
	l.zlog.Error().Str("path", path).Msg("invalid target")
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

