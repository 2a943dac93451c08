// Package operation sanitizes files and directory trees in place
package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/unemoji/pkg/log"
	"github.com/walteh/unemoji/pkg/status"
	"github.com/walteh/unemoji/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern selects Python sources below a directory target.
const DefaultPattern = "**/*.py"

// ErrInvalidTarget is returned by Run for a path that is neither a regular
// file nor a directory.
var ErrInvalidTarget = errors.Base("neither a file nor directory")

// 🔧 Options contains configuration for the sanitizer
type Options struct {
	// Pattern selects candidate files in directory mode, DefaultPattern when empty
	Pattern string
}

// 🧹 Sanitizer removes emoji from files in place. Per-file lines go to the
// console logger carried by the context (see log.NewContext).
type Sanitizer struct {
	pattern  string
	stripper *text.EmojiStripper
}

// 🏭 New creates a new sanitizer with the given options
func New(opts Options) (*Sanitizer, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q", pattern)
	}
	return &Sanitizer{
		pattern:  pattern,
		stripper: text.NewEmojiStripper(),
	}, nil
}

// SanitizeFile strips emoji from the file at path and rewrites it if anything
// was removed. Errors never escape: they are printed and folded into the
// result as StatusFailed.
func (s *Sanitizer) SanitizeFile(ctx context.Context, path string) status.FileResult {
	res := sanitize(ctx, s.stripper, path)
	log.FromContext(ctx).LogFileResult(ctx, res)
	return res
}

func sanitize(ctx context.Context, stripper *text.EmojiStripper, path string) status.FileResult {
	logger := zerolog.Ctx(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		return failed(path, errors.Errorf("reading file: %w", err))
	}

	result, err := stripper.StripText(ctx, bytes.NewReader(content))
	if err != nil {
		return failed(path, err)
	}

	if !result.WasModified {
		return status.FileResult{Path: path, Status: status.StatusClean}
	}

	// plain truncate and write; an interrupted write can leave the file short
	if err := os.WriteFile(path, result.ModifiedContent, 0o644); err != nil {
		return failed(path, errors.Errorf("writing file: %w", err))
	}

	if ev := logger.Debug(); ev.Enabled() {
		ev.Str("file", path).
			Str("delta", text.Delta(string(result.OriginalContent), string(result.ModifiedContent))).
			Msg("rewrote file")
	}

	return status.FileResult{Path: path, Status: status.StatusSanitized, Matches: result.Matches}
}

func failed(path string, err error) status.FileResult {
	return status.FileResult{Path: path, Status: status.StatusFailed, Err: err}
}

// Run sanitizes target, a regular file or a directory, and returns the run
// statistics. A directory is walked recursively and only files matching the
// sanitizer's pattern are touched. Any other kind of path yields
// ErrInvalidTarget before any file is opened.
func (s *Sanitizer) Run(ctx context.Context, target string) (*status.Report, error) {
	logger := zerolog.Ctx(ctx)
	report := &status.Report{}

	info, err := os.Stat(target)
	switch {
	case err != nil:
		logger.Debug().Err(err).Str("target", target).Msg("stat failed")
		return nil, errors.Errorf("%s: %w", target, ErrInvalidTarget)
	case info.Mode().IsRegular():
		report.Track(s.SanitizeFile(ctx, target))
		return report, nil
	case info.IsDir():
		files, err := s.Candidates(ctx, target)
		if err != nil {
			return nil, errors.Errorf("listing candidates: %w", err)
		}
		logger.Debug().Str("target", target).Int("candidates", len(files)).Msg("walking directory")
		for _, f := range files {
			report.Track(s.SanitizeFile(ctx, f))
		}
		return report, nil
	default:
		return nil, errors.Errorf("%s (%s): %w", target, info.Mode().Type(), ErrInvalidTarget)
	}
}
