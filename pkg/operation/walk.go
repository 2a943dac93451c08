package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Candidates lists the files below root that match the sanitizer's pattern,
// in walk order. Unreadable directories are skipped. A symlinked root is
// walked through, but returned paths stay under root as given.
func (s *Sanitizer) Candidates(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	// WalkDir does not descend into a root that is itself a symlink
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", root, err)
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", p).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(walkRoot, p)
		if err != nil {
			return nil
		}
		matched, err := doublestar.Match(s.pattern, filepath.ToSlash(rel))
		if err != nil {
			return errors.Errorf("matching pattern: %w", err)
		}
		if !matched || !isFile(d, p) {
			return nil
		}

		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// isFile reports whether the entry is a regular file, following symlinks.
func isFile(d fs.DirEntry, p string) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
