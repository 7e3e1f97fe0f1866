package walker

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/rs/zerolog"
)

// Walker enumerates candidate source files under a project root. Excluded
// directories are pruned before descending; traversal order is the
// lexicographic order of filepath.WalkDir, so repeated walks of an unchanged
// tree yield identical sequences.
type Walker struct {
	config config.WalkerConfig
	logger zerolog.Logger
}

// NewWalker creates a new Walker instance.
func NewWalker(cfg config.WalkerConfig, logger zerolog.Logger) *Walker {
	return &Walker{
		config: cfg,
		logger: logger.With().Str("component", "Walker").Logger(),
	}
}

// Walk returns the relative paths of all candidate files under root. The
// returned error is non-nil only when the root itself cannot be accessed;
// unreadable entries below the root are logged and skipped.
func (w *Walker) Walk(root string) ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return common.WrapError(err, "cannot access project root")
			}
			w.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && w.isExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			w.logger.Warn().Err(relErr).Str("path", path).Msg("Skipping file outside root")
			return nil
		}

		if !w.hasSourceExtension(rel) || w.matchesExcludedKeyword(rel) {
			return nil
		}

		candidates = append(candidates, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if max := w.config.MaxFiles; max > 0 && len(candidates) > max {
		w.logger.Info().
			Int("total", len(candidates)).
			Int("limit", max).
			Msg("File count exceeds limit, analyzing first files only")
		candidates = candidates[:max]
	}

	return candidates, nil
}

func (w *Walker) isExcludedDir(name string) bool {
	for _, excluded := range w.config.ExcludedDirs {
		if name == excluded {
			return true
		}
	}
	return false
}

func (w *Walker) hasSourceExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.config.SourceExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// matchesExcludedKeyword checks the slash-normalized, lowercased relative path
// against the configured path fragments (test fixtures, vendored frameworks).
func (w *Walker) matchesExcludedKeyword(rel string) bool {
	normalized := strings.ToLower(filepath.ToSlash(rel))
	for _, keyword := range w.config.ExcludedKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
