package main

import (
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"

	"header-generator/internal/syntax"
)

// expandInputs resolves glob patterns (with ** support) to a de-duplicated file list.
func expandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", pattern)
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}

// loadInputs decodes every file matched by patterns.
func loadInputs(logger *slog.Logger, patterns []string) ([]*syntax.File, error) {
	paths, err := expandInputs(patterns)
	if err != nil {
		return nil, err
	}

	files := make([]*syntax.File, 0, len(paths))
	for _, p := range paths {
		f, err := syntax.LoadFile(p)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded declarations", slog.String("path", p), slog.Int("items", len(f.Items)))
		files = append(files, f)
	}

	return files, nil
}
