package docgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// DefaultTarget is the document processed when no targets are given.
const DefaultTarget = "README.md"

const globMeta = "*?[{"

// ExpandTargets resolves target patterns relative to dir. Patterns without
// glob metacharacters are returned as given so that a missing file surfaces
// as a read error later. Patterns with metacharacters are expanded with
// doublestar syntax (`docs/**/*.md`) and must match at least one file.
// Targets matching any exclude pattern are dropped. The result keeps the
// order of first appearance and contains no duplicates.
func ExpandTargets(dir string, patterns, excludes []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultTarget}
	}

	excluded, err := compileExcludes(excludes)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var targets []string
	add := func(target string) {
		key := filepath.Clean(target)
		if seen[key] || excluded(filepath.ToSlash(key)) {
			return
		}
		seen[key] = true
		targets = append(targets, target)
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, globMeta) {
			add(pattern)
			continue
		}

		matches, err := globTargets(dir, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid file pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no files match pattern %q", pattern)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return targets, nil
}

func globTargets(dir, pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}

	matches, err := doublestar.Glob(os.DirFS(dir), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.FromSlash(m)
	}
	return matches, nil
}

func compileExcludes(excludes []string) (func(string) bool, error) {
	globs := make([]glob.Glob, 0, len(excludes))
	for _, pattern := range excludes {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		globs = append(globs, g)
	}

	return func(path string) bool {
		for _, g := range globs {
			if g.Match(path) {
				return true
			}
		}
		return false
	}, nil
}
