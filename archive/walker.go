// Package archive walks token documents packed into zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkFunc is called for each file in archive visited by Walk. The archive
// argument is the path passed to Walk, file is the entry which matched the
// pattern. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every regular file in the archive whose name matches
// doublestar pattern. Empty pattern matches everything. Entries with absolute
// names or ".." components abort the walk.
func Walk(archive, pattern string, walkFn WalkFunc) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("bad archive pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !matches(pattern, name) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func matches(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	return doublestar.MatchUnvalidated(pattern, name)
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
