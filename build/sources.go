package build

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tokencss/archive"
	"tokencss/config"
	"tokencss/token"
)

// sniffLen is enough for every filetype matcher.
const sniffLen = 262

// matchSources expands source patterns relative to project directory. Result
// has no duplicates and is in natural order.
func matchSources(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("bad source pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("unable to expand source pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

// loadSources reads every token document matched by configured sources,
// looking inside zip archives. Documents which cannot be read or parsed are
// all reported together.
func loadSources(ctx context.Context, dir string, cfg *config.TokensConfig, log *zap.Logger) ([]*token.Token, error) {
	files, err := matchSources(dir, cfg.Sources)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Warn("No token documents found", zap.String("dir", dir), zap.Strings("sources", cfg.Sources))
		return nil, nil
	}

	var (
		tokens []*token.Token
		errs   error
	)
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := filepath.Join(dir, filepath.FromSlash(name))
		isZip, err := isArchiveFile(full)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to check file type: %w", err))
			continue
		}
		if isZip {
			found, err := loadArchive(ctx, full, name, cfg.ArchivePattern, log)
			tokens = append(tokens, found...)
			errs = multierr.Append(errs, err)
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		found, err := token.Parse(data, name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		log.Debug("Token document loaded", zap.String("file", name), zap.Int("tokens", len(found)))
		tokens = append(tokens, found...)
	}
	return tokens, errs
}

// loadArchive parses documents inside zip archive. Token source names are
// "archive/entry" so they order and report naturally.
func loadArchive(ctx context.Context, full, name, pattern string, log *zap.Logger) ([]*token.Token, error) {
	var (
		tokens []*token.Token
		errs   error
		count  int
	)
	err := archive.Walk(full, pattern, func(_ string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++

		source := path.Join(name, f.Name)
		data, err := readEntry(f)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read %s: %w", source, err))
			return nil
		}
		found, err := token.Parse(data, source)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		log.Debug("Token document loaded", zap.String("file", source), zap.Int("tokens", len(found)))
		tokens = append(tokens, found...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to process archive %s: %w", name, err)
	}
	if count == 0 {
		log.Warn("Nothing to process in archive", zap.String("archive", name), zap.String("pattern", pattern))
	}
	return tokens, errs
}

func readEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func isArchiveFile(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}
