// Package locate maps resolved identifiers to PDF files under an ordered list
// of source directories.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Source is a directory searched for identifier files. Label is reported to
// the user when a file is found there.
type Source struct {
	Label string
	Dir   string
}

// Result is the outcome of locating one identifier. Path and Source are empty
// when Found is false.
type Result struct {
	Name   string
	Path   string
	Source string
	Found  bool
}

// Locator checks sources in order and returns the first existing file.
type Locator struct {
	fs         afero.Fs
	sources    []Source
	extensions []string
}

// New creates a Locator over fsys. Extensions are tried in order for every
// source; a leading dot is optional.
func New(fsys afero.Fs, extensions []string, sources ...Source) (*Locator, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if len(sources) == 0 {
		return nil, errors.New("locator needs at least one source")
	}
	if len(extensions) == 0 {
		return nil, errors.New("locator needs at least one extension")
	}

	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			return nil, errors.New("locator extension must not be empty")
		}
		exts = append(exts, ext)
	}

	return &Locator{fs: fsys, sources: sources, extensions: exts}, nil
}

// Candidates lists every path Locate would check for name, in order.
func (l *Locator) Candidates(name string) []string {
	paths := make([]string, 0, len(l.sources)*len(l.extensions))
	for _, src := range l.sources {
		for _, ext := range l.extensions {
			paths = append(paths, filepath.Join(src.Dir, name+"."+ext))
		}
	}
	return paths
}

// Locate returns the first regular file matching name. A missing file is
// reported through Result.Found; only unexpected filesystem failures are
// returned as errors.
func (l *Locator) Locate(name string) (Result, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return Result{}, fmt.Errorf("invalid file name %q", name)
	}

	for _, src := range l.sources {
		for _, ext := range l.extensions {
			path := filepath.Join(src.Dir, name+"."+ext)
			info, err := l.fs.Stat(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return Result{}, fmt.Errorf("failed to check %s: %w", path, err)
			}
			if info.IsDir() {
				continue
			}
			return Result{Name: name, Path: path, Source: src.Label, Found: true}, nil
		}
	}

	return Result{Name: name}, nil
}
