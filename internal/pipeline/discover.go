package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Directories walks root and returns root followed by every directory below
// it, in lexical walk order. Directories listed in skip (compared after
// filepath.Clean) are pruned together with their subtrees; root itself is
// never skipped.
//
// A subdirectory that cannot be read is left out and the walk goes on with
// its siblings; those errors are joined into the returned error. Only a root
// that cannot be read stops the walk.
func Directories(root string, skip ...string) ([]string, error) {
	pruned := make(map[string]bool, len(skip))
	for _, s := range skip {
		pruned[filepath.Clean(s)] = true
	}
	root = filepath.Clean(root)

	var dirs []string
	var errs []error
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			errs = append(errs, err)
			if d != nil && d.IsDir() {
				dirs = slices.DeleteFunc(dirs, func(p string) bool { return p == path })
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && pruned[filepath.Clean(path)] {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return dirs, errors.Join(errs...)
}

// Listing is the set of source files found directly inside one directory.
type Listing struct {
	Files []string // base names, sorted
	Bytes int64    // total size of Files
}

// ListSources returns the regular files directly inside dir whose extension
// (compared case-insensitively) is in exts. Subdirectories are not entered.
func ListSources(dir string, exts []string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, err
	}

	var l Listing
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), "."))
		if ext == "" || !slices.Contains(exts, ext) {
			continue
		}
		l.Files = append(l.Files, e.Name())
		if fi, err := e.Info(); err == nil {
			l.Bytes += fi.Size()
		}
	}
	// os.ReadDir already sorts by file name.
	return l, nil
}
