package retoken

import (
	"io/fs"
	"iter"
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/folio/internal/util/sets"
	"github.com/go-git/go-billy/v5"
)

// File is a regular file found by Walk.
type File struct {
	// Rel is the slash-separated path relative to the walk root.
	Rel  string
	Mode fs.FileMode
}

// DirFilter reports whether a directory (by base name) must be skipped
// together with everything beneath it.
type DirFilter func(name string) bool

// FileFilter reports whether a file (by base name) is yielded.
type FileFilter func(name string) bool

// Walk lazily enumerates files under the root of fsys, depth first, entries
// of each directory in lexical order. Directories rejected by skipDir are
// never listed, at any depth. Files rejected by keep are never yielded and
// therefore never opened by callers.
//
// A listing error is yielded once and ends the sequence.
func Walk(fsys billy.Filesystem, skipDir DirFilter, keep FileFilter) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		walkDir(fsys, "", skipDir, keep, yield)
	}
}

// walkDir returns false when iteration must stop.
func walkDir(fsys billy.Filesystem, rel string, skipDir DirFilter, keep FileFilter, yield func(File, error) bool) bool {
	entries, err := fsys.ReadDir(fsPath(rel))
	if err != nil {
		yield(File{Rel: rel}, err)
		return false
	}
	slices.SortFunc(entries, func(a, b fs.FileInfo) int { return strings.Compare(a.Name(), b.Name()) })

	for _, e := range entries {
		name := e.Name()
		child := path.Join(rel, name)
		if e.IsDir() {
			if skipDir != nil && skipDir(name) {
				continue
			}
			if !walkDir(fsys, child, skipDir, keep, yield) {
				return false
			}
			continue
		}
		if keep != nil && !keep(name) {
			continue
		}
		if !yield(File{Rel: child, Mode: e.Mode()}, nil) {
			return false
		}
	}
	return true
}

// fsPath maps a walk-relative path to the rooted form billy filesystems
// (chroot'd osfs and memfs alike) resolve against their root.
func fsPath(rel string) string {
	return "/" + rel
}

// ExtensionFilter keeps files whose extension, compared case-insensitively,
// is in exts. Entries in exts carry the leading dot.
func ExtensionFilter(exts []string) FileFilter {
	allowed := sets.Fold(exts...)
	return func(name string) bool {
		return allowed.Has(strings.ToLower(path.Ext(name)))
	}
}

// NameFilter skips directories whose base name is in names.
func NameFilter(names []string) DirFilter {
	excluded := sets.New(names...)
	return excluded.Has
}
