package content

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/folio/internal/foundation/errors"
	"git.home.luguber.info/inful/folio/internal/frontmatter"
	"git.home.luguber.info/inful/folio/internal/schema"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Entry is a validated collection document.
type Entry struct {
	Collection string
	Slug       string
	// Path is slash-separated and relative to the filesystem root.
	Path string
	Data schema.Record
	Body []byte
}

// Failure records a document that could not be loaded or validated.
type Failure struct {
	Collection string
	Path       string
	Err        error
}

func (f Failure) Error() string { return f.Path + ": " + f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// Result collects the outcome of Load. Validation does not stop at the
// first bad document.
type Result struct {
	Entries  []Entry
	Failures []Failure
}

// Err summarises the failures as a schema error, or returns nil.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	paths := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
		paths[i] = f.Path
	}
	return errors.SchemaError(stderrors.Join(errs...), "content validation failed").
		WithContext("failed_files", paths).
		Build()
}

var markdownExtensions = []string{".md", ".mdx"}

// Load reads every registered collection under dir on fsys. A collection
// without a directory is treated as empty. A missing dir is a filesystem
// error.
func Load(fsys billy.Filesystem, dir string, reg *schema.Registry) (*Result, error) {
	root := "/" + strings.Trim(path.Clean("/"+dir), "/")
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.FileSystemError(err, "stat", dir).Build()
	}
	if !info.IsDir() {
		return nil, errors.NewError(errors.CategoryFileSystem, "content path is not a directory").
			Fatal().
			WithContext("path", dir).
			Build()
	}

	res := &Result{}
	for _, name := range reg.Names() {
		s, _ := reg.Lookup(name)
		if err := loadCollection(fsys, path.Join(root, name), s, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func loadCollection(fsys billy.Filesystem, collDir string, s schema.Schema, res *Result) error {
	if _, err := fsys.Stat(collDir); err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.FileSystemError(err, "stat", collDir).Build()
	}

	return util.Walk(fsys, collDir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return errors.FileSystemError(err, "walk", filepath.ToSlash(p)).Build()
		}
		if info.IsDir() || !isMarkdown(info.Name()) {
			return nil
		}
		p = filepath.ToSlash(p)
		rel := strings.TrimPrefix(p, collDir+"/")
		slug := strings.TrimSuffix(rel, path.Ext(rel))
		relPath := strings.TrimPrefix(p, "/")

		data, err := util.ReadFile(fsys, p)
		if err != nil {
			return errors.FileSystemError(err, "read", relPath).Build()
		}
		entry, err := parseEntry(s, slug, data)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Collection: s.Name, Path: relPath, Err: err})
			return nil
		}
		entry.Path = relPath
		res.Entries = append(res.Entries, entry)
		return nil
	})
}

func parseEntry(s schema.Schema, slug string, data []byte) (Entry, error) {
	doc, err := frontmatter.Parse(data)
	if err != nil {
		return Entry{}, err
	}
	rec, err := s.Validate(doc.Fields)
	if err != nil {
		var verr *schema.ValidationError
		if stderrors.As(err, &verr) {
			verr.Entry = slug
		}
		return Entry{}, err
	}
	return Entry{Collection: s.Name, Slug: slug, Data: rec, Body: doc.Body}, nil
}

func isMarkdown(name string) bool {
	return slices.Contains(markdownExtensions, strings.ToLower(path.Ext(name)))
}
