package retoken

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// countingFS records every open so tests can prove a file was never touched.
type countingFS struct {
	billy.Filesystem
	opened  map[string]int
	written map[string]int
}

func newCountingFS(fs billy.Filesystem) *countingFS {
	return &countingFS{Filesystem: fs, opened: map[string]int{}, written: map[string]int{}}
}

func (c *countingFS) Open(name string) (billy.File, error) {
	c.opened[name]++
	return c.Filesystem.Open(name)
}

func (c *countingFS) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	c.opened[name]++
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		c.written[name]++
	}
	return c.Filesystem.OpenFile(name, flag, perm)
}

// newTree builds an in-memory tree from relative path -> content.
func newTree(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, "/"+name, []byte(content), 0o644))
	}
	return fs
}

func readTree(t *testing.T, fs billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(fs, "/"+name)
	require.NoError(t, err)
	return string(data)
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("skipping permission-dependent test when running as root")
	}
}

var siteExtensions = []string{".astro", ".html", ".js", ".jsx", ".ts", ".tsx", ".css", ".md", ".mdx"}

type listingFS struct {
	*countingFS
	listed map[string]int
}

func (l *listingFS) ReadDir(name string) ([]os.FileInfo, error) {
	l.listed[name]++
	return l.countingFS.ReadDir(name)
}

// failingDirFS fails to list the "ok" directory.
type failingDirFS struct {
	*countingFS
}

func (f *failingDirFS) ReadDir(name string) ([]os.FileInfo, error) {
	if name == "/ok" {
		return nil, errListing
	}
	return f.countingFS.ReadDir(name)
}
