// Package nav holds the static site navigation menu.
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Link is one menu item.
type Link struct {
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label" yaml:"label"`
}

// Menu is an ordered, immutable list of links.
type Menu struct {
	links []Link
}

// DefaultLinks is the menu of the site.
func DefaultLinks() []Link {
	return []Link{
		{Href: "/", Label: "Home"},
		{Href: "/publications-research-projects", Label: "Publications & Projects"},
		{Href: "/art", Label: "Art"},
		{Href: "/experience", Label: "Experience"},
	}
}

// Default returns the menu of DefaultLinks.
func Default() *Menu {
	return &Menu{links: DefaultLinks()}
}

// New validates links and builds a menu. An href must be a site path
// (starting with "/") or an absolute URL, and hrefs must be unique.
// An empty label is derived from the last path segment.
func New(links []Link) (*Menu, error) {
	out := make([]Link, 0, len(links))
	seen := make(map[string]bool, len(links))
	for i, l := range links {
		if err := checkHref(l.Href); err != nil {
			return nil, fmt.Errorf("nav link %d: %w", i, err)
		}
		if seen[l.Href] {
			return nil, fmt.Errorf("nav link %d: duplicate href %q", i, l.Href)
		}
		seen[l.Href] = true
		if strings.TrimSpace(l.Label) == "" {
			l.Label = DeriveLabel(l.Href)
		}
		out = append(out, l)
	}
	return &Menu{links: out}, nil
}

// Links returns a copy of the menu items in order.
func (m *Menu) Links() []Link {
	return slices.Clone(m.links)
}

// Len returns the number of links.
func (m *Menu) Len() int { return len(m.links) }

// Active returns the link for the page at p: an exact href match, otherwise
// the non-root link with the longest href that is a path prefix of p.
func (m *Menu) Active(p string) (Link, bool) {
	p = normalizePath(p)
	var (
		best  Link
		found bool
	)
	for _, l := range m.links {
		if !strings.HasPrefix(l.Href, "/") {
			continue
		}
		href := normalizePath(l.Href)
		if href == p {
			return l, true
		}
		if href == "/" || !strings.HasPrefix(p, href+"/") {
			continue
		}
		if !found || len(href) > len(normalizePath(best.Href)) {
			best, found = l, true
		}
	}
	return best, found
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

func checkHref(href string) error {
	if href == "" {
		return errors.New("empty href")
	}
	if strings.HasPrefix(href, "/") {
		if strings.HasPrefix(href, "//") {
			return fmt.Errorf("href %q is protocol-relative", href)
		}
		return nil
	}
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("href %q is neither a site path nor an absolute url", href)
	}
	return nil
}

// DeriveLabel turns the last path segment of href into a label:
// "/publications-research-projects" becomes "Publications Research Projects".
// The root path is "Home". A cases.Caser is stateful, so each call builds its own.
func DeriveLabel(href string) string {
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		if u.Path == "" || u.Path == "/" {
			return u.Hostname()
		}
		href = u.Path
	}
	seg := path.Base(normalizePath(href))
	if seg == "/" {
		return "Home"
	}
	words := strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}
