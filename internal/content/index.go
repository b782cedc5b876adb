package content

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/folio/internal/frontmatter"
	"git.home.luguber.info/inful/folio/internal/schema"
	"github.com/inful/mdfp"
)

// IndexEntry is one document in the content index.
type IndexEntry struct {
	Collection  string        `json:"collection"`
	Slug        string        `json:"slug"`
	Path        string        `json:"path"`
	Data        schema.Record `json:"data"`
	Fingerprint string        `json:"fingerprint"`
	// Summary is the excerpt field when set, else the first paragraph.
	Summary string `json:"summary,omitempty"`
	Words   int    `json:"words"`
}

// Index is the manifest written by `folio index`.
type Index struct {
	Entries []IndexEntry `json:"entries"`
}

// BuildIndex computes fingerprints and body stats for entries and orders
// them by collection, then date (newest first, undated last), then slug.
func BuildIndex(entries []Entry) (*Index, error) {
	out := make([]IndexEntry, 0, len(entries))
	for _, e := range entries {
		fp, err := Fingerprint(e)
		if err != nil {
			return nil, err
		}
		stats := analyzeBody(e.Body)
		summary := e.Data.String("excerpt")
		if summary == "" {
			summary = stats.Summary
		}
		out = append(out, IndexEntry{
			Collection:  e.Collection,
			Slug:        e.Slug,
			Path:        e.Path,
			Data:        e.Data,
			Fingerprint: fp,
			Summary:     summary,
			Words:       stats.Words,
		})
	}
	slices.SortStableFunc(out, compareEntries)
	return &Index{Entries: out}, nil
}

func compareEntries(a, b IndexEntry) int {
	if c := cmp.Compare(a.Collection, b.Collection); c != 0 {
		return c
	}
	da, aok := a.Data["date"].(time.Time)
	db, bok := b.Data["date"].(time.Time)
	switch {
	case aok && bok:
		if c := db.Compare(da); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return cmp.Compare(a.Slug, b.Slug)
}

// Fingerprint hashes the canonical frontmatter of e together with its body.
// The value changes whenever any field or the body changes.
func Fingerprint(e Entry) (string, error) {
	fm, err := frontmatter.Canonical(e.Data, mdfp.FingerprintField)
	if err != nil {
		return "", err
	}
	return mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(fm), "\n"), string(e.Body)), nil
}

// WriteJSON writes the index as indented JSON.
func (ix *Index) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ix)
}

// Collection returns the entries of one collection in index order.
func (ix *Index) Collection(name string) []IndexEntry {
	var out []IndexEntry
	for _, e := range ix.Entries {
		if e.Collection == name {
			out = append(out, e)
		}
	}
	return out
}
