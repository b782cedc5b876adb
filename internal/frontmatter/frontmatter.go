// Package frontmatter splits collection entries into their YAML header and
// markdown body.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontmatter is returned by Parse for a document that does
	// not start with a `---` line. Collection entries must carry one.
	ErrMissingFrontmatter = errors.New("document has no yaml frontmatter")

	// ErrMissingClosingDelimiter indicates the document opened a frontmatter
	// block but never closed it.
	ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")
)

// Document is a parsed collection entry.
type Document struct {
	Fields map[string]any
	Body   []byte
}

// Split separates YAML frontmatter (`---` delimited) from the body.
//
// If the document does not start with a delimiter line, had is false and
// body is the full input. LF and CRLF line endings are both accepted.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := newline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line without a trailing newline.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			end := len(content) - len(tail)
			return content[start : end+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

// ParseYAML parses raw frontmatter (without delimiters) into a map.
// An empty block yields an empty, non-nil map.
func ParseYAML(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Parse splits and decodes a collection entry. A document without a
// frontmatter block is an error.
func Parse(content []byte) (Document, error) {
	fm, body, had, err := Split(content)
	if err != nil {
		return Document{}, err
	}
	if !had {
		return Document{}, ErrMissingFrontmatter
	}
	fields, err := ParseYAML(fm)
	if err != nil {
		return Document{}, err
	}
	return Document{Fields: fields, Body: body}, nil
}

func newline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
