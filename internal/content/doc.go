// Package content loads markdown collections from the site tree, validates
// their frontmatter against the collection schemas and builds the JSON
// content index consumed by the site build.
//
// A collection lives in <content dir>/<collection>/ and holds .md and .mdx
// files at any depth. The slug of an entry is its path relative to the
// collection directory, without extension.
package content
