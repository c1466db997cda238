// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Fallback labels for candidates with missing data.
const (
	// FallbackName labels a candidate whose name cell was empty.
	FallbackName = "Candidate"
	// FallbackGlyph is rendered in place of a headshot when no usable
	// name character exists.
	FallbackGlyph = "?"
)

// Candidate represents one person running for a Position.
// Fields mirror the JSON contract produced by the offline roster generator.
type Candidate struct {
	Name      string `json:"name,omitempty"`
	Headshot  string `json:"headshot,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// DisplayName returns the candidate name, or a generic label when absent.
func (c Candidate) DisplayName() string {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return FallbackName
	}
	return name
}

// Initial returns the uppercased first character of the display name,
// used as a placeholder when no headshot exists. Never empty.
func (c Candidate) Initial() string {
	name := c.DisplayName()
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return FallbackGlyph
	}
	return strings.ToUpper(string(r))
}

// Position represents one electable role and its ordered candidate list.
type Position struct {
	Slug       string      `json:"slug"`
	Title      string      `json:"title"`
	Sheet      string      `json:"sheet,omitempty"`
	Candidates []Candidate `json:"candidates"`
}

// ID returns the stable identifier for the position: the slug, or the
// title when the slug is absent. Producers are expected to keep slugs
// unique; on duplicates the first occurrence wins at lookup time.
func (p Position) ID() string {
	if slug := strings.TrimSpace(p.Slug); slug != "" {
		return slug
	}
	return strings.TrimSpace(p.Title)
}

// Document is the full loaded dataset for one process lifetime.
// It is immutable after decode.
type Document struct {
	Positions []Position `json:"positions"`
}

// CandidateCount returns the total number of candidates across positions.
func (d Document) CandidateCount() int {
	n := 0
	for _, p := range d.Positions {
		n += len(p.Candidates)
	}
	return n
}

// rawDocument delays decoding of the positions field so that a missing
// or wrongly shaped value degrades to an empty roster instead of an error.
type rawDocument struct {
	Positions []json.RawMessage `json:"positions"`
}

// Decode parses a roster document. Invalid JSON is an error; a missing or
// non-array positions field yields an empty document, and individual
// position entries that fail to decode are skipped. Malformed data from
// the spreadsheet pipeline must degrade, not crash the page.
func Decode(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		// Well-formed JSON with a wrongly shaped positions field (or a
		// non-object top level) is tolerated as an empty roster.
		if json.Valid(data) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode roster document: %w", err)
	}

	doc := Document{}
	for _, entry := range raw.Positions {
		var p Position
		if err := json.Unmarshal(entry, &p); err != nil {
			continue
		}
		doc.Positions = append(doc.Positions, p)
	}
	return doc, nil
}
