// Package wikititle derives canonical wiki page titles from source filename
// stems. Titles are the flat-namespace identifiers of the target wiki, so the
// derivation must be deterministic: the same stem always yields the same title.
package wikititle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Replacement is a single ordered substring substitution. Replacements are
// applied in table order as plain substring substitutions, so a later entry
// can rewrite text produced by an earlier one. The order is part of the
// output contract, not an implementation detail.
type Replacement struct {
	From string
	To   string
}

// DefaultTable restores known acronyms to their canonical all-caps form after
// title casing has lowercased them.
func DefaultTable() []Replacement {
	return []Replacement{
		{From: "Api", To: "API"},
		{From: "Kpi", To: "KPI"},
		{From: "Prd", To: "PRD"},
		{From: "Ui", To: "UI"},
		{From: "Ux", To: "UX"},
		{From: "Pwa", To: "PWA"},
		{From: "Sql", To: "SQL"},
		{From: "Html", To: "HTML"},
		{From: "Css", To: "CSS"},
		{From: "Json", To: "JSON"},
		{From: "Http", To: "HTTP"},
		{From: "Https", To: "HTTPS"},
		{From: "Aws", To: "AWS"},
		{From: "Gcp", To: "GCP"},
	}
}

// Normalizer converts filename stems into wiki titles.
type Normalizer struct {
	table []Replacement
}

// New returns a Normalizer using the given replacement table. A nil table
// means DefaultTable.
func New(table []Replacement) *Normalizer {
	if table == nil {
		table = DefaultTable()
	}
	return &Normalizer{table: table}
}

// Normalize converts a filename stem to its canonical wiki title:
// hyphens become spaces, each word is title-cased, spaces become hyphens
// again, then the acronym table is applied in order. Total over any input.
func (n *Normalizer) Normalize(stem string) string {
	title := strings.ReplaceAll(stem, "-", " ")
	// cases.Caser is stateful; construct per call rather than sharing.
	title = cases.Title(language.Und).String(title)
	title = strings.ReplaceAll(title, " ", "-")
	for _, r := range n.table {
		title = strings.ReplaceAll(title, r.From, r.To)
	}
	return title
}
