// Package wiki assembles the persisted page format of the target wiki.
//
// The header and footer blocks are a literal text contract: the index builder
// reads the category back out of written pages, so the exact labels matter.
package wiki

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Header carries the literal stamp values written into every page header.
type Header struct {
	LastUpdated string
	Attribution string
}

// Page is a fully wrapped, link-rewritten output artifact.
type Page struct {
	Title    string
	Category string
	Body     string
}

var categoryRe = regexp.MustCompile(`\*\*Category\*\*:\s*([^\n]+)`)

// Wrap produces the complete persisted page body. If the body's first line is
// a level-1 heading its text becomes the display title and the line is
// dropped; otherwise the derived title is displayed. Leading blank lines are
// stripped from the remaining body.
func Wrap(body, derivedTitle, category string, h Header) string {
	displayTitle := derivedTitle
	lines := strings.Split(body, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		if t := strings.TrimSpace(strings.TrimPrefix(lines[0], "# ")); t != "" {
			displayTitle = t
		}
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	content := strings.TrimRight(strings.Join(lines, "\n"), "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", displayTitle)
	fmt.Fprintf(&b, "**Category**: %s\n", category)
	fmt.Fprintf(&b, "**Last Updated**: %s\n", h.LastUpdated)
	b.WriteString("**Status**: Current\n\n---\n\n")
	b.WriteString(content)
	b.WriteString("\n\n---\n\n## Related Documentation\n\n")
	b.WriteString("*See the [Home](Home) page for complete documentation navigation.*\n\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*%s*\n", h.Attribution)
	return b.String()
}

// ReadCategory parses the category label back out of a persisted page file.
// Index grouping deliberately trusts the written header over the in-memory
// label that produced it.
func ReadCategory(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	m := categoryRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no category header in %s", path)
	}
	return strings.TrimSpace(string(m[1])), nil
}
