package batch

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"git.home.luguber.info/inful/wikimigrate/internal/convert"
	"git.home.luguber.info/inful/wikimigrate/internal/logfields"
	"git.home.luguber.info/inful/wikimigrate/internal/wiki"
)

// unknownCategory groups pages whose written header could not be read back.
const unknownCategory = "Unknown"

// buildIndex renders the category-grouped index page for all successfully
// written pages. Grouping reads the category back out of each persisted page
// header rather than trusting the in-memory label: the written file is the
// contract. Groups keep first-seen order; entries sort by title.
func (d *Driver) buildIndex(succeeded []convert.Result) string {
	var order []string
	groups := make(map[string][]convert.Result)
	for _, res := range succeeded {
		cat, err := wiki.ReadCategory(res.OutputPath)
		if err != nil {
			slog.Warn("Could not read category back from page", logfields.Path(res.OutputPath), logfields.Error(err))
			cat = unknownCategory
		}
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], res)
	}

	var b strings.Builder
	b.WriteString("# Wiki Content Index\n\n")
	fmt.Fprintf(&b, "**Generated**: %s  \n", d.cfg.Header.LastUpdated)
	fmt.Fprintf(&b, "**Total Files**: %d  \n\n", len(succeeded))

	for _, cat := range order {
		entries := groups[cat]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Title < entries[j].Title })
		fmt.Fprintf(&b, "## %s\n\n", cat)
		for _, e := range entries {
			fmt.Fprintf(&b, "- [%s](%s)\n", e.Title, e.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}
