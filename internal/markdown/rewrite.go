package markdown

import "regexp"

// The rewrite rules operate on the raw document text rather than a parsed
// AST: the untouched surrounding markdown must survive byte-for-byte, and
// goldmark does not round-trip a document without reformatting it. Every
// pattern is anchored on the literal "](" so link text is never altered and
// matches cannot start inside a destination.
//
// Rule order is most-specific first. The broader single-segment rules would
// otherwise consume targets meant for the directory-qualified rules. One gap
// is deliberate: a double-parent link into a subdirectory
// ("../../dir/name.md") matches no rule and passes through unmodified; the
// lint command reports such leftovers instead of guessing a rewrite.
var (
	// ../../name.md -> name (bare, un-normalized)
	reDoubleParentFile = regexp.MustCompile(`\]\(\.\./\.\./([^/)]+)\.md\)`)
	// ../dir/name.md -> Normalize(name)
	reParentDirFile = regexp.MustCompile(`\]\(\.\./([^/.)][^/)]*)/([^/)]+)\.md\)`)
	// ./dir/name.md -> Normalize(name)
	reCurrentDirFile = regexp.MustCompile(`\]\(\./([^/.)][^/)]*)/([^/)]+)\.md\)`)
	// ../name.md -> name (bare, un-normalized)
	reParentFile = regexp.MustCompile(`\]\(\.\./([^/)]+)\.md\)`)
	// ./name.md -> name (bare, un-normalized)
	reCurrentFile = regexp.MustCompile(`\]\(\./([^/)]+)\.md\)`)
	// name.md -> Normalize(name); no leading "./", "../" or path segments
	reBareFile = regexp.MustCompile(`\]\(([^/.)][^/)]*)\.md\)`)

	reInlineLink = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
)

// Rewriter rewrites internal markdown link targets to flat wiki titles.
// Anchors, external URLs and non-markdown targets are left untouched.
type Rewriter struct {
	normalize func(string) string
}

// NewRewriter returns a Rewriter that uses normalize to derive wiki titles
// for the directory-qualified and bare-reference rules.
func NewRewriter(normalize func(string) string) *Rewriter {
	return &Rewriter{normalize: normalize}
}

// Rewrite applies the rewrite rules in priority order over the whole body
// and returns the resulting document text.
func (r *Rewriter) Rewrite(body string) string {
	body = reDoubleParentFile.ReplaceAllString(body, `](${1})`)
	body = reParentDirFile.ReplaceAllStringFunc(body, r.normalizeSecondGroup(reParentDirFile))
	body = reCurrentDirFile.ReplaceAllStringFunc(body, r.normalizeSecondGroup(reCurrentDirFile))
	body = reParentFile.ReplaceAllString(body, `](${1})`)
	body = reCurrentFile.ReplaceAllString(body, `](${1})`)
	body = reBareFile.ReplaceAllStringFunc(body, func(m string) string {
		name := reBareFile.FindStringSubmatch(m)[1]
		return "](" + r.normalize(name) + ")"
	})
	return body
}

func (r *Rewriter) normalizeSecondGroup(re *regexp.Regexp) func(string) string {
	return func(m string) string {
		name := re.FindStringSubmatch(m)[2]
		return "](" + r.normalize(name) + ")"
	}
}

// CountInlineLinks counts [text](target) occurrences in a body. Rewriting
// never adds or removes links, so the count is stable across Rewrite.
func CountInlineLinks(body string) int {
	return len(reInlineLink.FindAllString(body, -1))
}
