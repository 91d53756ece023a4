package markdown

import (
	"testing"

	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
	"github.com/stretchr/testify/require"
)

func newTestRewriter() *Rewriter {
	return NewRewriter(wikititle.New(nil).Normalize)
}

func TestRewrite_DoubleParentFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[x](overview)", r.Rewrite("[x](../../overview.md)"))
}

func TestRewrite_ParentDirFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[x](API-Overview)", r.Rewrite("[x](../technical/api-overview.md)"))
}

func TestRewrite_CurrentDirFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[see](Setup)", r.Rewrite("[see](./guides/setup.md)"))
}

func TestRewrite_ParentFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[x](notes)", r.Rewrite("[x](../notes.md)"))
}

func TestRewrite_CurrentFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[x](readme)", r.Rewrite("[x](./readme.md)"))
}

func TestRewrite_BareFile(t *testing.T) {
	r := newTestRewriter()
	require.Equal(t, "[y](Notes)", r.Rewrite("[y](notes.md)"))
	require.Equal(t, "[y](Business-Plan)", r.Rewrite("[y](business-plan.md)"))
}

func TestRewrite_LeavesExternalAndAnchorsAlone(t *testing.T) {
	r := newTestRewriter()
	for _, body := range []string{
		"[site](https://example.com/page.md)",
		"[anchor](#section)",
		"[img](./assets/diagram.png)",
		"[txt](./notes.txt)",
	} {
		require.Equal(t, body, r.Rewrite(body))
	}
}

func TestRewrite_DoubleParentIntoDirFallsThrough(t *testing.T) {
	// Known gap: no rule matches a double-parent link into a subdirectory.
	r := newTestRewriter()
	body := "[x](../../technical/api.md)"
	require.Equal(t, body, r.Rewrite(body))
}

func TestRewrite_LinkTextNeverAltered(t *testing.T) {
	r := newTestRewriter()
	got := r.Rewrite("[read the setup.md guide](./guides/setup.md)")
	require.Equal(t, "[read the setup.md guide](Setup)", got)
}

func TestRewrite_MixedDocument(t *testing.T) {
	r := newTestRewriter()
	in := "Intro [a](./guides/setup.md) and [b](../plan.md).\n" +
		"Also [c](faq.md), external [d](https://example.com) and [e](#top).\n"
	want := "Intro [a](Setup) and [b](plan).\n" +
		"Also [c](Faq), external [d](https://example.com) and [e](#top).\n"
	require.Equal(t, want, r.Rewrite(in))
}

func TestRewrite_LinkCountInvariant(t *testing.T) {
	r := newTestRewriter()
	bodies := []string{
		"[a](./x.md) [b](../y.md) [c](../../z.md)",
		"[a](./d/x.md) text [b](bare.md)",
		"no links at all",
		"[only external](https://example.com/x.md)",
	}
	for _, body := range bodies {
		require.Equal(t, CountInlineLinks(body), CountInlineLinks(r.Rewrite(body)))
	}
}

func TestCountInlineLinks(t *testing.T) {
	require.Equal(t, 0, CountInlineLinks("nothing here"))
	require.Equal(t, 2, CountInlineLinks("[a](x) and [b](y.md)"))
	require.Equal(t, 1, CountInlineLinks("![img](pic.png)"))
}
