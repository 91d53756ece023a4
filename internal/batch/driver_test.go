package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.home.luguber.info/inful/wikimigrate/internal/config"
	"git.home.luguber.info/inful/wikimigrate/internal/convert"
	"git.home.luguber.info/inful/wikimigrate/internal/wiki"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupInput(t *testing.T) string {
	t.Helper()
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "technical", "api-overview.md"),
		"# API Overview\n\nSee [setup](../guides/setup.md).\n")
	writeFile(t, filepath.Join(in, "technical", "database-sql.md"),
		"Tables and [queries](api-overview.md).\n")
	writeFile(t, filepath.Join(in, "guides", "setup.md"),
		"# Setup\n\nRead the [overview](../../overview.md).\n")
	writeFile(t, filepath.Join(in, "project-status.md"), "Status notes.\n")
	writeFile(t, filepath.Join(in, "README.md"), "repo readme\n")
	writeFile(t, filepath.Join(in, "CLAUDE.md"), "agent instructions\n")
	return in
}

func TestRun_EndToEnd(t *testing.T) {
	in := setupInput(t)
	out := t.TempDir()

	d := NewDriver(config.Default())
	summary, err := d.Run(in, out)
	require.NoError(t, err)

	require.Len(t, summary.Succeeded, 4)
	require.Empty(t, summary.Failed)
	// Five configured category directories are absent from the fixture.
	require.Len(t, summary.Warnings, 5)
	require.Equal(t, OutcomeWarning, summary.Outcome)

	for _, name := range []string{"API-Overview.md", "Database-SQL.md", "Setup.md", "Project-Status.md"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
	}
	// Reserved root files are never converted.
	_, err = os.Stat(filepath.Join(out, "Readme.md"))
	require.True(t, os.IsNotExist(err))

	page, err := os.ReadFile(filepath.Join(out, "API-Overview.md"))
	require.NoError(t, err)
	require.Contains(t, string(page), "[setup](Setup)")
	require.Contains(t, string(page), "**Category**: Technical Documentation")
}

func TestRun_IndexGroupingAndOrder(t *testing.T) {
	in := setupInput(t)
	out := t.TempDir()

	d := NewDriver(config.Default())
	_, err := d.Run(in, out)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(out, "_Content-Index.md"))
	require.NoError(t, err)
	index := string(raw)

	require.Contains(t, index, "# Wiki Content Index")
	require.Contains(t, index, "**Total Files**: 4")
	// Groups appear in walk (first-seen) order.
	tech := strings.Index(index, "## Technical Documentation")
	guides := strings.Index(index, "## Development Guides")
	project := strings.Index(index, "## Project Documentation")
	require.True(t, tech >= 0 && guides > tech && project > guides)
	// Entries sorted alphabetically by title within a group.
	api := strings.Index(index, "- [API-Overview](API-Overview)")
	db := strings.Index(index, "- [Database-SQL](Database-SQL)")
	require.True(t, api >= 0 && db > api)
}

func TestRun_OneBadFileDoesNotAbort(t *testing.T) {
	in := setupInput(t)
	out := t.TempDir()
	// Dangling symlink: enumerated but unreadable.
	require.NoError(t, os.Symlink(filepath.Join(in, "nope"), filepath.Join(in, "technical", "broken.md")))

	d := NewDriver(config.Default())
	summary, err := d.Run(in, out)
	require.NoError(t, err)

	require.Len(t, summary.Failed, 1)
	require.Contains(t, summary.Failed[0].Error, "read failed")
	require.Len(t, summary.Succeeded, 4)

	index, err := os.ReadFile(filepath.Join(out, "_Content-Index.md"))
	require.NoError(t, err)
	require.Contains(t, string(index), "**Total Files**: 4")
}

func TestRun_PersistsReport(t *testing.T) {
	in := setupInput(t)
	out := t.TempDir()

	d := NewDriver(config.Default())
	summary, err := d.Run(in, out)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(out, ReportFileName))
	require.NoError(t, err)
	var loaded RunSummary
	require.NoError(t, json.Unmarshal(raw, &loaded))
	require.Equal(t, summary.RunID, loaded.RunID)
	require.Equal(t, 1, loaded.SchemaVersion)
	require.Len(t, loaded.Succeeded, 4)

	// Report can be disabled.
	out2 := t.TempDir()
	d2 := NewDriver(config.Default())
	d2.WriteReport = false
	_, err = d2.Run(in, out2)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out2, ReportFileName))
	require.True(t, os.IsNotExist(err))
}

func TestBuildIndex_TrustsWrittenHeaderOverLabel(t *testing.T) {
	// The index groups by what the persisted page says, not by the label the
	// processor was handed. Pin the two-step indirection.
	out := t.TempDir()
	h := wiki.Header{LastUpdated: "stamp", Attribution: "attr"}
	pageA := filepath.Join(out, "A.md")
	writeFile(t, pageA, wiki.Wrap("body", "A", "Written Category", h))

	d := NewDriver(config.Default())
	index := d.buildIndex([]convert.Result{{
		Success:    true,
		OutputPath: pageA,
		Title:      "A",
		Category:   "Declared Category",
	}})

	require.Contains(t, index, "## Written Category")
	require.NotContains(t, index, "Declared Category")
}

func TestCollect_WarningsAndDenylist(t *testing.T) {
	in := setupInput(t)
	cfg := config.Default()

	sources, warnings, err := Collect(cfg, in)
	require.NoError(t, err)
	require.Len(t, sources, 4)
	require.Len(t, warnings, 5)
	for _, s := range sources {
		require.NotEqual(t, "README.md", filepath.Base(s.Path))
		require.NotEqual(t, "CLAUDE.md", filepath.Base(s.Path))
	}
	// Root files carry the default category.
	last := sources[len(sources)-1]
	require.Equal(t, "Project Documentation", last.Category)
}
