package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/client"
	httpapi "github.com/yourorg/qoz-dashboard/http"
	httpv1 "github.com/yourorg/qoz-dashboard/http/v1"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

func testFactory(t *testing.T) clientFactory {
	t.Helper()
	cat := catalog.New(catalog.MockProperties())
	zoning := search.ZoningTags(cat.All())

	r := chi.NewRouter()
	httpapi.RegisterSearch(r, httpapi.SearchDeps{Catalog: cat})
	httpapi.RegisterProperties(r, httpapi.PropertiesDeps{Catalog: cat, Zoning: zoning})
	httpv1.RegisterSessions(r, httpv1.SessionDeps{Sessions: session.NewMemoryStore(session.DefaultTTL), Catalog: cat, Zoning: zoning})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return func() *client.Client { return client.New(srv.URL, 0) }
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, SearchCmd(testFactory(t)), "--zoning", "Industrial")
	require.NoError(t, err)
	assert.Contains(t, out, "total 2  qoz eligible 2  avg price $3.4M  total acreage 16.8")
	assert.Contains(t, out, "alp-004")
	assert.NotContains(t, out, "alp-001")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	out, err := run(t, SearchCmd(testFactory(t)), "--q", "no such place")
	require.NoError(t, err)
	assert.Contains(t, out, "total 0")
	assert.Contains(t, out, "No properties match your filters")
}

func TestZoningCmd(t *testing.T) {
	out, err := run(t, ZoningCmd(testFactory(t)))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "All Zoning Types")
}

func TestMapCmd(t *testing.T) {
	out, err := run(t, MapCmd(testFactory(t)), "--width", "42", "--qoz-only")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+"+strings.Repeat("-", 40)+"+"))
	assert.Contains(t, out, "@ "+catalog.ReferencePoint)
	assert.NotContains(t, strings.SplitN(out, "@ "+catalog.ReferencePoint, 2)[0], "o")
}

func TestPatchFromFlags_OnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	addCriteriaFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--price-max", "3000000", "--qoz-only"}))

	p := patchFromFlags(cmd.Flags())
	require.NotNil(t, p.PriceMax)
	assert.Equal(t, int64(3_000_000), *p.PriceMax)
	require.NotNil(t, p.QOZOnly)
	assert.True(t, *p.QOZOnly)
	assert.Nil(t, p.SearchTerm)
	assert.Nil(t, p.Zoning)
	assert.Nil(t, p.MaxDistance)
}

func TestSessionSetCmd_RequiresAFlag(t *testing.T) {
	_, err := run(t, SessionCmd(testFactory(t)), "set", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to set")
}
