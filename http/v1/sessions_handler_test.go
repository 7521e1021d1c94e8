package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

type viewBody struct {
	SessionView
	Error string `json:"error"`
}

func newRouter(store session.Store) chi.Router {
	cat := catalog.New(catalog.MockProperties())
	r := chi.NewRouter()
	RegisterSessions(r, SessionDeps{Sessions: store, Catalog: cat, Zoning: search.ZoningTags(cat.All())})
	return r
}

func call(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, viewBody) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var v viewBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return rec, v
}

func TestSessions_Lifecycle(t *testing.T) {
	r := newRouter(session.NewMemoryStore(session.DefaultTTL))

	rec, created := call(t, r, http.MethodPost, "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, created.Session.ID)
	assert.Equal(t, search.DefaultCriteria(), created.Session.Criteria)
	assert.Equal(t, len(catalog.MockProperties()), created.Count)
	assert.Equal(t, search.AllZoning, created.Zoning[0])

	path := "/v1/sessions/" + created.Session.ID
	rec, patched := call(t, r, http.MethodPatch, path, `{"zoning":"Industrial","show_filters":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Industrial", patched.Session.Criteria.Zoning)
	assert.True(t, patched.Session.ShowFilters)
	assert.Equal(t, 2, patched.Count)
	assert.InDelta(t, 16.8, patched.Stats.TotalAcreage, 1e-9)
	// zoning options stay the full catalog list
	assert.Equal(t, created.Zoning, patched.Zoning)

	rec, got := call(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, patched.Session.Criteria, got.Session.Criteria)

	rec, _ = call(t, r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, missing := call(t, r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", missing.Error)
}

func TestSessions_PatchErrors(t *testing.T) {
	r := newRouter(session.NewMemoryStore(session.DefaultTTL))
	_, created := call(t, r, http.MethodPost, "/v1/sessions", "")
	path := "/v1/sessions/" + created.Session.ID

	rec, body := call(t, r, http.MethodPatch, path, `{"price_max":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", body.Error)

	rec, body = call(t, r, http.MethodPatch, "/v1/sessions/nope", `{"qoz_only":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body.Error)

	rec, body = call(t, r, http.MethodDelete, "/v1/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body.Error)
}

type failingStore struct{ session.Store }

var errDown = errors.New("store down")

func (failingStore) Create(context.Context) (session.State, error) { return session.State{}, errDown }

func (failingStore) Update(context.Context, string, session.Patch) (session.State, error) {
	return session.State{}, search.ErrInvalidCriteria
}

func TestSessions_StoreErrors(t *testing.T) {
	r := newRouter(failingStore{})

	rec, body := call(t, r, http.MethodPost, "/v1/sessions", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "session_store", body.Error)

	rec, body = call(t, r, http.MethodPatch, "/v1/sessions/x", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_criteria", body.Error)
}
