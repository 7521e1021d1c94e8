package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

type SearchDeps struct {
	Catalog *catalog.Catalog
}

// SearchRequest uses the same optional fields as a session patch; unset
// fields fall back to search.DefaultCriteria.
type SearchRequest = session.Patch

func RegisterSearch(r chi.Router, d SearchDeps) {
	// POST: JSON body
	r.Post("/search", func(w http.ResponseWriter, req *http.Request) {
		var body SearchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, req, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		handleSearchRequest(w, req, d, body)
	})

	// GET: query params
	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		body, err := ParsePatch(req.URL.Query())
		if err != nil {
			WriteError(w, req, http.StatusBadRequest, "invalid_criteria", err.Error())
			return
		}
		handleSearchRequest(w, req, d, body)
	})
}

func handleSearchRequest(w http.ResponseWriter, req *http.Request, d SearchDeps, body SearchRequest) {
	c := body.Criteria(search.DefaultCriteria())
	if err := c.Validate(); err != nil {
		WriteError(w, req, http.StatusBadRequest, "invalid_criteria", err.Error())
		return
	}
	res := search.Run(d.Catalog.All(), c)
	render.JSON(w, req, map[string]any{
		"ok":         true,
		"count":      len(res.Properties),
		"criteria":   c,
		"stats":      res.Stats,
		"properties": res.Properties,
	})
}
