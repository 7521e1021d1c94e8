package httpapi

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
	"github.com/yourorg/qoz-dashboard/internal/view"
)

type DashboardDeps struct {
	Catalog  *catalog.Catalog
	Sessions session.Store
	Zoning   []string
}

// RegisterDashboard mounts the server-rendered dashboard. Every visit to "/"
// starts a fresh session with default filters.
func RegisterDashboard(r chi.Router, d DashboardDeps) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		st, err := d.Sessions.Create(req.Context())
		if err != nil {
			log.Printf("[WARN] dashboard session create failed: %v", err)
			http.Error(w, "session store unavailable", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, req, "/s/"+st.ID, http.StatusSeeOther)
	})

	r.Get("/s/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
		st, err := d.Sessions.Get(req.Context(), chi.URLParam(req, "sessionID"))
		if errors.Is(err, session.ErrNotFound) {
			http.Redirect(w, req, "/", http.StatusSeeOther)
			return
		}
		if err != nil {
			log.Printf("[WARN] dashboard session lookup failed: %v", err)
			http.Error(w, "session store unavailable", http.StatusInternalServerError)
			return
		}
		renderDashboard(w, d, st)
	})

	r.Post("/s/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "sessionID")
		if err := req.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch, err := ParsePatch(req.PostForm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// unchecked checkboxes are not submitted
		if req.PostForm.Has("filters_panel") && patch.QOZOnly == nil {
			off := false
			patch.QOZOnly = &off
		}
		patch.ToggleFilters = req.PostForm.Has("toggle_filters")
		_, err = d.Sessions.Update(req.Context(), id, patch)
		switch {
		case errors.Is(err, session.ErrNotFound):
			http.Redirect(w, req, "/", http.StatusSeeOther)
			return
		case errors.Is(err, search.ErrInvalidCriteria):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			log.Printf("[WARN] dashboard session update failed: %v", err)
			http.Error(w, "session store unavailable", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, req, "/s/"+id, http.StatusSeeOther)
	})
}

func renderDashboard(w http.ResponseWriter, d DashboardDeps, st session.State) {
	res := search.Run(d.Catalog.All(), st.Criteria)
	page := view.New(st.ID, st.Criteria, st.ShowFilters, res, d.Zoning)
	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		log.Printf("[WARN] dashboard render failed: %v", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
