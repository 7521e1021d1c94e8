package v1

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/qoz-dashboard/catalog"
	httpapi "github.com/yourorg/qoz-dashboard/http"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

type SessionDeps struct {
	Sessions session.Store
	Catalog  *catalog.Catalog
	Zoning   []string
}

// SessionView is a session's state together with what the engine derives from it.
type SessionView struct {
	OK         bool               `json:"ok"`
	Session    session.State      `json:"session"`
	Count      int                `json:"count"`
	Stats      search.Stats       `json:"stats"`
	Properties []catalog.Property `json:"properties"`
	Zoning     []string           `json:"zoning"`
}

func RegisterSessions(r chi.Router, d SessionDeps) {
	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			st, err := d.Sessions.Create(req.Context())
			if err != nil {
				storeError(w, req, err)
				return
			}
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, buildView(d, st))
		})

		r.Get("/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
			st, err := d.Sessions.Get(req.Context(), chi.URLParam(req, "sessionID"))
			if err != nil {
				storeError(w, req, err)
				return
			}
			render.JSON(w, req, buildView(d, st))
		})

		r.Patch("/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
			var body session.Patch
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
				httpapi.WriteError(w, req, http.StatusBadRequest, "invalid_json", err.Error())
				return
			}
			st, err := d.Sessions.Update(req.Context(), chi.URLParam(req, "sessionID"), body)
			if err != nil {
				storeError(w, req, err)
				return
			}
			render.JSON(w, req, buildView(d, st))
		})

		r.Delete("/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
			if err := d.Sessions.Delete(req.Context(), chi.URLParam(req, "sessionID")); err != nil {
				storeError(w, req, err)
				return
			}
			render.JSON(w, req, map[string]any{"ok": true})
		})
	})
}

func buildView(d SessionDeps, st session.State) SessionView {
	res := search.Run(d.Catalog.All(), st.Criteria)
	return SessionView{
		OK:         true,
		Session:    st,
		Count:      len(res.Properties),
		Stats:      res.Stats,
		Properties: res.Properties,
		Zoning:     d.Zoning,
	}
}

func storeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		httpapi.WriteError(w, req, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, search.ErrInvalidCriteria):
		httpapi.WriteError(w, req, http.StatusBadRequest, "invalid_criteria", err.Error())
	default:
		log.Printf("[WARN] session store error: %v", err)
		httpapi.WriteError(w, req, http.StatusInternalServerError, "session_store", err.Error())
	}
}
