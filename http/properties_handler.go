package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/qoz-dashboard/catalog"
)

type PropertiesDeps struct {
	Catalog *catalog.Catalog
	// Zoning is the catalog's tag list, computed once at startup.
	Zoning []string
}

func RegisterProperties(r chi.Router, d PropertiesDeps) {
	r.Get("/properties", func(w http.ResponseWriter, req *http.Request) {
		props := d.Catalog.All()
		render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "properties": props})
	})

	r.Get("/properties/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "propertyID")
		p, ok := d.Catalog.Get(id)
		if !ok {
			WriteError(w, req, http.StatusNotFound, "not_found", "no property with id "+id)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "property": p})
	})

	r.Get("/zoning", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"ok": true, "zoning": d.Zoning})
	})
}
