package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/yourorg/qoz-dashboard/catalog"
	httpapi "github.com/yourorg/qoz-dashboard/http"
	httpv1 "github.com/yourorg/qoz-dashboard/http/v1"
	"github.com/yourorg/qoz-dashboard/internal/logger"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
)

type RouterDeps struct {
	Catalog  *catalog.Catalog
	Sessions session.Store
	// RatePerMinute caps requests per client IP; 0 disables the limit.
	RatePerMinute int
}

func BuildRouter(deps RouterDeps) http.Handler {
	zoning := search.ZoningTags(deps.Catalog.All())

	r := chi.NewRouter()
	r.Use(logger.Middleware)
	if deps.RatePerMinute > 0 {
		r.Use(httprate.LimitByIP(deps.RatePerMinute, 1*time.Minute))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { render.JSON(w, r, map[string]any{"ok": true}) })

	httpapi.RegisterDashboard(r, httpapi.DashboardDeps{Catalog: deps.Catalog, Sessions: deps.Sessions, Zoning: zoning})
	httpapi.RegisterSearch(r, httpapi.SearchDeps{Catalog: deps.Catalog})
	httpapi.RegisterProperties(r, httpapi.PropertiesDeps{Catalog: deps.Catalog, Zoning: zoning})
	httpv1.RegisterSessions(r, httpv1.SessionDeps{Sessions: deps.Sessions, Catalog: deps.Catalog, Zoning: zoning})

	return r
}
