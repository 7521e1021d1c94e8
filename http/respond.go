package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
)

// WriteError renders the {"error":code,"detail":...} body; an empty detail is omitted.
func WriteError(w http.ResponseWriter, req *http.Request, status int, code string, detail string) {
	body := map[string]any{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	render.Status(req, status)
	render.JSON(w, req, body)
}
