package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"innkeep/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
