package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router mounts the order endpoints.
//
//	r := chi.NewRouter()
//	r.Mount("/orders", orders.Router(svc))
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Post("/", createHandler(svc))
	return r
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var o Order
		if err := json.NewDecoder(req.Body).Decode(&o); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": "invalid request body",
			})
			return
		}

		err := svc.Create(req.Context(), &o)
		switch {
		case errors.Is(err, ErrInvalidOrder):
			// The bag marshals to {path: [{message, context}]} — the shape
			// per-field error rendering depends on.
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"errors": o.Errors(),
			})
		case err != nil:
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "internal error",
			})
		default:
			writeJSON(w, http.StatusCreated, map[string]any{
				"id": o.ID,
			})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
