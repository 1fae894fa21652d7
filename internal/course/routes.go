package course

import (
	"net/http"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(user.RoleProfessor), string(user.RoleAdmin)))
		r.Post("/", h.Create)
		r.Get("/mine", h.ListMine)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
