package user

import (
	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(RoleAdmin)))
		r.Post("/", h.Register)
	})

	return r
}
