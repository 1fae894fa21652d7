package settings

import (
	"net/http"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(string(user.RoleProfessor), string(user.RoleAdmin)))

	r.Get("/", h.GetSettings)
	r.Put("/", h.UpdateSettings)

	return r
}
