package quiz

import (
	"net/http"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/course/{courseId}", h.GetQuizzesByCourse)
	r.Get("/{id}", h.GetQuiz)
	r.Post("/{id}/submit", h.SubmitQuiz)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(string(user.RoleProfessor), string(user.RoleAdmin)))
		r.Post("/", h.CreateQuiz)
		r.Delete("/{id}", h.DeleteQuiz)
		r.Get("/{id}/results", h.GetQuizResults)
	})

	return r
}
