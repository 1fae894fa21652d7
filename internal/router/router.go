package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/course"
	"github.com/attendly-app/attendly-lambda/internal/middlewares"
	"github.com/attendly-app/attendly-lambda/internal/quiz"
	"github.com/attendly-app/attendly-lambda/internal/settings"
	"github.com/attendly-app/attendly-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	CourseHandler   *course.Handler
	QuizHandler     *quiz.Handler
	SettingsHandler *settings.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/courses", course.Routes(cfg.CourseHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/professor/settings", settings.Routes(cfg.SettingsHandler))
	})

	return r
}
