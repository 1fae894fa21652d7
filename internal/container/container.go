package container

import (
	"context"
	"log"
	"os"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/attendly-app/attendly-lambda/internal/course"
	"github.com/attendly-app/attendly-lambda/internal/quiz"
	"github.com/attendly-app/attendly-lambda/internal/settings"
	"github.com/attendly-app/attendly-lambda/internal/user"
)

type Container struct {
	UserContainer     *user.UserContainer
	CourseContainer   *course.CourseContainer
	QuizContainer     *quiz.QuizContainer
	SettingsContainer *settings.SettingsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	db, err := config.Connect(context.Background(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	return &Container{
		UserContainer:     user.NewUserContainer(db),
		CourseContainer:   course.NewCourseContainer(db),
		QuizContainer:     quiz.NewQuizContainer(db),
		SettingsContainer: settings.NewSettingsContainer(db),
	}
}
