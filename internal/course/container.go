package course

import "gorm.io/gorm"

type CourseContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewCourseContainer(db *gorm.DB) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CourseContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
