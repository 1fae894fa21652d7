package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/attendly-app/attendly-lambda/internal/container"
	"github.com/attendly-app/attendly-lambda/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		CourseHandler:   c.CourseContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		SettingsHandler: c.SettingsContainer.Handler,
	})

	// On Lambda the chi router is served through the API Gateway proxy;
	// anywhere else fall back to a plain HTTP listener.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
