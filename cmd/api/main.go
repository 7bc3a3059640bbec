package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/habitloop/habitloop-lambda/internal/container"
	"github.com/habitloop/habitloop-lambda/internal/router"
)

func main() {
	// Local runs read a .env file; on Lambda the environment is already
	// populated and the file simply does not exist.
	_ = godotenv.Load()

	c := container.New()
	r := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		HabitHandler:    c.HabitContainer.Handler,
		GoalHandler:     c.GoalContainer.Handler,
		InsightsHandler: c.InsightsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r.(*chi.Mux))
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
