package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/langassess/internal/container"
)

// Serves the API behind API Gateway HTTP API (payload v2). Attempts live in the
// container's memory, so a warm instance keeps them only while it stays alive.
func main() {
	c := container.New()
	adapter := httpadapter.NewV2(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
