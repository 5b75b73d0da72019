package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger creates the application's logger based on the environment
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENVIRONMENT") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
