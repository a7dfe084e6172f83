package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Development mode gets the console
// encoder, everything else the JSON production config.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
