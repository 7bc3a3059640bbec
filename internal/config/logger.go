package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger. JSON output in deployed
// environments, text locally (LOG_FORMAT=text), level from LOG_LEVEL.
func Init() {
	if os.Getenv("LOG_FORMAT") == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// WithContext returns a log entry carrying the chi request id, so every
// log line emitted while serving a request can be correlated.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.WithContext(ctx)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
