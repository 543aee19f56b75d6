package logging

import (
	"github.com/sirupsen/logrus"
)

// New builds the process logger. The handle is constructed once in main and
// passed to every component that logs.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}
