// Package logger - Process-wide structured logging.
package logger

import (
	"os"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
)

// New builds the logger used across the CLI. Level comes from
// SCENETEXT_LOG_LEVEL (default info).
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("SCENETEXT_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&formatter.Formatter{
		NoColors:        false,
		HideKeys:        false,
		TimestampFormat: "15:04:05.000",
	})

	return log
}
