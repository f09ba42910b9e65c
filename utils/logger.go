package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. Access logs are written by fiber's logger middleware.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogLevel applies LOG_LEVEL; unknown levels keep the current one.
func SetLogLevel(level string) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithError(err).Warn("unknown log level, keeping default")
		return
	}
	Log.SetLevel(lvl)
}
