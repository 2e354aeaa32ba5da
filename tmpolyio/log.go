package tmpolyio

import "github.com/sirupsen/logrus"

// NewLogger returns a logrus logger configured for cmd/tmpoly's output:
// text formatting with full timestamps, level controlled by the caller.
func NewLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Level = level
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return log
}
