package geoapify

import (
	log "github.com/sirupsen/logrus"
)

type logrusLogger struct{}

func (l logrusLogger) RequestError(operation string, err error) {
	log.WithFields(log.Fields{
		"operation": operation,
	}).Warn(err.Error())
}

// NewLogrusLogger returns a logger which reports failed requests as
// logrus warnings. This is what a client uses when nothing else is
// injected.
func NewLogrusLogger() Logger {
	return logrusLogger{}
}

type nopLogger struct{}

func (l nopLogger) RequestError(operation string, err error) {}

// NewNopLogger returns a logger which discards everything. Inject it
// if you inspect returned errors yourself and want no log output.
func NewNopLogger() Logger {
	return nopLogger{}
}
