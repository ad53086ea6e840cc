// Package log provides loggers for graph traversal tracing.
package log

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

var debug bool

func init() {
	var err error
	debug, err = strconv.ParseBool(os.Getenv("GRAPH_DEBUG"))
	if err != nil {
		debug = false
	}
}

// New returns a new logger writing to the provided writer. Traversal
// tracing is logged at debug level, which is enabled when the
// GRAPH_DEBUG environment variable is set to a true value.
func New(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// GetLogger returns a new logger instance writing to stderr.
func GetLogger() *logrus.Logger {
	return New(os.Stderr)
}
