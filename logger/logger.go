// Package logger is the central logging point for the chip8web tools. Entries
// are tagged with the subsystem that created them and are echoed to a writer
// chosen by the command. The default is to echo nothing.
package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Permission decides whether a call to Log() or Logf() results in an entry.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is a Permission that always allows logging.
var Allow Permission = allow{}

var central = newCentral()

func newCentral() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return l
}

// SetEcho directs log entries to the writer. A nil writer silences the log.
// Entries made with Debug() are only echoed if debug is true.
func SetEcho(output io.Writer, debug bool) {
	if output == nil {
		output = io.Discard
	}
	central.SetOutput(output)
	if debug {
		central.SetLevel(logrus.DebugLevel)
	} else {
		central.SetLevel(logrus.InfoLevel)
	}
}

// Log adds an entry to the central logger
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	central.WithField("tag", tag).Info(detail)
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// Debugf adds a formatted entry that is only echoed when SetEcho() was called
// with debug set
func Debugf(tag string, format string, args ...any) {
	central.WithField("tag", tag).Debugf(format, args...)
}

// Fields adds an entry with additional structured fields
func Fields(perm Permission, tag string, fields map[string]any, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	central.WithField("tag", tag).WithFields(logrus.Fields(fields)).Info(detail)
}
