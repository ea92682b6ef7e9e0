package utils

import (
	"io"

	"github.com/labstack/gommon/log"
)

// Logger is the diagnostic sink handed to every service.
// *log.Logger from gommon (and therefore echo's own logger)
// satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

const LogHeader = "${time_rfc3339} - ${level}"

func NewLogger(debug bool, out io.Writer) *log.Logger {
	l := log.New("missensecolor")
	l.SetHeader(LogHeader)
	l.SetOutput(out)
	if debug {
		l.SetLevel(log.DEBUG)
	} else {
		l.SetLevel(log.INFO)
	}
	return l
}
