package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Print(...interface{})
	Printf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

type logger struct {
	*logrus.Entry
}

// New returns a logger configured for env: JSON at info level for prod,
// plain text at debug level otherwise.
func New(env string) Logger {
	l := logrus.New()

	if env == "prod" {
		l.Formatter = &logrus.JSONFormatter{}
		l.Level = logrus.InfoLevel
	} else {
		l.Formatter = &logrus.TextFormatter{}
		l.Level = logrus.DebugLevel
	}

	return logger{l.WithField("env", env)}
}

func (l logger) Debug(args ...interface{}) {
	l.Entry.Debugln(args...)
}

func (l logger) Print(args ...interface{}) {
	l.Entry.Println(args...)
}

func (l logger) Error(args ...interface{}) {
	l.Entry.Errorln(args...)
}

func (l logger) Fatal(args ...interface{}) {
	l.Entry.Fatalln(args...)
}
