package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger tags every entry with the protocol it was emitted by. Debug entries
// are dropped unless flag is set.
type Logger struct {
	flag  bool
	proto string
	entry *logrus.Entry
}

func New(flag bool, proto string) *Logger {
	return NewWithLogger(logrus.StandardLogger(), flag, proto)
}

func NewWithLogger(l *logrus.Logger, flag bool, proto string) *Logger {
	if flag {
		l.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		flag:  flag,
		proto: proto,
		entry: l.WithFields(logrus.Fields{
			"protocol": proto,
		}),
	}
}

func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry.Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithField returns a logger for the same protocol carrying an extra field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		flag:  l.flag,
		proto: l.proto,
		entry: l.entry.WithField(key, value),
	}
}
