package logutil

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus" //nolint:depguard
)

// StderrLog writes through logrus. Levels are filtered here, not in logrus,
// so children can have their own level while sharing one logrus.Logger.
type StderrLog struct {
	name      string
	logger    *logrus.Logger
	level     LogLevel
	debugKeys map[string]bool
}

var _ Log = NewStderrLog("")

func NewStderrLog(name string, debugKeys ...string) *StderrLog {
	sl := &StderrLog{
		name:      name,
		logger:    logrus.New(),
		level:     LogLevelWarn,
		debugKeys: map[string]bool{},
	}

	for _, k := range debugKeys {
		sl.debugKeys[k] = true
	}

	sl.logger.SetLevel(logrus.DebugLevel)
	sl.logger.Out = os.Stderr
	sl.logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true, // `INFO[0007] msg` -> `INFO msg`
	}
	return sl
}

func (sl *StderrLog) SetOutput(w io.Writer) {
	sl.logger.Out = w
}

func (sl StderrLog) prefix() string {
	if sl.name == "" {
		return ""
	}

	return fmt.Sprintf("[%s] ", sl.name)
}

func (sl StderrLog) Fatalf(format string, args ...interface{}) {
	sl.logger.Errorf("%s%s", sl.prefix(), fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (sl StderrLog) Errorf(format string, args ...interface{}) {
	if sl.level > LogLevelError {
		return
	}

	sl.logger.Errorf("%s%s", sl.prefix(), fmt.Sprintf(format, args...))
}

func (sl StderrLog) Warnf(format string, args ...interface{}) {
	if sl.level > LogLevelWarn {
		return
	}

	sl.logger.Warnf("%s%s", sl.prefix(), fmt.Sprintf(format, args...))
}

func (sl StderrLog) Infof(format string, args ...interface{}) {
	if sl.level > LogLevelInfo {
		return
	}

	sl.logger.Infof("%s%s", sl.prefix(), fmt.Sprintf(format, args...))
}

func (sl StderrLog) Debugf(key string, format string, args ...interface{}) {
	if sl.level > LogLevelDebug || !sl.debugKeys[key] {
		return
	}

	sl.logger.Debugf("%s[%s] %s", sl.prefix(), key, fmt.Sprintf(format, args...))
}

func (sl StderrLog) Child(name string) Log {
	child := sl
	if sl.name != "" {
		child.name = sl.name + "/" + name
	} else {
		child.name = name
	}

	return &child
}

func (sl *StderrLog) SetLevel(level LogLevel) {
	sl.level = level
}
