package gormdb

import (
	"fmt"
	"strings"
	"time"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
)

const debugKeySQL = "sql"

// Logger adapts gorm's Print(values...) protocol to logutil.Log.
type Logger struct {
	log logutil.Log
}

func NewLogger(log logutil.Log) Logger {
	return Logger{log: log}
}

func (l Logger) Print(values ...interface{}) {
	if len(values) < 2 {
		return
	}

	level, _ := values[0].(string)
	if level != "sql" || len(values) < 4 {
		l.log.Warnf("gorm: %s", strings.TrimSpace(fmt.Sprint(values[2:]...)))
		return
	}

	var took time.Duration
	if d, ok := values[2].(time.Duration); ok {
		took = d
	}
	l.log.Debugf(debugKeySQL, "%s %v (%s)", values[3], values[4:], took)
}
