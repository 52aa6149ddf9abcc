// Package logx builds pion/logging factories from configuration strings.
package logx

import (
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"
)

// ParseLevel maps a level name to a logging.LogLevel. The empty string is
// treated as "info".
func ParseLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "", "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("logx: unknown log level %q", s)
	}
}

// NewFactory returns a factory writing to w at the given level.
func NewFactory(level string, w io.Writer) (*logging.DefaultLoggerFactory, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f := logging.NewDefaultLoggerFactory()
	f.DefaultLogLevel = lvl
	f.Writer = w
	return f, nil
}

// Discard returns a logger that drops everything.
func Discard(scope string) logging.LeveledLogger {
	return logging.NewDefaultLeveledLoggerForScope(scope, logging.LogLevelDisabled, io.Discard)
}
