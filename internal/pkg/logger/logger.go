// Package logger adapts hashicorp/go-hclog to the ports.Logger interface.
package logger

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// HCLogger routes structured log lines through go-hclog.
type HCLogger struct {
	inner hclog.Logger
}

// New builds an HCLogger writing to stderr. Debug output is only emitted when
// verbose is set.
func New(verbose bool) *HCLogger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return &HCLogger{inner: hclog.New(&hclog.LoggerOptions{
		Name:   "mkwineprefix",
		Level:  level,
		Output: os.Stderr,
	})}
}

func (l *HCLogger) Debug(msg string, fields map[string]interface{}) {
	l.inner.Debug(msg, flatten(fields)...)
}

func (l *HCLogger) Info(msg string, fields map[string]interface{}) {
	l.inner.Info(msg, flatten(fields)...)
}

func (l *HCLogger) Warn(msg string, fields map[string]interface{}) {
	l.inner.Warn(msg, flatten(fields)...)
}

func (l *HCLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := flatten(fields)
	if err != nil {
		args = append(args, "error", err)
	}
	l.inner.Error(msg, args...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

var _ ports.Logger = (*HCLogger)(nil)
