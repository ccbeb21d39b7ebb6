package logging

import (
	"maps"

	"github.com/advokati/go-directory/pkg/interfaces"
)

// WithFields returns a logger with the fields attached when the
// implementation supports the optional FieldsLogger extension; otherwise the
// logger is returned unchanged. The map is copied so callers can reuse it.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return fieldsLogger.WithFields(maps.Clone(fields))
}
