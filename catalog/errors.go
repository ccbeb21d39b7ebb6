package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired    = errors.New("catalog: title is required")
	ErrSlugInvalid      = errors.New("catalog: slug contains invalid characters")
	ErrUnknownLocale    = errors.New("catalog: unknown locale")
	ErrDuplicateLocale  = errors.New("catalog: duplicate locale provided")
	ErrEntityIDRequired = errors.New("catalog: entity id required")
	ErrParentRequired   = errors.New("catalog: parent practice area required")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
