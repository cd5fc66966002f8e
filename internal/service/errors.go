package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError lists the form fields that were missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Has reports whether field failed validation. A nil error has no fields.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// StorageError wraps a persistence failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DeliveryError reports that a stored contact message could not be emailed.
type DeliveryError struct {
	MessageID uint
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver contact message %d: %v", e.MessageID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// requireFields returns a ValidationError naming every blank value, in order.
func requireFields(fields [][2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
