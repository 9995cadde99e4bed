package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by repositories when the store's unique index
// rejects a write. The advisory uniqueness checks in the services are racy;
// the index is the authoritative backstop, and services translate this error
// into the same ConflictError the advisory path produces.
var ErrDuplicateKey = errors.New("duplicate key")

// NotFoundError reports that a resource could not be resolved by a field value.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// ConflictError reports a business-rule violation: duplicate natural key or
// the referential deletion guard.
type ConflictError struct {
	Message string
}

func NewConflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidArgumentError reports null or semantically invalid input.
type InvalidArgumentError struct {
	Message string
}

func NewInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}
