package domainerr

import "fmt"

// NotFoundError indicates the referenced entity does not exist or is inactive.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// NewNotFound creates a NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// AlreadyExistsError indicates a uniqueness conflict on an active row.
type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// NewAlreadyExists creates an AlreadyExistsError.
func NewAlreadyExists(entity, field, value string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, Field: field, Value: value}
}

// InvalidHierarchyError indicates an area violates the parent-chain rules.
type InvalidHierarchyError struct {
	Reason string
}

func (e *InvalidHierarchyError) Error() string {
	return fmt.Sprintf("invalid area hierarchy: %s", e.Reason)
}

// NewInvalidHierarchy creates an InvalidHierarchyError.
func NewInvalidHierarchy(format string, args ...interface{}) *InvalidHierarchyError {
	return &InvalidHierarchyError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError indicates a field-level validation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError.
func NewValidation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// StatusTransitionError indicates an illegal order status transition.
type StatusTransitionError struct {
	From string
	To   string
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order status from %s to %s", e.From, e.To)
}

// NewStatusTransition creates a StatusTransitionError.
func NewStatusTransition(from, to string) *StatusTransitionError {
	return &StatusTransitionError{From: from, To: to}
}

// OperationError wraps an unanticipated failure with the operation that raised
// it, so storage-layer detail never leaks to callers untagged.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperation creates an OperationError.
func NewOperation(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}
