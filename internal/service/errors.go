package service

import "fmt"

// ValidationError reports malformed or out-of-range input on a single
// field. Mutations failing validation write nothing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// AuthorizationError means the acting user does not own the resource.
type AuthorizationError struct {
	Resource string
	ID       uint
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s %d: not owned by requester", e.Resource, e.ID)
}

// NotFoundError means the referenced id does not exist. Update and
// delete against a missing target fail hard rather than no-op.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: not found", e.Resource, e.ID)
}
