package errors

import "fmt"

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}

// ValidationError: malformed body, time, react kind, pagination start or query.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// NotFoundError: unknown or removed id, or the caller is not a member and the
// resource is invisible to them.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Not found: %s", e.Message)
}

// PermissionError: the caller is a member but their role is insufficient.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("Permission denied: %s", e.Message)
}

// ConflictError: the operation would repeat an already-applied state change.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Conflict: %s", e.Message)
}

// AuthError: the request carries no valid identity.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("Auth error: %s", e.Message)
}
