package helpers

import "fmt"

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type DashboardError struct {
	Message string
	Cause   error
}

func (e *DashboardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Cause
}

// Distinct error types so callers can map failures to the right failure
// domain (fundamentals vs. history vs. input) with errors.As.
type ValidationError struct{ DashboardError }
type NetworkError struct{ DashboardError }
type DataSourceError struct{ DashboardError }
type DatabaseError struct{ DashboardError }

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{DashboardError{Message: fmt.Sprintf(format, args...)}}
}

func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{DashboardError{Message: message, Cause: cause}}
}

func NewDataSourceError(message string, cause error) *DataSourceError {
	return &DataSourceError{DashboardError{Message: message, Cause: cause}}
}

func NewDatabaseError(message string, cause error) *DatabaseError {
	return &DatabaseError{DashboardError{Message: message, Cause: cause}}
}
