package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrderNumber    = errors.New("order number is required")
	ErrOperationKindRequired = errors.New("operation kind is required")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidMonth          = errors.New("invalid month")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderClosed           = errors.New("order is closed")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrReportAlreadySent     = errors.New("report already sent for this date")
	ErrNoClosedOrders        = errors.New("no closed orders for this date")
	ErrSinkNotConfigured     = errors.New("external sink not configured")
	ErrSinkUnavailable       = errors.New("external sink unavailable")
	ErrSinkMalformed         = errors.New("external sink returned malformed data")
)

// ValidationError reports missing or invalid operator input. No state was changed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %v", e.Err)
	}
	return fmt.Sprintf("validation: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an id lookup miss.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// InvalidStateError reports a mutation the current lifecycle state forbids.
type InvalidStateError struct {
	Err error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %v", e.Err)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }

// SyncError reports a failed exchange with the external sink. Local state is
// untouched. Both the category sentinel and the cause are reachable through
// errors.Is.
type SyncError struct {
	Err   error
	Cause error
}

func (e *SyncError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("sync: %v", e.Err)
	}
	return fmt.Sprintf("sync: %v: %v", e.Err, e.Cause)
}

func (e *SyncError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func validationErr(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func notFoundErr(id string, err error) error {
	return &NotFoundError{ID: id, Err: err}
}

func invalidStateErr(err error) error {
	return &InvalidStateError{Err: err}
}

func syncErr(err, cause error) error {
	return &SyncError{Err: err, Cause: cause}
}
