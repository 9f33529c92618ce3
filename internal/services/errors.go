package services

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrInvalidInput         ErrorCode = "INVALID_INPUT"
	ErrUserNotFound         ErrorCode = "USER_NOT_FOUND"
	ErrEventNotFound        ErrorCode = "EVENT_NOT_FOUND"
	ErrTicketTypeNotFound   ErrorCode = "TICKET_TYPE_NOT_FOUND"
	ErrTicketNotFound       ErrorCode = "TICKET_NOT_FOUND"
	ErrNotTicketOwner       ErrorCode = "NOT_TICKET_OWNER"
	ErrInsufficientCapacity ErrorCode = "INSUFFICIENT_CAPACITY"
	ErrCodeMismatch         ErrorCode = "CODE_MISMATCH"
	ErrTicketNotActive      ErrorCode = "TICKET_NOT_ACTIVE"
	ErrStoreError           ErrorCode = "STORE_ERROR"
)

// ServiceError is the outcome of a failed business operation. The message is
// safe to surface to the end user; the code lets handlers pick a status.
type ServiceError struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
	Details error     `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Message, e.Code, e.Details)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

func (e *ServiceError) Unwrap() error {
	return e.Details
}

func NewServiceError(message string, code ErrorCode, details error) *ServiceError {
	return &ServiceError{
		Message: message,
		Code:    code,
		Details: details,
	}
}

// CodeOf returns the error's code, or empty for non-service errors.
func CodeOf(err error) ErrorCode {
	var serr *ServiceError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ""
}

// IsCode reports whether err is a ServiceError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
