package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrBadRequest       = errors.New("bad request")
	ErrExtractionFailed = errors.New("document extraction failed")
	ErrEmptyExtraction  = errors.New("empty extraction response")
	ErrDispatchFailed   = errors.New("sync dispatch failed")
	ErrUnknownCategory  = errors.New("unknown document category")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error codes returned on the API surface
const (
	CodeNotFound      = "ERR_NOT_FOUND"
	CodeBadRequest    = "ERR_BAD_REQUEST"
	CodeExtraction    = "ERR_EXTRACTION"
	CodeInternalError = "ERR_INTERNAL"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrInvalidInput)
}

// ExtractionError marks a recoverable OCR failure; manual entry
// remains available to the caller.
func ExtractionError(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, CodeExtraction, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}
