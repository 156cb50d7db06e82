package errors

import (
	"net/http"

	"github.com/azez-alhoot/fannifix-hub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Arabic, matching the
// Arabic-first copy of the site.
var (
	// Directory lookup errors
	ErrCountryNotFound = NewBaseError(
		http.StatusNotFound,
		"COUNTRY_NOT_FOUND",
		"الدولة غير متوفرة",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"الخدمة غير موجودة",
		"",
	)

	ErrAreaNotFound = NewBaseError(
		http.StatusNotFound,
		"AREA_NOT_FOUND",
		"المنطقة غير موجودة",
		"",
	)

	ErrTechnicianNotFound = NewBaseError(
		http.StatusNotFound,
		"TECHNICIAN_NOT_FOUND",
		"الفني غير موجود",
		"",
	)

	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"الإعلان غير موجود",
		"",
	)

	ErrSeoContentNotFound = NewBaseError(
		http.StatusNotFound,
		"SEO_CONTENT_NOT_FOUND",
		"محتوى الصفحة غير متوفر",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"البيانات المدخلة غير صالحة",
		"",
	)

	// QR generation errors
	ErrQRGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_GENERATION_FAILED",
		"تعذر إنشاء رمز الاستجابة",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"حدث خطأ داخلي",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"الصفحة غير موجودة",
		"",
	)
)
