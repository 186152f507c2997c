package errors

import (
	"fmt"
	"net/http"

	"vplmon/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same business code, so WithDetails copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Predefined error types
var (
	// Recipient validation
	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Phone number must be in international format, e.g. +14155550123",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Email address is not valid",
		"",
	)

	ErrDuplicateRecipient = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RECIPIENT",
		"Recipient is already registered",
		"",
	)

	ErrRecipientNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPIENT_NOT_FOUND",
		"Recipient is not registered",
		"",
	)

	ErrUnknownChannel = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CHANNEL",
		"Channel must be sms or email",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"Unknown log category",
		"",
	)

	ErrNoRecipients = NewBaseError(
		http.StatusBadRequest,
		"NO_RECIPIENTS",
		"No recipients configured for this channel",
		"",
	)

	ErrChannelDisabled = NewBaseError(
		http.StatusBadRequest,
		"CHANNEL_DISABLED",
		"Notifications are disabled for this channel",
		"",
	)

	// Send-SMS request validation
	ErrMissingPhones = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PHONES",
		"No phone numbers provided",
		"",
	)

	ErrMissingMessage = NewBaseError(
		http.StatusBadRequest,
		"MISSING_MESSAGE",
		"No message provided",
		"",
	)

	ErrProviderMisconfigured = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_MISCONFIGURED",
		"Twilio configuration missing",
		"",
	)

	// Transport
	ErrNotConnected = NewBaseError(
		http.StatusServiceUnavailable,
		"NOT_CONNECTED",
		"Not connected to MQTT broker",
		"",
	)

	ErrInvalidBrokerURL = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_BROKER_URL",
		"MQTT broker URL is invalid",
		"",
	)

	ErrTransportClosed = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSPORT_CLOSED",
		"MQTT session is closed",
		"",
	)

	ErrEmptyCommand = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_COMMAND",
		"Command must not be empty",
		"",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Generic
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// validationErrors are rejections of operator input; they never reach storage.
var validationErrors = []error{
	ErrInvalidPhone,
	ErrInvalidEmail,
	ErrDuplicateRecipient,
	ErrRecipientNotFound,
	ErrUnknownChannel,
	ErrUnknownCategory,
	ErrMissingPhones,
	ErrMissingMessage,
	ErrEmptyCommand,
	ErrValidationFailed,
}

// IsValidation reports whether err is an input rejection rather than an operational failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// Kind classifies operational failures.
type Kind string

const (
	KindTransport      Kind = "transport"
	KindClassification Kind = "classification"
	KindValidation     Kind = "validation"
	KindGateway        Kind = "gateway"
	KindPersistence    Kind = "persistence"
	KindUnknown        Kind = "unknown"
)

// OperationError tags a failure with its kind and the operation that produced it.
type OperationError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func newOperationError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	return errors.WithStack(&OperationError{Kind: kind, Op: op, Err: err})
}

// NewTransportError marks a broker connect, subscribe or publish failure.
func NewTransportError(op string, err error) error {
	return newOperationError(KindTransport, op, err)
}

// NewClassificationError marks a payload that could not be interpreted.
func NewClassificationError(op string, err error) error {
	return newOperationError(KindClassification, op, err)
}

// NewGatewayError marks a failed SMS or email delivery.
func NewGatewayError(op string, err error) error {
	return newOperationError(KindGateway, op, err)
}

// NewPersistenceError marks a failed load or save.
func NewPersistenceError(op string, err error) error {
	return newOperationError(KindPersistence, op, err)
}

// KindOf returns the kind of err. Input rejections report KindValidation.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if IsValidation(err) {
		return KindValidation
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}

	return KindUnknown
}
