package pkg

import "fmt"

// FieldError is a field-level validation message (path + message).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error shape rendered by the HTTP adapters.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    []FieldError
}

// HTTPError is the JSON body returned to the browser.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches validation details and returns the same error.
func (e *AppError) WithDetails(details []FieldError) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError builds the response body. The message is duplicated under
// "error" because the browser reads either key.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Error:   e.Message,
		Details: e.Details,
	}
}
