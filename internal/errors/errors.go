package errors

import "fmt"

// Error is the structured error type for loadsheet's CLI boundary.
type Error struct {
	// Code is the unique error code (e.g. "ERR_101_PRESET_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from the code's numeric block.
	Category Category

	// Cause is the underlying error, when any.
	Cause error

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code, enabling errors.Is across wrap layers.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithSuggestion attaches an actionable hint and returns the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// New creates an Error with the given code and message.
func New(code, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code string, cause error, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), cause)
}

// Wrap creates an Error from an existing error, reusing its message.
func Wrap(code string, err error) *Error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// Display renders the error for the terminal, suggestion included.
func Display(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Suggestion == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\n   hint: %s", e.Message, e.Suggestion)
}
