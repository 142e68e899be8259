// Package errors provides coded errors for the backtest engine and the optimizer.
//
// Codes are grouped by hundreds, see Category. Strategies receive funds, lookup and
// price errors as return values; construction errors (validation, data, backtest) never
// yield a partial engine.
//
//	if errors.HasCode(err, errors.ErrCodeInsufficientFunds) {
//		return nil // skip the trade
//	}
package errors

import (
	"errors"
	"fmt"
)

// Error is an error carrying an ErrorCode and an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func New(code ErrorCode, message string) *Error {
	return Wrap(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to cause. cause may be nil.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}

	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is and As forward to the standard library so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain, ErrCodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	return ErrCodeUnknown
}

func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// HasCategory reports whether the outermost code of err belongs to category.
func HasCategory(err error, category Category) bool {
	return GetCode(err).Category() == category
}

// InsufficientDataError reports a metric that needs more samples than were available,
// e.g. a Sharpe ratio over fewer than two trades.
type InsufficientDataError struct {
	Required int
	Actual   int
	// Metric is the name of the metric being computed.
	Metric  string
	Message string
}

func NewInsufficientDataError(required, actual int, metric, message string) *InsufficientDataError {
	return &InsufficientDataError{Required: required, Actual: actual, Metric: metric, Message: message}
}

func NewInsufficientDataErrorf(required, actual int, metric, format string, args ...any) *InsufficientDataError {
	return NewInsufficientDataError(required, actual, metric, fmt.Sprintf(format, args...))
}

func (e *InsufficientDataError) Error() string {
	return e.Message
}

func IsInsufficientDataError(err error) bool {
	var insufficient *InsufficientDataError

	return errors.As(err, &insufficient)
}
