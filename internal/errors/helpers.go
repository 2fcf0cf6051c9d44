package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is forwards to errors.Is so callers need only this package
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in the chain. Bare context
// cancellation and deadline errors map to their own codes; any other foreign error
// is Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	return codeOf(err)
}

// GetMeta returns the metadata of the outermost *Error, if any
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the player-facing message: the *Error message when there is
// one, the raw error text otherwise
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRetryable reports whether the same request may succeed later
func IsRetryable(err error) bool {
	return err != nil && GetCode(err).Retryable()
}

func IsNotFound(err error) bool           { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool    { return GetCode(err) == CodeInvalidArgument }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
func IsAborted(err error) bool            { return GetCode(err) == CodeAborted }
func IsInternal(err error) bool           { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool        { return GetCode(err) == CodeUnavailable }
func IsDeadlineExceeded(err error) bool   { return GetCode(err) == CodeDeadlineExceeded }
func IsDataLoss(err error) bool           { return GetCode(err) == CodeDataLoss }
func IsCanceled(err error) bool           { return GetCode(err) == CodeCanceled }
