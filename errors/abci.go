package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a response that carries no error.
	SuccessABCICode = 0

	// Errors without a registered code end up here. Their message may
	// leak internals, so outside of debug mode it is replaced.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo converts an error into the code and log of an ABCI response.
// Debug mode logs the full error including the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := Code(err)
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	return code, Redact(err, false).Error()
}

// Code returns the ABCI code of the first registered error found while
// unwrapping err. Unregistered errors have the internal code.
func Code(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(interface{ ABCICode() uint32 }); ok {
			return c.ABCICode()
		}
		cause, ok := err.(causer)
		if !ok || isNilErr(cause.Cause()) {
			return internalABCICode
		}
		err = cause.Cause()
	}
}

// isNilErr also catches typed nil pointers stored in the error interface.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Redact hides errors that are not registered, and recovered panics, behind
// a generic message. Debug mode returns err unchanged.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	if ErrPanic.Is(err) || Code(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
