// Package errors carries the error type exchanged between the services
// and their callers. Errors hold a code following HTTP status semantics
// so the CLI, or any future transport, can map them without translation.
package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no enricher sets one. 500, internal error.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause *codedError
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// ErrorEnricher decorates an error built by New.
type ErrorEnricher func(error) error

func New(msg string, fs ...ErrorEnricher) error {
	var err error = &codedError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if cerr, ok := err.(*codedError); ok {
			cerr.code = code
			return cerr
		}

		return &codedError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	myCause, ok := cause.(*codedError)
	if !ok {
		myCause = &codedError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if cerr, ok := err.(*codedError); ok {
			cerr.cause = myCause
			return cerr
		}

		return &codedError{
			msg:   err.Error(),
			code:  myCause.code,
			cause: myCause,
		}
	}
}
