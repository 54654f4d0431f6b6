package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher { return WithCode(http.StatusBadRequest) }
func Forbidden() ErrorEnricher  { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher   { return WithCode(http.StatusNotFound) }

// Code extracts the code carried by err. Plain errors fall back to
// DefaultCode.
func Code(err error) int {
	if cerr, ok := err.(Error); ok {
		return cerr.Code()
	}
	return DefaultCode
}

func IsNotFound(err error) bool {
	return err != nil && Code(err) == http.StatusNotFound
}

func IsForbidden(err error) bool {
	return err != nil && Code(err) == http.StatusForbidden
}

func IsBadRequest(err error) bool {
	return err != nil && Code(err) == http.StatusBadRequest
}
