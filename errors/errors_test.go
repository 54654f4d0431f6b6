package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tts := []struct {
		name string
		err  error

		code int
		msg  string
	}{
		{
			name: "no enricher",
			err:  New("plain"),
			code: DefaultCode,
			msg:  "plain",
		},
		{
			name: "with code",
			err:  New("missing", WithCode(404)),
			code: 404,
			msg:  "missing",
		},
		{
			name: "not found helper",
			err:  New("missing", NotFound()),
			code: http.StatusNotFound,
			msg:  "missing",
		},
		{
			name: "forbidden helper",
			err:  New("nope", Forbidden()),
			code: http.StatusForbidden,
			msg:  "nope",
		},
		{
			name: "last code wins",
			err:  New("twice", BadRequest(), Forbidden()),
			code: http.StatusForbidden,
			msg:  "twice",
		},
	}

	for _, tt := range tts {
		cerr, ok := tt.err.(Error)
		if assert.True(t, ok, "%s - New should build an errors.Error", tt.name) {
			assert.Equal(t, tt.code, cerr.Code(), "%s - code", tt.name)
			assert.Equal(t, tt.msg, cerr.Message(), "%s - message", tt.name)
		}
	}
}

func TestWithCause(t *testing.T) {
	cause := errors.New("the root of it")
	err := New("wrapper", NotFound(), WithCause(cause))

	cerr, ok := err.(Error)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusNotFound, cerr.Code(), "cause should not override an explicit code")
		assert.Equal(t, "wrapper", cerr.Message())
		assert.Equal(t, fmt.Sprintf("wrapper: %v", cause), cerr.Error())
		assert.NotNil(t, cerr.Cause())
	}

	// The cause's code is forwarded when the wrapper has none.
	inner := New("inner", WithCode(400))
	outer := WithCause(inner)(errors.New("outer"))
	oerr, ok := outer.(Error)
	if assert.True(t, ok) {
		assert.Equal(t, 400, oerr.Code())
	}
}

func TestEnrichersOnNil(t *testing.T) {
	assert.Nil(t, WithCode(404)(nil))
	assert.Nil(t, WithCause(errors.New("ignored"))(nil))
}

func TestCodeHelpers(t *testing.T) {
	assert.Equal(t, DefaultCode, Code(errors.New("plain")))
	assert.Equal(t, 404, Code(New("x", NotFound())))

	assert.True(t, IsNotFound(New("x", NotFound())))
	assert.False(t, IsNotFound(New("x", Forbidden())))
	assert.False(t, IsNotFound(nil))

	assert.True(t, IsForbidden(New("x", Forbidden())))
	assert.True(t, IsBadRequest(New("x", BadRequest())))
}
