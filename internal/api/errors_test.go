package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "plain string body", body: `"something broke"`, want: "something broke"},
		{name: "detail field", body: `{"detail": "nope"}`, want: "nope"},
		{name: "message field", body: `{"message": "try again"}`, want: "try again"},
		{name: "non_field_errors", body: `{"non_field_errors": ["bad"]}`, want: "bad"},
		{name: "field error array", body: `{"email": ["required"]}`, want: "required"},
		{name: "field error string", body: `{"email": "invalid email"}`, want: "invalid email"},
		{name: "first field wins", body: `{"email": ["required"], "password": ["too short"]}`, want: "required"},
		{name: "detail beats field order", body: `{"email": ["required"], "detail": "nope"}`, want: "nope"},
		{name: "empty object", body: `{}`, want: "fallback"},
		{name: "empty body", body: ``, want: "fallback"},
		{name: "non json body", body: `<html>502</html>`, want: "<html>502</html>"},
		{name: "numeric fields only", body: `{"code": 42}`, want: `{"code": 42}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractMessage([]byte(tc.body), "fallback")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestErrorKindFromStatus(t *testing.T) {
	assert.Equal(t, KindUnauthorized, kindFromStatus(401))
	assert.Equal(t, KindValidation, kindFromStatus(400))
	assert.Equal(t, KindValidation, kindFromStatus(404))
	assert.Equal(t, KindServer, kindFromStatus(500))
	assert.Equal(t, KindServer, kindFromStatus(503))
}

func TestMessageHelper(t *testing.T) {
	apiErr := &Error{Status: 400, Kind: KindValidation, Body: []byte(`{"detail": "nope"}`)}
	assert.Equal(t, "nope", Message(apiErr, "fallback"))

	assert.Equal(t, "fallback", Message(assert.AnError, "fallback"))
}
