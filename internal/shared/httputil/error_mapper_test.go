package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMapper(t *testing.T) {
	errMissing := errors.New("missing")
	errBad := errors.New("bad")
	mapper := NewErrorMapper().
		WithMapping(errMissing, http.StatusNotFound, "not found").
		WithMapping(errBad, http.StatusBadRequest, "bad input").
		WithDefault(http.StatusTeapot, "boom")

	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "nil", err: nil, status: http.StatusOK},
		{name: "direct", err: errMissing, status: http.StatusNotFound, msg: "not found"},
		{name: "wrapped", err: fmt.Errorf("load: %w", errBad), status: http.StatusBadRequest, msg: "bad input"},
		{name: "deadline", err: fmt.Errorf("x: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout, msg: "request timeout"},
		{name: "cancelled", err: context.Canceled, status: http.StatusServiceUnavailable, msg: "request cancelled"},
		{name: "default", err: errors.New("other"), status: http.StatusTeapot, msg: "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := mapper.Map(tc.err)
			if info.Status != tc.status || info.Message != tc.msg {
				t.Fatalf("Map(%v) expected %d %q got %d %q", tc.err, tc.status, tc.msg, info.Status, info.Message)
			}
		})
	}
}
