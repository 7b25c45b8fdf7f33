package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusFromGRPC(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"InvalidArgument -> 400", status.Error(codes.InvalidArgument, "bad"), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"NotFound -> 404", status.Error(codes.NotFound, "missing"), http.StatusNotFound, "NOT_FOUND"},
		{"FailedPrecondition -> 409", status.Error(codes.FailedPrecondition, "cart is empty"), http.StatusConflict, "FAILED_PRECONDITION"},
		{"Aborted -> 409", status.Error(codes.Aborted, "superseded"), http.StatusConflict, "ABORTED"},
		{"Unavailable -> 503", status.Error(codes.Unavailable, "down"), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"DeadlineExceeded -> 503", status.Error(codes.DeadlineExceeded, "timeout"), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"Internal -> 500", status.Error(codes.Internal, "secret detail"), http.StatusInternalServerError, "INTERNAL"},
		{"non-grpc error -> 500", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, gotCode, _ := httpStatusFromGRPC(tc.err)
			assert.Equal(t, tc.wantStatus, gotStatus)
			assert.Equal(t, tc.wantCode, gotCode)
		})
	}
}

func TestInternalMessageIsHidden(t *testing.T) {
	_, _, msg := httpStatusFromGRPC(status.Error(codes.Internal, "pq: relation orders does not exist"))
	assert.Equal(t, "internal error", msg)
}

func TestFieldViolations(t *testing.T) {
	st, err := status.New(codes.InvalidArgument, "please fill in all required fields").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "email", Description: "Email is required"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"email": "Email is required"}, fieldViolations(st.Err()))
	assert.Nil(t, fieldViolations(errors.New("plain")))
}
