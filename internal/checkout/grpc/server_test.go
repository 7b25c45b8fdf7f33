package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapErr(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{app.ErrEmptyCart, codes.FailedPrecondition},
		{fmt.Errorf("%w: bad id", app.ErrInvalidInput), codes.InvalidArgument},
		{fmt.Errorf("%w: s1", app.ErrSessionNotFound), codes.NotFound},
		{fmt.Errorf("%w: injected", app.ErrUnavailable), codes.Unavailable},
		{fmt.Errorf("create order: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, status.Code(mapErr(tc.err)), tc.err.Error())
	}
}

func TestValidationErrorCarriesFieldViolations(t *testing.T) {
	err := mapErr(&domain.ValidationError{Fields: map[string]string{
		"phone": "Phone number is required",
		"email": "Email is required",
	}})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	require.Len(t, st.Details(), 1)
	br, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)
	require.Len(t, br.FieldViolations, 2)
	assert.Equal(t, "email", br.FieldViolations[0].Field)
	assert.Equal(t, "Phone number is required", br.FieldViolations[1].Description)
}
