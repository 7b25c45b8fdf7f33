package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// httpStatusFromGRPC maps a storefront error to an HTTP status, a stable error
// code and a client-safe message.
func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.FailedPrecondition:
		return http.StatusConflict, "FAILED_PRECONDITION", st.Message()
	case codes.Aborted:
		return http.StatusConflict, "ABORTED", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	case codes.Canceled:
		return http.StatusRequestTimeout, "CANCELLED", st.Message()
	case codes.Unimplemented:
		return http.StatusNotImplemented, "UNIMPLEMENTED", st.Message()
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}

func fieldViolations(err error) map[string]string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}

	var fields map[string]string
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[v.GetField()] = v.GetDescription()
		}
	}
	return fields
}

func writeError(c echo.Context, err error) error {
	httpStatus, code, msg := httpStatusFromGRPC(err)
	return c.JSON(httpStatus, errorBody{Error: errorDetail{
		Code:    code,
		Message: msg,
		Fields:  fieldViolations(err),
	}})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorBody{Error: errorDetail{Code: "INVALID_ARGUMENT", Message: msg}})
}
