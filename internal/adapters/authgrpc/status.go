package authgrpc

import (
	"context"
	"errors"

	apperrors "github.com/target/chat-portal/internal/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//nolint:gochecknoglobals // static lookup tables
var (
	codeToApp = map[codes.Code]apperrors.ErrorCode{
		codes.AlreadyExists:    apperrors.ErrCodeConflict,
		codes.InvalidArgument:  apperrors.ErrCodeValidation,
		codes.NotFound:         apperrors.ErrCodeNotFound,
		codes.DeadlineExceeded: apperrors.ErrCodeTimeout,
		codes.Canceled:         apperrors.ErrCodeCanceled,
		codes.Unavailable:      apperrors.ErrCodeUnavailable,
	}
	appToCode = map[apperrors.ErrorCode]codes.Code{
		apperrors.ErrCodeConflict:    codes.AlreadyExists,
		apperrors.ErrCodeValidation:  codes.InvalidArgument,
		apperrors.ErrCodeNotFound:    codes.NotFound,
		apperrors.ErrCodeTimeout:     codes.DeadlineExceeded,
		apperrors.ErrCodeCanceled:    codes.Canceled,
		apperrors.ErrCodeUnavailable: codes.Unavailable,
	}
)

// fromStatus maps a failed RPC to an AppError. The offending field travels
// in a BadRequest detail when the server named one.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "auth service timed out")
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "auth request canceled")
	}

	st, ok := status.FromError(err)
	if !ok {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "auth service unreachable")
	}

	code, known := codeToApp[st.Code()]
	if !known {
		code = apperrors.ErrCodeInternal
	}
	out := apperrors.Wrap(err, code, st.Message())
	out.Field = fieldFromDetails(st)
	return out
}

func fieldFromDetails(st *status.Status) string {
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			if v.GetField() != "" {
				return v.GetField()
			}
		}
	}
	return ""
}

// toStatus maps a service error to a gRPC status. Internal failures are
// reported without their cause.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code, known := appToCode[appErr.Code]
		if !known {
			return status.Error(codes.Internal, "internal error")
		}
		st := status.New(code, appErr.Message)
		if appErr.Field == "" {
			return st.Err()
		}
		detailed, detailErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: appErr.Field, Description: appErr.Message},
			},
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, "internal error")
}
