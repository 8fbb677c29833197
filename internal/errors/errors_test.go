package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/tw-simulator/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "creature not found",
			expected: "NOT_FOUND: creature not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown slot",
			expected: "INVALID_ARGUMENT: unknown slot",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis: connection refused")
	wrapped := errors.Wrap(baseErr, "failed to read cached result")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to read cached result", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapContextErrors() {
	canceled := errors.Wrap(fmt.Errorf("read: %w", context.Canceled), "analysis stopped")
	s.Assert().Equal(errors.CodeCanceled, canceled.Code)
	s.Assert().Equal(codes.Canceled, status.Code(errors.ToGRPCError(canceled)))

	expired := errors.Wrap(context.DeadlineExceeded, "analysis stopped")
	s.Assert().Equal(errors.CodeDeadlineExceeded, expired.Code)
	s.Assert().Equal(codes.DeadlineExceeded, status.Code(errors.ToGRPCError(expired)))
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("creature not found").WithMeta("creature_id", "odein")
	wrapped := errors.Wrap(baseErr, "failed to resolve targets")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("odein", wrapped.Meta["creature_id"])
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("cache miss")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "cache unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(errors.CodeNotFound, baseErr.Code)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(errors.Is(err1, err2))
	s.Assert().False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user facing").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))

	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(stdErr))

	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFound("creature not found").
		WithMeta("creature_id", "kimaira")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("creature not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Assert().Equal("kimaira", errors.GetMeta(back)["creature_id"])
}

func (s *ErrorsTestSuite) TestGRPCValidationMeta() {
	vb := errors.NewValidationBuilder()
	vb.Field("weapon.attack", "must not be negative")

	grpcErr := errors.ToGRPCError(vb.Build())
	back := errors.FromGRPCError(grpcErr)

	s.Assert().True(errors.IsInvalidArgument(back))
	fields, ok := errors.GetMeta(back)["validation_errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Assert().Equal([]interface{}{"must not be negative"}, fields["weapon.attack"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassthrough() {
	s.Assert().Nil(errors.ToGRPCError(nil))

	already := status.Error(codes.Unavailable, "down")
	s.Assert().Equal(already, errors.ToGRPCError(already))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeUnimplemented, codes.Unimplemented},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
