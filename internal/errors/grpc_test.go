package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coldtimes/MapFantasai/internal/errors"
)

type GRPCTestSuite struct {
	suite.Suite
}

func TestGRPCSuite(t *testing.T) {
	suite.Run(t, new(GRPCTestSuite))
}

func (s *GRPCTestSuite) TestValidationErrorBecomesBadRequest() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").RequiredField("class")

	grpcErr := errors.ToGRPCError(vb.Build())
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())

	s.Require().Len(st.Details(), 1)
	badRequest, ok := st.Details()[0].(*errdetails.BadRequest)
	s.Require().True(ok)
	s.Require().Len(badRequest.GetFieldViolations(), 2)
	s.Assert().Equal("name", badRequest.GetFieldViolations()[0].GetField())
	s.Assert().Equal("class", badRequest.GetFieldViolations()[1].GetField())
}

func (s *GRPCTestSuite) TestRoundTripKeepsInvalidFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("gender").RequiredField("background")

	back := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))
	s.Assert().True(errors.IsInvalidArgument(back))
	s.Assert().Equal([]string{"gender", "background"}, errors.InvalidFields(back))
}

func (s *GRPCTestSuite) TestMetaBecomesErrorInfo() {
	err := errors.InvalidArgumentf("unknown ability %q", "strenght").WithMeta("suggestion", "strength")

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.Assert().True(errors.IsInvalidArgument(back))
	s.Assert().Equal(`unknown ability "strenght"`, errors.GetMessage(back))
	s.Assert().Equal("strength", errors.GetMeta(back)["suggestion"])
}

func (s *GRPCTestSuite) TestPassThroughAndPlainErrors() {
	s.Assert().Nil(errors.ToGRPCError(nil))
	s.Assert().Nil(errors.FromGRPCError(nil))

	existing := status.Error(codes.NotFound, "gone")
	s.Assert().Equal(existing, errors.ToGRPCError(existing))

	st, _ := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
	s.Assert().Equal(codes.Internal, st.Code())

	plain := stderrors.New("not a status")
	s.Assert().Equal(plain, errors.FromGRPCError(plain))
}
