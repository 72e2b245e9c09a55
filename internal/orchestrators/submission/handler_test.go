package submission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/submission"
	submissionmock "github.com/coldtimes/MapFantasai/internal/orchestrators/submission/mock"
	"github.com/coldtimes/MapFantasai/internal/testutils"
	"github.com/coldtimes/MapFantasai/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockSink *submissionmock.MockSink
	handler  *submission.Handler
	ctx      context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSink = submissionmock.NewMockSink(s.ctrl)
	s.ctx = context.Background()

	handler, err := submission.New(&submission.Config{Sink: s.mockSink})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewRequiresSink() {
	_, err := submission.New(&submission.Config{})
	s.Require().Error(err)
	s.Assert().Equal([]string{"Sink"}, errors.InvalidFields(err))

	_, err = submission.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestSubmitHandsOffOnce() {
	d := builders.NewDraftBuilder().
		WithIdentity("Aria", "female", "elf", "wizard", "sage").
		Build()

	var handed *character.Finalized
	s.mockSink.EXPECT().
		Handoff(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *character.Finalized) error {
			handed = c
			return nil
		}).
		Times(1)

	finalized, err := s.handler.Submit(s.ctx, d)
	s.Require().NoError(err)
	s.Require().NotNil(handed)
	s.Assert().Same(finalized, handed)
	s.Assert().Equal(character.Finalized(d), *finalized)
	s.Assert().Equal(character.NewScore(0), finalized.Stats.Get(character.Strength))
}

func (s *HandlerTestSuite) TestSubmitRejectsMissingIdentity() {
	d := testutils.CreateTestDraftMissing(character.FieldRace, character.FieldClass)
	before := testutils.CreateTestDraftMissing(character.FieldRace, character.FieldClass)
	s.mockSink.EXPECT().Handoff(gomock.Any(), gomock.Any()).Times(0)

	finalized, err := s.handler.Submit(s.ctx, d)
	s.Require().Error(err)
	s.Assert().Nil(finalized)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal([]string{"race", "class"}, errors.InvalidFields(err))
	s.Assert().Equal(before, d)
}

func (s *HandlerTestSuite) TestMissingFieldsAreOrdered() {
	d := testutils.CreateTestDraftMissing(
		character.FieldBackground, character.FieldName, character.FieldGender,
		character.FieldClass, character.FieldRace,
	)
	s.mockSink.EXPECT().Handoff(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.handler.Submit(s.ctx, d)
	s.Assert().Equal([]string{"name", "gender", "race", "class", "background"}, errors.InvalidFields(err))
}

func (s *HandlerTestSuite) TestWhitespaceCountsAsMissing() {
	d := testutils.CreateTestDraft()
	d.Gender = " \t "
	s.mockSink.EXPECT().Handoff(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.handler.Submit(s.ctx, d)
	s.Assert().Equal([]string{"gender"}, errors.InvalidFields(err))
}

func (s *HandlerTestSuite) TestNaNAndNegativeScoresAreAccepted() {
	d := builders.NewDraftBuilder().
		WithIdentity("x", "f", "elf", "rogue", "urchin").
		WithName("Vex").
		WithStats(10, -3, 10, 10, 10, 10).
		WithNaNStat(character.Strength).
		Build()
	s.mockSink.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return(nil)

	finalized, err := s.handler.Submit(s.ctx, d)
	s.Require().NoError(err)
	s.Assert().Equal("Vex", finalized.Name)
	s.Assert().True(finalized.Stats.Get(character.Strength).IsNaN())
	s.Assert().Equal(character.NewScore(-3), finalized.Stats.Get(character.Dexterity))
}

func (s *HandlerTestSuite) TestFinalizedSharesNothingWithDraft() {
	d := testutils.CreateTestDraft()
	s.mockSink.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return(nil)

	finalized, err := s.handler.Submit(s.ctx, d)
	s.Require().NoError(err)

	finalized.Inventory[0] = "Changed"
	s.Assert().Equal("Axe", d.Inventory[0])
}

func (s *HandlerTestSuite) TestSinkErrorIsWrapped() {
	d := testutils.CreateTestDraft()
	s.mockSink.EXPECT().
		Handoff(gomock.Any(), gomock.Any()).
		Return(errors.Unavailable("downstream offline")).
		Times(1)

	finalized, err := s.handler.Submit(s.ctx, d)
	s.Require().Error(err)
	s.Assert().Nil(finalized)
	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Contains(err.Error(), "failed to hand off character")
	s.Assert().Contains(err.Error(), "downstream offline")
}

func (s *HandlerTestSuite) TestValidate() {
	s.Assert().NoError(submission.Validate(testutils.CreateTestDraft()))
	s.Assert().Len(errors.InvalidFields(submission.Validate(character.NewDraft())), 5)
}
