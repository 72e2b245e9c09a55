package catalog_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/coldtimes/MapFantasai/internal/clients/catalog"
	catalogmock "github.com/coldtimes/MapFantasai/internal/clients/catalog/mock"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLister *catalogmock.MockLister
	client     *catalog.Client
	ctx        context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLister = catalogmock.NewMockLister(s.ctrl)
	s.ctx = context.Background()

	client, err := catalog.New(&catalog.Config{Lister: s.mockLister})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ClientTestSuite) TestRacesSortedByName() {
	s.mockLister.EXPECT().ListRaces().Return([]*entities.ReferenceItem{
		{Key: "human", Name: "Human"},
		{Key: "dwarf", Name: "Dwarf"},
		nil,
		{Key: "", Name: "Broken"},
	}, nil)

	options, err := s.client.ListOptions(s.ctx, character.FieldRace)
	s.Require().NoError(err)
	s.Assert().Equal([]catalog.Option{
		{Key: "dwarf", Name: "Dwarf"},
		{Key: "human", Name: "Human"},
	}, options)
}

func (s *ClientTestSuite) TestClasses() {
	s.mockLister.EXPECT().ListClasses().Return([]*entities.ReferenceItem{
		{Key: "wizard", Name: "Wizard"},
	}, nil)

	options, err := s.client.ListOptions(s.ctx, character.FieldClass)
	s.Require().NoError(err)
	s.Assert().Equal([]catalog.Option{{Key: "wizard", Name: "Wizard"}}, options)
}

func (s *ClientTestSuite) TestFieldsWithoutCatalog() {
	for _, f := range []character.IdentityField{character.FieldName, character.FieldGender, character.FieldBackground} {
		s.Run(f.String(), func() {
			options, err := s.client.ListOptions(s.ctx, f)
			s.Require().NoError(err)
			s.Assert().NotNil(options)
			s.Assert().Empty(options)
		})
	}
}

func (s *ClientTestSuite) TestUpstreamFailure() {
	s.mockLister.EXPECT().ListRaces().Return(nil, stderrors.New("502 bad gateway"))

	_, err := s.client.ListOptions(s.ctx, character.FieldRace)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.ListOptions(ctx, character.FieldRace)
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *ClientTestSuite) TestConfigDefaults() {
	cfg := &catalog.Config{}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(catalog.DefaultBaseURL, cfg.BaseURL)

	_, err := catalog.New(&catalog.Config{CacheTTL: -1})
	s.Assert().True(errors.IsInvalidArgument(err))
}
