package client

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"

	"github.com/coldtimes/MapFantasai/internal/clients/catalog"
	catalogmock "github.com/coldtimes/MapFantasai/internal/clients/catalog/mock"
	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/handlers/form/v1alpha1"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/submission"
)

type CommandsTestSuite struct {
	suite.Suite
	addr  string
	draft string
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	submitter, err := submission.New(&submission.Config{
		Sink: submission.NewLogSink(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	s.Require().NoError(err)
	catalogClient, err := catalog.New(&catalog.Config{Lister: catalogmock.NewMockLister(gomock.NewController(s.T()))})
	s.Require().NoError(err)
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Submitter: submitter,
		Catalog:   catalogClient,
		Roller:    abilities.NewRoller(nil),
	})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	srv := grpc.NewServer()
	v1alpha1.RegisterFormServiceServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	s.T().Cleanup(srv.Stop)

	s.addr = lis.Addr().String()
	s.draft = filepath.Join(s.T().TempDir(), "draft.json")
}

func (s *CommandsTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	ClientCmd.SetOut(&out)
	ClientCmd.SetErr(&out)
	ClientCmd.SetArgs(append([]string{"--server", s.addr, "--draft", s.draft}, args...))
	err := ClientCmd.Execute()
	return out.String(), err
}

func (s *CommandsTestSuite) TestNegativeStatIsPositional() {
	_, err := s.run("new")
	s.Require().NoError(err)

	_, err = s.run("stat", "strength", "-3")
	s.Require().NoError(err)

	d, err := readDraft(s.draft)
	s.Require().NoError(err)
	s.Assert().Equal(character.NewScore(-3), d.Stats.Get(character.Strength))
}

func (s *CommandsTestSuite) TestDraftFileKeepsTypedCharacters() {
	_, err := s.run("new")
	s.Require().NoError(err)

	out, err := s.run("add", "inventory", "Sword", "&", "<Shield>")
	s.Require().NoError(err)
	s.Assert().Contains(out, `"Sword & <Shield>"`)

	data, err := os.ReadFile(s.draft)
	s.Require().NoError(err)
	s.Assert().Contains(string(data), `"Sword & <Shield>"`)

	d, err := readDraft(s.draft)
	s.Require().NoError(err)
	s.Assert().Equal(character.Tags{"Sword & <Shield>"}, d.Inventory)
}

func (s *CommandsTestSuite) TestSubmitRejectsBlankIdentity() {
	_, err := s.run("new")
	s.Require().NoError(err)
	_, err = s.run("set", "name", "Samwise", "Gamgee")
	s.Require().NoError(err)

	_, err = s.run("submit")
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "gender")
}
