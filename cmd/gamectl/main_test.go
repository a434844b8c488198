package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	mockgame "github.com/KirkDiggler/wolfbot/internal/services/game/mock"
	"github.com/KirkDiggler/wolfbot/internal/testutils"
)

type GamectlTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mockgame.MockService
	out     *bytes.Buffer
	closed  int
	paths   seed.Paths
}

func (s *GamectlTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mockgame.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}
	s.closed = 0
	s.paths = seed.Paths{Players: "players.csv", Actions: "actions.csv"}
}

func (s *GamectlTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGamectlTestSuite(t *testing.T) {
	suite.Run(t, new(GamectlTestSuite))
}

func (s *GamectlTestSuite) run(args ...string) error {
	open := func(ctx context.Context) (*session, error) {
		return &session{
			service: s.service,
			seeds:   s.paths,
			close:   func() { s.closed++ },
		}, nil
	}
	return newApp(s.out, open).Run(context.Background(), append([]string{"gamectl"}, args...))
}

func (s *GamectlTestSuite) TestInit() {
	g := testutils.CreateTestGame()
	s.service.EXPECT().
		InitializeGame(gomock.Any(), &gameService.InitializeGameInput{Paths: s.paths, Overwrite: true}).
		Return(g, nil)

	s.Require().NoError(s.run("init", "--overwrite"))
	s.Contains(s.out.String(), "Initialized game with")
	s.Equal(1, s.closed)
}

func (s *GamectlTestSuite) TestIncome() {
	s.service.EXPECT().TriggerDailyIncome(gomock.Any()).Return([]gamedomain.ResourceNotice{
		{PlayerID: "1", Resource: "food", Kind: gamedomain.NoticeExpired, Amount: 2},
		{PlayerID: "1", Resource: "gold", Kind: gamedomain.NoticeIncome, Amount: 3, Total: 8},
	}, nil)

	s.Require().NoError(s.run("income"))
	s.Equal("1: 2 food expired\n1: received 3 gold, now 8\n", s.out.String())
}

func (s *GamectlTestSuite) TestIncome_NothingChanged() {
	s.service.EXPECT().TriggerDailyIncome(gomock.Any()).Return(nil, nil)

	s.Require().NoError(s.run("income"))
	s.Equal("No resources changed\n", s.out.String())
}

func (s *GamectlTestSuite) TestReportRound() {
	s.service.EXPECT().RoundReport(gomock.Any(), 2).Return(&gameService.VoteReport{
		Kind: "Round",
		Name: "2",
		Entries: []gameService.ReportEntry{
			{Choice: "Alice", Voters: []string{"Bob", "Carol"}},
		},
	}, nil)

	s.Require().NoError(s.run("report", "round", "--number", "2"))
	s.Equal("Vote Totals for Round: 2\nAlice: 2 vote(s)\n    Voted By: Bob, Carol\n", s.out.String())
}

func (s *GamectlTestSuite) TestReportDilemma() {
	s.service.EXPECT().DilemmaReport(gomock.Any(), "Trial").Return(&gameService.VoteReport{
		Kind:    "Dilemma",
		Name:    "Trial",
		Entries: []gameService.ReportEntry{},
	}, nil)

	s.Require().NoError(s.run("report", "dilemma", "--name", "Trial"))
	s.Equal("Vote Totals for Dilemma: Trial\nNo votes yet.\n", s.out.String())
}

func (s *GamectlTestSuite) TestValidate() {
	g := gamedomain.New()
	g.IsActive = true
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	s.Require().NoError(s.run("validate"))
	s.Contains(s.out.String(), "Game is valid: 0 players, 0 parties, 0 rounds")
	s.Contains(s.out.String(), "is_active: true")
	s.Contains(s.out.String(), "voting_locked: true")
}

func (s *GamectlTestSuite) TestServiceErrorIsReturned() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(nil, errors.New("boom"))

	s.EqualError(s.run("validate"), "boom")
	s.Equal(1, s.closed)
}
