package game_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/repositories/games"
	mockgames "github.com/KirkDiggler/wolfbot/internal/repositories/games/mock"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/KirkDiggler/wolfbot/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const loadedVersion = games.Version("v1")

type ServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	repo         *mockgames.MockRepository
	timeProvider *mockgames.MockTimeProvider
	svc          gameService.Service
	stored       *gamedomain.Game
	saved        *gamedomain.Game
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = mockgames.NewMockRepository(s.mockCtrl)
	s.timeProvider = mockgames.NewMockTimeProvider(s.mockCtrl)
	s.timeProvider.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()
	s.svc = gameService.NewService(&gameService.ServiceConfig{
		Repository:   s.repo,
		TimeProvider: s.timeProvider,
	})
	s.stored = testutils.CreateTestGame()
	s.saved = nil
}

func (s *ServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// expectLoad serves the stored game once
func (s *ServiceTestSuite) expectLoad() {
	s.repo.EXPECT().Load(gomock.Any()).Return(s.stored, loadedVersion, nil)
}

// expectSave captures the saved game, requiring the loaded version
func (s *ServiceTestSuite) expectSave() {
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any(), loadedVersion).
		DoAndReturn(func(_ context.Context, g *gamedomain.Game, _ games.Version) (games.Version, error) {
			s.saved = g
			return "v2", nil
		})
}

func (s *ServiceTestSuite) TestNewService_RequiresRepository() {
	s.Panics(func() {
		gameService.NewService(&gameService.ServiceConfig{})
	})
}

func (s *ServiceTestSuite) TestSetFlag() {
	s.expectLoad()
	s.expectSave()

	locked := true
	value, err := s.svc.SetFlag(s.ctx, gamedomain.FlagVotingLocked, &locked)

	s.Require().NoError(err)
	s.True(value)
	s.True(s.saved.VotingLocked)
}

func (s *ServiceTestSuite) TestSetFlag_Toggle() {
	s.expectLoad()
	s.expectSave()

	value, err := s.svc.SetFlag(s.ctx, gamedomain.FlagActive, nil)

	s.Require().NoError(err)
	s.False(value)
	s.False(s.saved.IsActive)
}

func (s *ServiceTestSuite) TestSetFlag_UnknownFlag() {
	s.expectLoad()

	_, err := s.svc.SetFlag(s.ctx, gamedomain.Flag("bogus"), nil)

	s.Error(err)
}

func (s *ServiceTestSuite) TestLoadFailure() {
	s.repo.EXPECT().Load(gomock.Any()).Return(nil, games.NoVersion, apperr.Persistence(errors.New("disk"), "failed to read game file"))

	err := s.svc.KillPlayer(s.ctx, "1", true)

	s.Require().Error(err)
	s.True(apperr.IsPersistence(err))
}

func (s *ServiceTestSuite) TestSaveConflict() {
	s.expectLoad()
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any(), loadedVersion).
		Return(games.NoVersion, apperr.ConcurrentModificationf("game file changed since it was loaded"))

	err := s.svc.KillPlayer(s.ctx, "1", true)

	s.Require().Error(err)
	s.True(apperr.IsConcurrentModification(err))
}

func (s *ServiceTestSuite) TestKillPlayer() {
	s.expectLoad()
	s.expectSave()

	s.Require().NoError(s.svc.KillPlayer(s.ctx, "2", true))
	s.True(s.saved.GetPlayer("2").IsDead)
}

func (s *ServiceTestSuite) TestKillPlayer_UnknownSavesNothing() {
	s.expectLoad()

	err := s.svc.KillPlayer(s.ctx, "99", true)

	s.True(apperr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestAddPlayer_Duplicate() {
	s.expectLoad()

	err := s.svc.AddPlayer(s.ctx, gamedomain.NewPlayer("1", "Again", ""))

	s.True(apperr.IsAlreadyExists(err))
}

func (s *ServiceTestSuite) TestJoinAndLeaveParty() {
	s.expectLoad()
	s.expectSave()

	change, err := s.svc.JoinParty(s.ctx, "1", "900")
	s.Require().NoError(err)
	s.Equal("Wolves", change.Joined)
	s.Empty(change.Left)
	s.True(s.saved.GetParty("900").HasPlayer("1"))

	s.stored = s.saved
	s.expectLoad()
	s.expectSave()

	change, err = s.svc.LeaveParty(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Wolves", change.Left)
	s.Nil(s.saved.PlayerParty("1"))
}

func (s *ServiceTestSuite) TestJoinParty_LockedSavesNothing() {
	s.stored.PartiesLocked = true
	s.expectLoad()

	_, err := s.svc.JoinParty(s.ctx, "1", "900")

	s.True(apperr.IsInvalidTransition(err))
}

func (s *ServiceTestSuite) TestAddPartyPlayer_IgnoresLocks() {
	s.stored.PartiesLocked = true
	s.stored.IsActive = false
	s.expectLoad()
	s.expectSave()

	change, err := s.svc.AddPartyPlayer(s.ctx, "900", "3")

	s.Require().NoError(err)
	s.Equal("Wolves", change.Joined)
}

func (s *ServiceTestSuite) TestRoundLifecycle() {
	s.expectLoad()
	s.expectSave()
	number, err := s.svc.CreateRound(s.ctx, "50", "51")
	s.Require().NoError(err)
	s.Equal(1, number)

	s.stored = s.saved
	s.expectLoad()
	s.expectSave()
	report, err := s.svc.CastRoundVote(s.ctx, "1", gamedomain.PlayerTarget("2"))
	s.Require().NoError(err)
	s.Require().Len(report.Entries, 1)
	s.Equal("P2", report.Entries[0].Choice)
	s.Equal([]string{"P1"}, report.Entries[0].Voters)
	s.Equal(gamedomain.ID("50"), report.ChannelID)
	s.Equal(int64(1700000000), s.saved.LatestRound().Votes[0].Timestamp)

	s.stored = s.saved
	s.expectLoad()
	s.expectSave()
	number, err = s.svc.EndRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, number)
	s.False(s.saved.LatestRound().IsActive)

	s.stored = s.saved
	s.expectLoad()
	_, err = s.svc.CastRoundVote(s.ctx, "2", gamedomain.Option("No Vote"))
	s.True(apperr.IsInvalidTransition(err))
}

func (s *ServiceTestSuite) TestRoundReport() {
	_, err := s.stored.CreateRound("50", "51")
	s.Require().NoError(err)
	_, err = s.stored.CastRoundVote("1", gamedomain.Option("No Vote"), 1)
	s.Require().NoError(err)
	_, err = s.stored.CastRoundVote("2", gamedomain.PlayerTarget("3"), 2)
	s.Require().NoError(err)
	_, err = s.stored.CastRoundVote("3", gamedomain.Option("No Vote"), 3)
	s.Require().NoError(err)
	s.expectLoad()

	report, err := s.svc.RoundReport(s.ctx, 0)

	s.Require().NoError(err)
	s.Equal(gameService.ReportRound, report.Kind)
	s.Equal("1", report.Name)
	s.Equal([]gameService.ReportEntry{
		{Choice: "No Vote", Voters: []string{"P1", "P3"}},
		{Choice: "P3", Voters: []string{"P2"}},
	}, report.Entries)
	s.Contains(report.String(), "No Vote: 2 vote(s)")
}

func (s *ServiceTestSuite) TestRoundReport_Missing() {
	s.expectLoad()
	_, err := s.svc.RoundReport(s.ctx, 0)
	s.True(apperr.IsNotFound(err))

	s.expectLoad()
	_, err = s.svc.RoundReport(s.ctx, 4)
	s.True(apperr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestDilemmaFlow() {
	_, err := s.stored.CreateRound("50", "51")
	s.Require().NoError(err)
	_, err = s.stored.CreateDilemma("Bridge", "60", "61")
	s.Require().NoError(err)
	_, err = s.stored.UpdateDilemmaChoice("Bridge", "Cross", true)
	s.Require().NoError(err)

	s.expectLoad()
	s.expectSave()
	changed, err := s.svc.MassUpdateDilemmaPlayers(s.ctx, "Bridge", []gamedomain.ID{"1", "2", "99"}, true)
	s.Require().NoError(err)
	s.Equal(2, changed)

	s.stored = s.saved
	s.expectLoad()
	s.expectSave()
	s.Require().NoError(s.svc.SetDilemmaActive(s.ctx, "Bridge", true))

	s.stored = s.saved
	s.expectLoad()
	s.expectSave()
	report, err := s.svc.CastDilemmaVote(s.ctx, "Bridge", "2", gamedomain.Option("Cross"))
	s.Require().NoError(err)
	s.Equal(gameService.ReportDilemma, report.Kind)
	s.Equal("Bridge", report.Name)
	s.Equal([]gameService.ReportEntry{{Choice: "Cross", Voters: []string{"P2"}}}, report.Entries)

	s.stored = s.saved
	s.expectLoad()
	_, err = s.svc.CastDilemmaVote(s.ctx, "Bridge", "3", gamedomain.Option("Cross"))
	s.True(apperr.IsInvalidTransition(err))

	s.expectLoad()
	s.expectSave()
	closed, err := s.svc.CloseDilemmas(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, closed)
	s.True(s.saved.LatestRound().GetDilemma("Bridge").IsClosed)
}

func (s *ServiceTestSuite) TestMassUpdateDilemmaPlayers_NoChangeSavesNothing() {
	_, err := s.stored.CreateRound("50", "51")
	s.Require().NoError(err)
	_, err = s.stored.CreateDilemma("Bridge", "60", "61")
	s.Require().NoError(err)
	s.expectLoad()

	changed, err := s.svc.MassUpdateDilemmaPlayers(s.ctx, "Bridge", []gamedomain.ID{"1"}, false)

	s.Require().NoError(err)
	s.Zero(changed)
}

func (s *ServiceTestSuite) TestModifyResource() {
	s.expectLoad()
	s.expectSave()

	adj, err := s.svc.ModifyResource(s.ctx, "1", "gold", -25)

	s.Require().NoError(err)
	s.True(adj.Applied)
	s.Equal(0, adj.Value)
	s.Equal(0, s.saved.GetPlayer("1").GetResource("gold").Amount)
}

func (s *ServiceTestSuite) TestModifyResource_UndefinedIsSoftWarning() {
	s.expectLoad()

	adj, err := s.svc.ModifyResource(s.ctx, "1", "silver", 5)

	s.Require().NoError(err)
	s.False(adj.Applied)
}

func (s *ServiceTestSuite) TestTransferResource() {
	s.expectLoad()
	s.expectSave()

	err := s.svc.TransferResource(s.ctx, &gameService.TransferInput{
		From:     "1",
		To:       "2",
		Name:     "gold",
		Amount:   4,
		ByPlayer: true,
	})

	s.Require().NoError(err)
	s.Equal(6, s.saved.GetPlayer("1").GetResource("gold").Amount)
	s.Equal(14, s.saved.GetPlayer("2").GetResource("gold").Amount)
}

func (s *ServiceTestSuite) TestTransferResource_PlayerGate() {
	s.stored.ResourcesLocked = true
	s.expectLoad()

	err := s.svc.TransferResource(s.ctx, &gameService.TransferInput{
		From:     "1",
		To:       "2",
		Name:     "gold",
		Amount:   4,
		ByPlayer: true,
	})

	s.True(apperr.IsInvalidTransition(err))
}

func (s *ServiceTestSuite) TestTransferItem() {
	s.Require().NoError(s.stored.GiveItem("1", "Spyglass"))
	s.expectLoad()
	s.expectSave()

	err := s.svc.TransferItem(s.ctx, &gameService.TransferInput{From: "1", To: "3", Name: "Spyglass"})

	s.Require().NoError(err)
	s.Nil(s.saved.GetPlayer("1").GetItem("Spyglass"))
	s.NotNil(s.saved.GetPlayer("3").GetItem("Spyglass"))
}

func (s *ServiceTestSuite) TestSubmitAction() {
	s.Require().NoError(s.stored.GiveAction("1", "Scout"))
	s.expectLoad()
	s.expectSave()

	action, err := s.svc.SubmitAction(s.ctx, "1", "Scout")

	s.Require().NoError(err)
	s.Equal(1, action.Uses)
	s.Equal(7, s.saved.GetPlayer("1").GetResource("gold").Amount)
}

func (s *ServiceTestSuite) TestSubmitAction_CannotAfford() {
	s.Require().NoError(s.stored.GiveAction("1", "Scout"))
	s.stored.GetPlayer("1").GetResource("gold").Amount = 2
	s.expectLoad()

	_, err := s.svc.SubmitAction(s.ctx, "1", "Scout")

	s.True(apperr.IsInvalidTransition(err))
}

func (s *ServiceTestSuite) TestAdjustActionUses() {
	s.Require().NoError(s.stored.GiveAction("1", "Scout"))
	s.expectLoad()
	s.expectSave()

	uses, err := s.svc.AdjustActionUses(s.ctx, "1", "Scout", -5)

	s.Require().NoError(err)
	s.Equal(0, uses)
}

func (s *ServiceTestSuite) TestEquipItem() {
	s.Require().NoError(s.stored.GiveItem("1", "Spyglass"))
	s.expectLoad()
	s.expectSave()

	s.Require().NoError(s.svc.EquipItem(s.ctx, "1", "Spyglass", true))
	s.True(s.saved.GetPlayer("1").GetItem("Spyglass").IsEquipped)
}

func (s *ServiceTestSuite) TestTriggerDailyIncome() {
	s.expectLoad()
	s.expectSave()

	notices, err := s.svc.TriggerDailyIncome(s.ctx)

	s.Require().NoError(err)
	s.Len(notices, 3)
	for _, n := range notices {
		s.Equal(gamedomain.NoticeIncome, n.Kind)
		s.Equal(11, n.Total)
	}
}

func (s *ServiceTestSuite) TestAddPIView() {
	s.expectLoad()
	s.expectSave()

	view := gamedomain.PIView{
		Name:        "action_view",
		ChannelID:   "70",
		MessageIDs:  []gamedomain.ID{"71", "72"},
		ButtonMsgID: "73",
	}
	err := s.svc.AddPIView(s.ctx, view)

	s.Require().NoError(err)
	s.Require().NotNil(s.saved)
	s.Equal([]gamedomain.PIView{view}, s.saved.PIViews)
}

func (s *ServiceTestSuite) TestAddPIView_DuplicateName() {
	s.Require().NoError(s.stored.AddPIView(gamedomain.PIView{Name: "action_view", ChannelID: "70"}))
	s.expectLoad()

	err := s.svc.AddPIView(s.ctx, gamedomain.PIView{Name: "action_view", ChannelID: "80"})

	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
	s.Nil(s.saved)
}

func (s *ServiceTestSuite) TestAddPIView_RequiresNameAndChannel() {
	err := s.svc.AddPIView(s.ctx, gamedomain.PIView{ChannelID: "70"})
	s.True(apperr.IsInvalidArgument(err))

	err = s.svc.AddPIView(s.ctx, gamedomain.PIView{Name: "item_view"})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestRemovePIView() {
	s.Require().NoError(s.stored.AddPIView(gamedomain.PIView{Name: "board", ChannelID: "70"}))
	s.expectLoad()
	s.expectSave()

	view, err := s.svc.RemovePIView(s.ctx, "board")

	s.Require().NoError(err)
	s.Equal(gamedomain.ID("70"), view.ChannelID)
	s.Empty(s.saved.PIViews)
}

func (s *ServiceTestSuite) TestInitializeGame() {
	dir := s.T().TempDir()
	playersPath := filepath.Join(dir, "players.csv")
	s.Require().NoError(os.WriteFile(playersPath, []byte("player_id,name,mod_channel,attributes,resources,skills,status_modifiers,actions,items\n1,P1,100,,,,,,\n"), 0o644))

	s.repo.EXPECT().Exists(gomock.Any()).Return(false, nil)
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any(), games.NoVersion).Return(games.Version("v1"), nil)

	g, err := s.svc.InitializeGame(s.ctx, &gameService.InitializeGameInput{
		Paths: seed.Paths{Players: playersPath},
	})

	s.Require().NoError(err)
	s.False(g.IsActive)
	s.Len(g.Players, 1)
}

func (s *ServiceTestSuite) TestInitializeGame_Existing() {
	s.repo.EXPECT().Exists(gomock.Any()).Return(true, nil)

	_, err := s.svc.InitializeGame(s.ctx, &gameService.InitializeGameInput{})
	s.True(apperr.IsAlreadyExists(err))

	s.repo.EXPECT().Exists(gomock.Any()).Return(true, nil)
	s.repo.EXPECT().Save(gomock.Any(), gomock.Any(), games.AnyVersion).Return(games.Version("v2"), nil)

	_, err = s.svc.InitializeGame(s.ctx, &gameService.InitializeGameInput{Overwrite: true})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestRefreshCatalog() {
	dir := s.T().TempDir()
	actionsPath := filepath.Join(dir, "actions.csv")
	itemsPath := filepath.Join(dir, "items.csv")
	s.Require().NoError(os.WriteFile(actionsPath, []byte("action_name,action_uses,action_desc\nHide,1,Hide away\n"), 0o644))
	s.Require().NoError(os.WriteFile(itemsPath, []byte("item_name,item_type,action_name\nCloak,Tool,Hide\n"), 0o644))
	s.expectLoad()
	s.expectSave()

	err := s.svc.RefreshCatalog(s.ctx, &gameService.RefreshCatalogInput{ActionsPath: actionsPath, ItemsPath: itemsPath})

	s.Require().NoError(err)
	s.Require().Len(s.saved.Actions, 1)
	s.Equal("Hide", s.saved.Actions[0].Name)
	s.Require().Len(s.saved.Items, 1)
	s.Equal("Hide", s.saved.Items[0].Action.Name)
}
