package discord_test

import (
	"errors"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/testutils"
	"go.uber.org/mock/gomock"
)

func rarity(r string) *string {
	return &r
}

func (s *HandlerTestSuite) TestItemsInventoryView_ShowsCaller() {
	g := testutils.CreateTestGame()
	g.Players[0].Items = []catalog.Item{
		{Name: "Spyglass", Type: "Tool", IsEquipped: true},
		{Name: "amulet", Type: "Trinket", Rarity: rarity("Rare")},
	}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("items-inventory-view")
	s.Require().NoError(err)
	s.True(resp.Ephemeral)
	s.Equal("P1 inventory:\namulet (Trinket), Rare\nSpyglass (Tool) [equipped]", resp.Content)
}

func (s *HandlerTestSuite) TestItemsInventoryView_Empty() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)

	resp, err := s.dispatch("items-inventory-view")
	s.Require().NoError(err)
	s.Equal("P1 has no items", resp.Content)
}

func (s *HandlerTestSuite) TestItemsInventoryView_UnregisteredCaller() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(gamedomain.New(), nil)

	_, err := s.dispatch("items-inventory-view")
	s.True(apperr.IsNotFound(err))
}

func (s *HandlerTestSuite) TestItemsPlayerInventoryView() {
	g := testutils.CreateTestGame()
	g.Players[1].Items = []catalog.Item{{Name: "Spyglass", Type: "Tool"}}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("items-player-inventory-view", userOption("player", "2"))
	s.Require().NoError(err)
	s.Equal("P2 inventory:\nSpyglass (Tool)", resp.Content)
}

func (s *HandlerTestSuite) TestItemsPlayerInventoryView_RequiresPlayer() {
	_, err := s.dispatch("items-player-inventory-view")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestActionsPlayerView_IncludesItemActions() {
	g := testutils.CreateTestGame()
	light := testutils.CreateTestAction("Light", -1, 0)
	g.Players[1].Actions = []catalog.Action{testutils.CreateTestAction("Scout", 2, 3)}
	g.Players[1].Items = []catalog.Item{{Name: "Lantern", Type: "Tool", Action: &light}}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("actions-player-view", userOption("player", "2"))
	s.Require().NoError(err)
	s.Equal("P2 actions:\nScout (2 use(s)), 3 gold\nLight (unlimited) [from Lantern]", resp.Content)
}

func (s *HandlerTestSuite) TestActionsPlayerView_NoActions() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)

	resp, err := s.dispatch("actions-player-view", userOption("player", "3"))
	s.Require().NoError(err)
	s.Equal("P3 has no actions", resp.Content)
}

func (s *HandlerTestSuite) TestActionsHandbookView() {
	g := testutils.CreateTestGame()
	timing := "Night"
	g.Actions[0].Timing = &timing
	g.Actions[0].Classes = []string{"Ranger", "Scout"}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("actions-handbook-view", strOption("action", "Scout"))
	s.Require().NoError(err)
	s.Equal("Scout (2 use(s)), 3 gold\nTiming: Night\nClasses: Ranger, Scout\nScout description", resp.Content)
}

func (s *HandlerTestSuite) TestActionsHandbookView_UnknownAction() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)

	_, err := s.dispatch("actions-handbook-view", strOption("action", "Fly"))
	s.True(apperr.IsNotFound(err))
}

func (s *HandlerTestSuite) TestResourceView_ShowsCaller() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)

	resp, err := s.dispatch("resource-view")
	s.Require().NoError(err)
	s.Equal("P1 resources:\ngold: 10 (income 1)", resp.Content)
}

func (s *HandlerTestSuite) TestResourcePlayerViewAll() {
	g := testutils.CreateTestGame()
	g.Players[2].Resources = nil
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("resource-player-view-all")
	s.Require().NoError(err)
	s.Equal("All player resources:\nP1: 10 gold\nP2: 10 gold\nP3: none", resp.Content)
}

func (s *HandlerTestSuite) TestResourcePlayerViewAll_NoPlayers() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(gamedomain.New(), nil)

	resp, err := s.dispatch("resource-player-view-all")
	s.Require().NoError(err)
	s.Equal("No players found for this game", resp.Content)
}

func (s *HandlerTestSuite) TestAttributeView_ShowsCaller() {
	g := testutils.CreateTestGame()
	g.Players[0].Attributes = []gamedomain.Attribute{
		{Name: "Body", Level: 2, MaxLevel: 5},
		{Name: "Mind", Level: 1, MaxLevel: catalog.Unbounded},
	}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("attribute-view")
	s.Require().NoError(err)
	s.Equal("P1 attributes:\nBody: 2/5\nMind: 1", resp.Content)
}

func (s *HandlerTestSuite) TestAttributePlayerViewAll() {
	g := testutils.CreateTestGame()
	g.Players[0].Attributes = []gamedomain.Attribute{{Name: "Body", Level: 2, MaxLevel: 5}}
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	resp, err := s.dispatch("attribute-player-view-all")
	s.Require().NoError(err)
	s.Equal("All player attributes:\nP1: Body 2\nP2: none\nP3: none", resp.Content)
}

func (s *HandlerTestSuite) TestActionsGeneratePersistentView() {
	g := testutils.CreateTestGame()
	light := testutils.CreateTestAction("Light", -1, 0)
	g.Items = append(g.Items, catalog.Item{Name: "Lantern", Type: "Tool", Action: &light})
	g.Actions = append(g.Actions, light)
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)
	s.service.EXPECT().AddPIView(gomock.Any(), gamedomain.PIView{
		Name:        "action_view",
		ChannelID:   "300",
		MessageIDs:  []gamedomain.ID{"501"},
		ButtonMsgID: "502",
	}).Return(nil)

	resp, err := s.dispatch("actions-generate-persistent-view", channelOption("channel", "300"))
	s.Require().NoError(err)
	s.Equal("Created persistent view action_view in <#300>", resp.Content)
	s.Equal([]postedMessage{
		{ChannelID: "300", MessageID: "501", Content: "**Actions**\nScout (2 use(s)), 3 gold\nLight (unlimited) [from Lantern]"},
		{ChannelID: "300", MessageID: "502", Content: "Use /actions-available-view to filter this list."},
	}, s.messenger.sent)
}

func (s *HandlerTestSuite) TestActionsGeneratePersistentView_Filters() {
	g := testutils.CreateTestGame()
	track := testutils.CreateTestAction("Track", -1, 0)
	track.Classes = []string{"Ranger"}
	g.Actions = append(g.Actions, track)
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)
	s.service.EXPECT().AddPIView(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.dispatch("actions-generate-persistent-view", strOption("class", "Ranger"))
	s.Require().NoError(err)
	s.Require().Len(s.messenger.sent, 2)
	s.Equal("**Actions**\nTrack (unlimited)", s.messenger.sent[0].Content)
}

func (s *HandlerTestSuite) TestItemsGeneratePersistentView_DefaultsToCurrentChannel() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)
	s.service.EXPECT().AddPIView(gomock.Any(), gamedomain.PIView{
		Name:        "item_view",
		ChannelID:   "200",
		MessageIDs:  []gamedomain.ID{"501"},
		ButtonMsgID: "502",
	}).Return(nil)

	resp, err := s.dispatch("items-generate-persistent-view")
	s.Require().NoError(err)
	s.Equal("Created persistent view item_view in <#200>", resp.Content)
	s.Require().Len(s.messenger.sent, 2)
	s.Equal("**Items**\nSpyglass (Tool)", s.messenger.sent[0].Content)
}

func (s *HandlerTestSuite) TestItemsGeneratePersistentView_NoMatches() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)
	s.service.EXPECT().AddPIView(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.dispatch("items-generate-persistent-view", strOption("rarity", "Legendary"))
	s.Require().NoError(err)
	s.Require().Len(s.messenger.sent, 2)
	s.Equal("**Items**\n*<No items!>*", s.messenger.sent[0].Content)
}

func (s *HandlerTestSuite) TestGeneratePersistentView_AlreadyExists() {
	g := testutils.CreateTestGame()
	s.Require().NoError(g.AddPIView(gamedomain.PIView{Name: "action_view", ChannelID: "300"}))
	s.service.EXPECT().GetGame(gomock.Any()).Return(g, nil)

	_, err := s.dispatch("actions-generate-persistent-view")
	s.True(apperr.IsAlreadyExists(err))
	s.Empty(s.messenger.sent)
}

func (s *HandlerTestSuite) TestGeneratePersistentView_RecordFailureRemovesMessages() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)
	s.service.EXPECT().AddPIView(gomock.Any(), gomock.Any()).
		Return(apperr.AlreadyExistsf("persistent view item_view already exists"))

	_, err := s.dispatch("items-generate-persistent-view", channelOption("channel", "300"))
	s.True(apperr.IsAlreadyExists(err))
	s.Equal([]postedMessage{
		{ChannelID: "300", MessageID: "501"},
		{ChannelID: "300", MessageID: "502"},
	}, s.messenger.deleted)
}

func (s *HandlerTestSuite) TestGeneratePersistentView_PostFails() {
	s.service.EXPECT().GetGame(gomock.Any()).Return(testutils.CreateTestGame(), nil)
	s.messenger.sendErr = errors.New("missing access")

	_, err := s.dispatch("items-generate-persistent-view")
	s.Equal(apperr.CodeInternal, apperr.GetCode(err))
	s.Empty(s.messenger.deleted)
}
