package game_test

import (
	"testing"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withGold(g *game.Game, id game.ID, amount int, commodity bool) {
	p := g.GetPlayer(id)
	p.Resources = append(p.Resources, game.Resource{Type: "gold", Amount: amount, Max: -1, IsCommodity: commodity})
}

func TestTransferResource(t *testing.T) {
	g := newOpenGame()
	withGold(g, "1", 10, true)
	withGold(g, "2", 0, true)

	require.NoError(t, g.PlayerTransferResource("1", "2", "gold", 5))

	assert.Equal(t, 5, g.GetPlayer("1").GetResource("gold").Amount)
	assert.Equal(t, 5, g.GetPlayer("2").GetResource("gold").Amount)
}

func TestTransferResource_FailuresChangeNothing(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *game.Game)
		from    game.ID
		to      game.ID
		amount  int
		checkFn func(error) bool
	}{
		{name: "more than held", from: "1", to: "2", amount: 11, checkFn: apperr.IsInvalidArgument},
		{name: "non positive", from: "1", to: "2", amount: 0, checkFn: apperr.IsInvalidArgument},
		{name: "unknown receiver", from: "1", to: "9", amount: 1, checkFn: apperr.IsNotFound},
		{name: "receiver lacks resource", from: "1", to: "3", amount: 1, checkFn: apperr.IsNotFound},
		{
			name:    "not a commodity",
			setup:   func(g *game.Game) { g.GetPlayer("1").GetResource("gold").IsCommodity = false },
			from:    "1",
			to:      "2",
			amount:  1,
			checkFn: apperr.IsInvalidArgument,
		},
		{
			name:    "resources locked",
			setup:   func(g *game.Game) { g.ResourcesLocked = true },
			from:    "1",
			to:      "2",
			amount:  1,
			checkFn: apperr.IsInvalidTransition,
		},
		{
			name:    "dead sender",
			setup:   func(g *game.Game) { g.GetPlayer("1").IsDead = true },
			from:    "1",
			to:      "2",
			amount:  1,
			checkFn: apperr.IsInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newOpenGame()
			withGold(g, "1", 10, true)
			withGold(g, "2", 0, true)
			if tt.setup != nil {
				tt.setup(g)
			}

			err := g.PlayerTransferResource(tt.from, tt.to, "gold", tt.amount)

			assert.True(t, tt.checkFn(err), "unexpected error %v", err)
			assert.Equal(t, 10, g.GetPlayer("1").GetResource("gold").Amount)
			assert.Equal(t, 0, g.GetPlayer("2").GetResource("gold").Amount)
		})
	}
}

func TestTransferItem(t *testing.T) {
	g := newOpenGame()
	g.GetPlayer("1").Items = append(g.GetPlayer("1").Items, catalog.Item{Name: "Lamp", Type: "Tool", IsEquipped: true})

	require.NoError(t, g.PlayerTransferItem("1", "2", "Lamp"))
	assert.Nil(t, g.GetPlayer("1").GetItem("Lamp"))
	lamp := g.GetPlayer("2").GetItem("Lamp")
	require.NotNil(t, lamp)
	assert.False(t, lamp.IsEquipped)

	err := g.PlayerTransferItem("1", "2", "Lamp")
	assert.True(t, apperr.IsNotFound(err))

	g.ItemsLocked = true
	err = g.PlayerTransferItem("2", "1", "Lamp")
	assert.True(t, apperr.IsInvalidTransition(err))
	require.NoError(t, g.TransferItem("2", "1", "Lamp"), "moderators ignore the lock")
}

func TestGiveAndTake(t *testing.T) {
	g := newOpenGame()
	g.Actions = append(g.Actions, catalog.NewAction("Scout", "look"))
	g.Items = append(g.Items, catalog.Item{Name: "Lamp", Type: "Tool"})

	require.NoError(t, g.GiveAction("1", "Scout"))
	require.NoError(t, g.GiveItem("1", "Lamp"))
	assert.True(t, apperr.IsAlreadyExists(g.GiveItem("1", "Lamp")))
	assert.True(t, apperr.IsNotFound(g.GiveAction("1", "Fly")))

	require.NoError(t, g.TakeAction("1", "Scout"))
	require.NoError(t, g.TakeItem("1", "Lamp"))
	assert.True(t, apperr.IsNotFound(g.TakeItem("1", "Lamp")))
	assert.Len(t, g.Items, 1, "catalog untouched")
}

func TestSubmitAction(t *testing.T) {
	g := newOpenGame()
	p := g.GetPlayer("1")
	p.Resources = append(p.Resources,
		game.Resource{Type: "gold", Amount: 6, Max: -1},
		game.Resource{Type: "wood", Amount: 1, Max: -1},
	)
	action := catalog.NewAction("Build", "build a wall")
	action.Uses = 2
	action.Costs = []catalog.ResourceCost{{ResourceName: "gold", Amount: 5}, {ResourceName: "wood", Amount: 1}}
	require.NoError(t, p.AddAction(action))

	submitted, err := g.SubmitAction("1", "Build")
	require.NoError(t, err)
	assert.Equal(t, 1, submitted.Uses)
	assert.Equal(t, 1, p.GetResource("gold").Amount)
	assert.Equal(t, 0, p.GetResource("wood").Amount)

	_, err = g.SubmitAction("1", "Build")
	assert.True(t, apperr.IsInvalidTransition(err), "cannot afford")
	assert.Equal(t, 1, p.GetAction("Build").Uses, "uses untouched on failure")
	assert.Equal(t, 1, p.GetResource("gold").Amount)

	p.GetResource("gold").Amount = 50
	p.GetResource("wood").Amount = 50
	_, err = g.SubmitAction("1", "Build")
	require.NoError(t, err)
	_, err = g.SubmitAction("1", "Build")
	assert.True(t, apperr.IsInvalidTransition(err), "no uses left")
	assert.Equal(t, 45, p.GetResource("gold").Amount)
}

func TestAdjustActionUses(t *testing.T) {
	g := newOpenGame()
	p := g.GetPlayer("1")
	limited := catalog.NewAction("Heal", "heal")
	limited.Uses = 1
	require.NoError(t, p.AddAction(limited))
	require.NoError(t, p.AddAction(catalog.NewAction("Look", "look")))

	uses, err := g.AdjustActionUses("1", "Heal", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, uses)

	uses, err = g.AdjustActionUses("1", "Heal", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, uses)

	_, err = g.AdjustActionUses("1", "Look", 1)
	assert.True(t, apperr.IsInvalidTransition(err))
}

func TestEquipItem(t *testing.T) {
	g := newOpenGame()
	g.ItemTypeDefs = append(g.ItemTypeDefs, catalog.ItemTypeDefinition{Type: "Weapon", IsEquippable: true, MaxEquippable: 1})
	p := g.GetPlayer("1")
	p.Items = append(p.Items, catalog.Item{Name: "Sword", Type: "Weapon"}, catalog.Item{Name: "Map", Type: "Paper"})

	require.NoError(t, g.EquipItem("1", "Sword", true))
	assert.True(t, p.GetItem("Sword").IsEquipped)
	assert.True(t, apperr.IsNotFound(g.EquipItem("1", "Map", true)), "undefined item type")
	require.NoError(t, g.EquipItem("1", "Sword", false))
	assert.False(t, p.GetItem("Sword").IsEquipped)
}

func TestTriggerDailyIncome(t *testing.T) {
	g := newOpenGame()
	p := g.GetPlayer("1")
	p.ModChannel = "77"
	p.Resources = append(p.Resources,
		game.Resource{Type: "food", Amount: 7, Max: -1, IsPerishable: true},
		game.Resource{Type: "gold", Amount: 9, Income: 3, Max: 10},
		game.Resource{Type: "ore", Amount: 4, Income: 0, Max: -1},
	)

	notices := g.TriggerDailyIncome()

	assert.Equal(t, 0, p.GetResource("food").Amount)
	assert.Equal(t, 10, p.GetResource("gold").Amount)
	assert.Equal(t, 4, p.GetResource("ore").Amount)

	require.Len(t, notices, 2)
	assert.Equal(t, game.ResourceNotice{PlayerID: "1", ModChannel: "77", Resource: "food", Kind: game.NoticeExpired, Amount: 7}, notices[0])
	assert.Equal(t, game.ResourceNotice{PlayerID: "1", ModChannel: "77", Resource: "gold", Kind: game.NoticeIncome, Amount: 3, Total: 10}, notices[1])
}

func TestTriggerDailyIncome_PerishableWithIncome(t *testing.T) {
	g := newOpenGame()
	p := g.GetPlayer("2")
	p.Resources = append(p.Resources, game.Resource{Type: "bread", Amount: 2, Income: 3, Max: -1, IsPerishable: true})

	notices := g.TriggerDailyIncome()

	assert.Equal(t, 3, p.GetResource("bread").Amount)
	require.Len(t, notices, 2)
	assert.Equal(t, game.NoticeExpired, notices[0].Kind)
	assert.Equal(t, game.NoticeIncome, notices[1].Kind)
}
