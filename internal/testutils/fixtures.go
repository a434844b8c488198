package testutils

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
)

// CreateTestResourceDefinitions returns gold (unbounded commodity) and
// food (perishable, max 10)
func CreateTestResourceDefinitions() []catalog.ResourceDefinition {
	return []catalog.ResourceDefinition{
		{Name: "gold", Max: catalog.Unbounded, IsCommodity: true},
		{Name: "food", Max: 10, IsCommodity: true, IsPerishable: true},
	}
}

// CreateTestAction creates an action with the given uses and gold cost
func CreateTestAction(name string, uses, goldCost int) catalog.Action {
	action := catalog.NewAction(name, name+" description")
	action.Uses = uses
	action.Costs = []catalog.ResourceCost{}
	action.Classes = []string{}
	if goldCost > 0 {
		action.Costs = append(action.Costs, catalog.ResourceCost{ResourceName: "gold", Amount: goldCost})
	}
	return action
}

// CreateTestPlayer creates a living player holding 10 gold
func CreateTestPlayer(id game.ID, name string) game.Player {
	p := game.NewPlayer(id, name, "mod-"+id)
	p.AddResourceFromDefinition(CreateTestResourceDefinitions()[0], 10, 1)
	return p
}

// CreateTestGame creates an active, fully unlocked game with players
// "1", "2" and "3", a catalog action and one party on channel "900"
func CreateTestGame() *game.Game {
	g := game.New()
	g.IsActive = true
	g.PartiesLocked = false
	g.VotingLocked = false
	g.ItemsLocked = false
	g.ResourcesLocked = false
	g.ResourceDefs = CreateTestResourceDefinitions()
	g.ItemTypeDefs = []catalog.ItemTypeDefinition{{Type: "Tool", IsEquippable: true, MaxEquippable: 1}}
	g.Actions = []catalog.Action{CreateTestAction("Scout", 2, 3)}
	g.Items = []catalog.Item{{Name: "Spyglass", Type: "Tool"}}

	for _, p := range []game.Player{
		CreateTestPlayer("1", "P1"),
		CreateTestPlayer("2", "P2"),
		CreateTestPlayer("3", "P3"),
	} {
		if err := g.AddPlayer(p); err != nil {
			panic(err)
		}
	}
	if err := g.CreateParty("Wolves", 2, "900"); err != nil {
		panic(err)
	}
	return g
}
