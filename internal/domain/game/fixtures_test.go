package game_test

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
)

// newOpenGame returns an active game with voting and transfers unlocked
// and three living players P1..P3.
func newOpenGame() *game.Game {
	g := game.New()
	g.IsActive = true
	g.VotingLocked = false
	g.ResourcesLocked = false
	g.ItemsLocked = false
	g.PartiesLocked = false
	for _, p := range []struct {
		id   game.ID
		name string
	}{
		{"1", "P1"}, {"2", "P2"}, {"3", "P3"},
	} {
		if err := g.AddPlayer(game.NewPlayer(p.id, p.name, "")); err != nil {
			panic(err)
		}
	}
	return g
}
