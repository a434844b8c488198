package game

import (
	"fmt"
	"strings"
	"sync"

	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field constraints and the cross-entity invariants a
// loaded document must satisfy.
func (g *Game) Validate() error {
	if err := structValidator().Struct(g); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "game document failed field validation")
	}

	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	players := make(map[ID]bool, len(g.Players))
	for _, p := range g.Players {
		if players[p.ID] {
			add("duplicate player %s", p.ID)
		}
		players[p.ID] = true
	}

	partyNames := make(map[string]bool)
	partyChannels := make(map[ID]bool)
	membership := make(map[ID]string)
	for _, party := range g.Parties {
		if partyNames[party.Name] {
			add("duplicate party %s", party.Name)
		}
		partyNames[party.Name] = true
		if partyChannels[party.ChannelID] {
			add("duplicate party channel %s", party.ChannelID)
		}
		partyChannels[party.ChannelID] = true
		if party.MaxSize != -1 && len(party.PlayerIDs) > party.MaxSize {
			add("party %s exceeds max size %d", party.Name, party.MaxSize)
		}
		for _, id := range party.PlayerIDs {
			if other, ok := membership[id]; ok {
				add("player %s is in parties %s and %s", id, other, party.Name)
			}
			membership[id] = party.Name
		}
	}

	rounds := make(map[int]bool)
	active := 0
	for _, r := range g.Rounds {
		if rounds[r.Number] {
			add("duplicate round %d", r.Number)
		}
		rounds[r.Number] = true
		if r.IsActive {
			active++
		}
		if !uniqueVoters(r.Votes) {
			add("round %d has more than one vote per player", r.Number)
		}
		dilemmas := make(map[string]bool)
		for _, d := range r.Dilemmas {
			if dilemmas[d.Name] {
				add("duplicate dilemma %s in round %d", d.Name, r.Number)
			}
			dilemmas[d.Name] = true
			if !uniqueVoters(d.Votes) {
				add("dilemma %s has more than one vote per player", d.Name)
			}
		}
	}
	if active > 1 {
		add("%d rounds are active", active)
	}
	if latest := g.LatestRound(); active == 1 && latest != nil && !latest.IsActive {
		add("an earlier round is active while round %d is not", latest.Number)
	}

	views := make(map[string]bool)
	for _, v := range g.PIViews {
		if views[v.Name] {
			add("duplicate persistent view %s", v.Name)
		}
		views[v.Name] = true
	}

	if len(problems) > 0 {
		return apperr.InvalidArgumentf("game document violates invariants: %s", strings.Join(problems, "; "))
	}
	return nil
}

func uniqueVoters(votes []Vote) bool {
	seen := make(map[ID]bool, len(votes))
	for _, v := range votes {
		if seen[v.PlayerID] {
			return false
		}
		seen[v.PlayerID] = true
	}
	return true
}
