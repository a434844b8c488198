package game

import (
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// LatestRound returns the round with the highest number, or nil
func (g *Game) LatestRound() *Round {
	var latest *Round
	for i := range g.Rounds {
		if latest == nil || g.Rounds[i].Number > latest.Number {
			latest = &g.Rounds[i]
		}
	}
	return latest
}

// GetRound finds a round by number
func (g *Game) GetRound(number int) *Round {
	for i := range g.Rounds {
		if g.Rounds[i].Number == number {
			return &g.Rounds[i]
		}
	}
	return nil
}

// ActiveRound returns the latest round when it is active
func (g *Game) ActiveRound() (*Round, error) {
	latest := g.LatestRound()
	if latest == nil || !latest.IsActive {
		return nil, apperr.InvalidTransition("there is no active round")
	}
	return latest, nil
}

// CreateRound opens round max+1. Only one round may be active.
func (g *Game) CreateRound(channel, reportMessage ID) (*Round, error) {
	number := 1
	if latest := g.LatestRound(); latest != nil {
		if latest.IsActive {
			return nil, apperr.InvalidTransitionf("round %d is still active", latest.Number).
				WithMeta("round_number", latest.Number)
		}
		number = latest.Number + 1
	}

	g.Rounds = append(g.Rounds, Round{
		Votes:     []Vote{},
		ChannelID: channel,
		MessageID: reportMessage,
		Number:    number,
		Dilemmas:  []Dilemma{},
		IsActive:  true,
	})
	return &g.Rounds[len(g.Rounds)-1], nil
}

// EndRound closes the active round. Its dilemmas are left as they are.
func (g *Game) EndRound() (*Round, error) {
	r, err := g.ActiveRound()
	if err != nil {
		return nil, err
	}
	r.IsActive = false
	return r, nil
}

// requireVoter checks the global voting gates and returns the living voter
func (g *Game) requireVoter(voter ID) (*Player, error) {
	if err := g.requireOpen(FlagVotingLocked, "voting"); err != nil {
		return nil, err
	}
	return g.requireLiving(voter)
}

// CastRoundVote records, overwrites or withdraws the voter's round vote
func (g *Game) CastRoundVote(voter ID, choice Choice, now int64) (*Round, error) {
	if err := choice.validate(); err != nil {
		return nil, err
	}
	if _, err := g.requireVoter(voter); err != nil {
		return nil, err
	}
	r, err := g.ActiveRound()
	if err != nil {
		return nil, err
	}
	if choice.Kind == ChoicePlayer {
		target := g.GetPlayer(ID(choice.Value))
		if target == nil {
			return nil, apperr.NotFoundf("vote target %s is not a player", choice.Value)
		}
		if target.IsDead {
			return nil, apperr.InvalidTransitionf("player %s is dead and cannot be voted", target.DiscordName)
		}
	}

	votes, err := castVote(r.Votes, voter, choice, now)
	if err != nil {
		return nil, err
	}
	r.Votes = votes
	return r, nil
}

// CreateDilemma adds an inactive dilemma to the active round
func (g *Game) CreateDilemma(name string, channel, reportMessage ID) (*Dilemma, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("dilemma name is required")
	}
	r, err := g.ActiveRound()
	if err != nil {
		return nil, err
	}
	if r.GetDilemma(name) != nil {
		return nil, apperr.AlreadyExistsf("dilemma %s already exists in round %d", name, r.Number)
	}
	r.Dilemmas = append(r.Dilemmas, Dilemma{
		Votes:     []Vote{},
		Name:      name,
		ChannelID: channel,
		MessageID: reportMessage,
		PlayerIDs: []ID{},
		Choices:   []string{},
	})
	return &r.Dilemmas[len(r.Dilemmas)-1], nil
}

// LatestDilemma finds a dilemma by name in the latest round
func (g *Game) LatestDilemma(name string) (*Dilemma, error) {
	r := g.LatestRound()
	if r == nil {
		return nil, apperr.NotFoundf("dilemma %s not found: there are no rounds", name)
	}
	d := r.GetDilemma(name)
	if d == nil {
		return nil, apperr.NotFoundf("dilemma %s not found in round %d", name, r.Number)
	}
	return d, nil
}

// SetDilemmaActive toggles a dilemma; closed dilemmas cannot change
func (g *Game) SetDilemmaActive(name string, active bool) (*Dilemma, error) {
	d, err := g.LatestDilemma(name)
	if err != nil {
		return nil, err
	}
	if d.IsClosed {
		return nil, apperr.InvalidTransitionf("dilemma %s is closed", name)
	}
	d.IsActive = active
	return d, nil
}

// CloseDilemmas closes every dilemma in the latest round
func (g *Game) CloseDilemmas() (int, error) {
	r := g.LatestRound()
	if r == nil {
		return 0, apperr.NotFound("there are no rounds")
	}
	return r.CloseDilemmas(), nil
}

// UpdateDilemmaPlayer adds or removes an eligible voter
func (g *Game) UpdateDilemmaPlayer(name string, id ID, add bool) (*Dilemma, error) {
	d, err := g.LatestDilemma(name)
	if err != nil {
		return nil, err
	}
	if d.IsClosed {
		return nil, apperr.InvalidTransitionf("dilemma %s is closed", name)
	}
	if add {
		if _, err := g.MustGetPlayer(id); err != nil {
			return nil, err
		}
		err = d.AddPlayer(id)
	} else {
		err = d.RemovePlayer(id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDilemmaChoice adds or removes an offered choice
func (g *Game) UpdateDilemmaChoice(name, choice string, add bool) (*Dilemma, error) {
	d, err := g.LatestDilemma(name)
	if err != nil {
		return nil, err
	}
	if d.IsClosed {
		return nil, apperr.InvalidTransitionf("dilemma %s is closed", name)
	}
	if add {
		err = d.AddChoice(choice)
	} else {
		err = d.RemoveChoice(choice)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// CastDilemmaVote records, overwrites or withdraws the voter's dilemma vote
func (g *Game) CastDilemmaVote(name string, voter ID, choice Choice, now int64) (*Dilemma, error) {
	if err := choice.validate(); err != nil {
		return nil, err
	}
	if choice.Kind == ChoicePlayer {
		return nil, apperr.InvalidArgument("dilemma votes pick one of the dilemma choices")
	}
	if _, err := g.requireVoter(voter); err != nil {
		return nil, err
	}
	if _, err := g.ActiveRound(); err != nil {
		return nil, err
	}
	d, err := g.LatestDilemma(name)
	if err != nil {
		return nil, err
	}
	if !d.IsActive || d.IsClosed {
		return nil, apperr.InvalidTransitionf("dilemma %s is not active", name)
	}
	if !d.IsEligible(voter) {
		return nil, apperr.InvalidTransitionf("player %s is not part of dilemma %s", voter, name)
	}
	if choice.Kind == ChoiceOption && !d.HasChoice(choice.Value) {
		return nil, apperr.InvalidArgumentf("%s is not a choice of dilemma %s", choice.Value, name)
	}

	votes, err := castVote(d.Votes, voter, choice, now)
	if err != nil {
		return nil, err
	}
	d.Votes = votes
	return d, nil
}
