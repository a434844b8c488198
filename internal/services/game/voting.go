package game

import (
	"context"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"go.uber.org/zap"
)

// CreateRound opens the next round and returns its number
func (s *service) CreateRound(ctx context.Context, channel, reportMessage gamedomain.ID) (int, error) {
	var number int
	err := s.update(ctx, "create round", func(g *gamedomain.Game) error {
		r, err := g.CreateRound(channel, reportMessage)
		if err != nil {
			return err
		}
		number = r.Number
		return nil
	})
	return number, err
}

// EndRound closes the active round and returns its number
func (s *service) EndRound(ctx context.Context) (int, error) {
	var number int
	err := s.update(ctx, "end round", func(g *gamedomain.Game) error {
		r, err := g.EndRound()
		if err != nil {
			return err
		}
		number = r.Number
		return nil
	})
	return number, err
}

// CastRoundVote records, replaces or withdraws a round vote
func (s *service) CastRoundVote(ctx context.Context, voter gamedomain.ID, choice gamedomain.Choice) (*VoteReport, error) {
	var report *VoteReport
	err := s.update(ctx, "round vote", func(g *gamedomain.Game) error {
		r, err := g.CastRoundVote(voter, choice, s.now())
		if err != nil {
			return err
		}
		report = roundReport(g, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// RoundReport tallies a round; zero selects the latest round
func (s *service) RoundReport(ctx context.Context, number int) (*VoteReport, error) {
	g, err := s.view(ctx, "round report")
	if err != nil {
		return nil, err
	}

	r := g.LatestRound()
	if number != 0 {
		r = g.GetRound(number)
	}
	if r == nil {
		if number == 0 {
			return nil, apperr.NotFound("there are no rounds")
		}
		return nil, apperr.NotFoundf("round %d not found", number).WithMeta("round_number", number)
	}
	return roundReport(g, r), nil
}

// CreateDilemma adds an inactive dilemma to the active round
func (s *service) CreateDilemma(ctx context.Context, name string, channel, reportMessage gamedomain.ID) error {
	return s.update(ctx, "create dilemma", func(g *gamedomain.Game) error {
		_, err := g.CreateDilemma(name, channel, reportMessage)
		return err
	})
}

// SetDilemmaActive opens or pauses voting on a dilemma
func (s *service) SetDilemmaActive(ctx context.Context, name string, active bool) error {
	return s.update(ctx, "toggle dilemma", func(g *gamedomain.Game) error {
		_, err := g.SetDilemmaActive(name, active)
		return err
	})
}

// CloseDilemmas permanently closes every dilemma of the latest round
func (s *service) CloseDilemmas(ctx context.Context) (int, error) {
	var closed int
	err := s.update(ctx, "close dilemmas", func(g *gamedomain.Game) error {
		n, err := g.CloseDilemmas()
		closed = n
		return err
	})
	return closed, err
}

// UpdateDilemmaPlayer adds or removes an eligible voter
func (s *service) UpdateDilemmaPlayer(ctx context.Context, name string, id gamedomain.ID, add bool) error {
	return s.update(ctx, "update dilemma player", func(g *gamedomain.Game) error {
		_, err := g.UpdateDilemmaPlayer(name, id, add)
		return err
	})
}

// MassUpdateDilemmaPlayers adds or removes many voters, skipping ids that
// are not registered players or already in the requested state
func (s *service) MassUpdateDilemmaPlayers(ctx context.Context, name string, ids []gamedomain.ID, add bool) (int, error) {
	var changed int
	err := s.update(ctx, "mass update dilemma players", func(g *gamedomain.Game) error {
		if _, err := g.LatestDilemma(name); err != nil {
			return err
		}
		for _, id := range ids {
			if g.GetPlayer(id) == nil {
				continue
			}
			if _, err := g.UpdateDilemmaPlayer(name, id, add); err != nil {
				if apperr.IsAlreadyExists(err) || apperr.IsNotFound(err) {
					s.logger.Debug("skipping dilemma player", zap.String("player_id", id.String()), zap.Error(err))
					continue
				}
				return err
			}
			changed++
		}
		if changed == 0 {
			return errUnchanged
		}
		return nil
	})
	return changed, err
}

// UpdateDilemmaChoice adds or removes a choice
func (s *service) UpdateDilemmaChoice(ctx context.Context, name, choice string, add bool) error {
	return s.update(ctx, "update dilemma choice", func(g *gamedomain.Game) error {
		_, err := g.UpdateDilemmaChoice(name, choice, add)
		return err
	})
}

// CastDilemmaVote records, replaces or withdraws a dilemma vote
func (s *service) CastDilemmaVote(ctx context.Context, name string, voter gamedomain.ID, choice gamedomain.Choice) (*VoteReport, error) {
	var report *VoteReport
	err := s.update(ctx, "dilemma vote", func(g *gamedomain.Game) error {
		d, err := g.CastDilemmaVote(name, voter, choice, s.now())
		if err != nil {
			return err
		}
		report = dilemmaReport(g, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DilemmaReport tallies a dilemma of the latest round
func (s *service) DilemmaReport(ctx context.Context, name string) (*VoteReport, error) {
	g, err := s.view(ctx, "dilemma report")
	if err != nil {
		return nil, err
	}
	d, err := g.LatestDilemma(name)
	if err != nil {
		return nil, err
	}
	return dilemmaReport(g, d), nil
}
