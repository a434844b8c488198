package game

import (
	"context"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"go.uber.org/zap"
)

// ModifyResource adds delta to a resource, clamped to its bounds
func (s *service) ModifyResource(ctx context.Context, id gamedomain.ID, name string, delta int) (*Adjustment, error) {
	return s.adjust(ctx, "modify resource", id, name, func(p *gamedomain.Player) (int, bool) {
		return p.ModifyResource(name, delta)
	})
}

// ModifyAttribute adds delta to an attribute level, clamped to its bounds
func (s *service) ModifyAttribute(ctx context.Context, id gamedomain.ID, name string, delta int) (*Adjustment, error) {
	return s.adjust(ctx, "modify attribute", id, name, func(p *gamedomain.Player) (int, bool) {
		return p.ModifyAttribute(name, delta)
	})
}

// adjust applies a clamped change; a name the player lacks is a soft
// warning and leaves the game untouched
func (s *service) adjust(ctx context.Context, op string, id gamedomain.ID, name string, apply func(p *gamedomain.Player) (int, bool)) (*Adjustment, error) {
	result := &Adjustment{}
	err := s.update(ctx, op, func(g *gamedomain.Game) error {
		p, err := g.MustGetPlayer(id)
		if err != nil {
			return err
		}
		value, ok := apply(p)
		if !ok {
			s.logger.Warn("player has no such entry",
				zap.String("operation", op),
				zap.String("player_id", id.String()),
				zap.String("name", name))
			return errUnchanged
		}
		result.Applied = true
		result.Value = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TransferResource moves an amount of a commodity between players
func (s *service) TransferResource(ctx context.Context, input *TransferInput) error {
	if input == nil {
		return apperr.InvalidArgument("input cannot be nil")
	}
	return s.update(ctx, "transfer resource", func(g *gamedomain.Game) error {
		if input.ByPlayer {
			return g.PlayerTransferResource(input.From, input.To, input.Name, input.Amount)
		}
		return g.TransferResource(input.From, input.To, input.Name, input.Amount)
	})
}

// TransferItem moves an item between players
func (s *service) TransferItem(ctx context.Context, input *TransferInput) error {
	if input == nil {
		return apperr.InvalidArgument("input cannot be nil")
	}
	return s.update(ctx, "transfer item", func(g *gamedomain.Game) error {
		if input.ByPlayer {
			return g.PlayerTransferItem(input.From, input.To, input.Name)
		}
		return g.TransferItem(input.From, input.To, input.Name)
	})
}

// GiveItem copies a catalog item to a player
func (s *service) GiveItem(ctx context.Context, id gamedomain.ID, name string) error {
	return s.update(ctx, "give item", func(g *gamedomain.Game) error {
		return g.GiveItem(id, name)
	})
}

// TakeItem removes an item from a player
func (s *service) TakeItem(ctx context.Context, id gamedomain.ID, name string) error {
	return s.update(ctx, "take item", func(g *gamedomain.Game) error {
		return g.TakeItem(id, name)
	})
}

// GiveAction copies a catalog action to a player
func (s *service) GiveAction(ctx context.Context, id gamedomain.ID, name string) error {
	return s.update(ctx, "give action", func(g *gamedomain.Game) error {
		return g.GiveAction(id, name)
	})
}

// TakeAction removes an action from a player
func (s *service) TakeAction(ctx context.Context, id gamedomain.ID, name string) error {
	return s.update(ctx, "take action", func(g *gamedomain.Game) error {
		return g.TakeAction(id, name)
	})
}

// AdjustActionUses changes the remaining uses of a limited action
func (s *service) AdjustActionUses(ctx context.Context, id gamedomain.ID, name string, delta int) (int, error) {
	var uses int
	err := s.update(ctx, "adjust action uses", func(g *gamedomain.Game) error {
		n, err := g.AdjustActionUses(id, name, delta)
		uses = n
		return err
	})
	return uses, err
}

// SubmitAction spends a use and pays the costs of an action
func (s *service) SubmitAction(ctx context.Context, id gamedomain.ID, name string) (*catalog.Action, error) {
	var submitted catalog.Action
	err := s.update(ctx, "submit action", func(g *gamedomain.Game) error {
		action, err := g.SubmitAction(id, name)
		if err != nil {
			return err
		}
		submitted = action.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &submitted, nil
}

// EquipItem equips or unequips a carried item
func (s *service) EquipItem(ctx context.Context, id gamedomain.ID, name string, equip bool) error {
	return s.update(ctx, "equip item", func(g *gamedomain.Game) error {
		return g.EquipItem(id, name, equip)
	})
}

// TriggerDailyIncome runs one income tick for every player
func (s *service) TriggerDailyIncome(ctx context.Context) ([]gamedomain.ResourceNotice, error) {
	var notices []gamedomain.ResourceNotice
	err := s.update(ctx, "daily income", func(g *gamedomain.Game) error {
		notices = g.TriggerDailyIncome()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("daily income applied", zap.Int("notices", len(notices)))
	return notices, nil
}
