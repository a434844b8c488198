package game

import (
	"context"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// SetFlag sets a global switch, or toggles it when value is nil
func (s *service) SetFlag(ctx context.Context, flag gamedomain.Flag, value *bool) (bool, error) {
	var result bool
	err := s.update(ctx, "set "+string(flag), func(g *gamedomain.Game) error {
		if value == nil {
			toggled, err := g.ToggleFlag(flag)
			result = toggled
			return err
		}
		result = *value
		return g.SetFlag(flag, *value)
	})
	return result, err
}

// AddPlayer registers a new player
func (s *service) AddPlayer(ctx context.Context, player gamedomain.Player) error {
	return s.update(ctx, "add player", func(g *gamedomain.Game) error {
		return g.AddPlayer(player)
	})
}

// KillPlayer marks a player dead or alive
func (s *service) KillPlayer(ctx context.Context, id gamedomain.ID, dead bool) error {
	return s.update(ctx, "kill player", func(g *gamedomain.Game) error {
		return g.SetPlayerDead(id, dead)
	})
}

// CreateParty adds an empty party bound to a channel
func (s *service) CreateParty(ctx context.Context, name string, maxSize int, channel gamedomain.ID) error {
	return s.update(ctx, "create party", func(g *gamedomain.Game) error {
		return g.CreateParty(name, maxSize, channel)
	})
}

// AddPartyPlayer moves a player into a party without game gates
func (s *service) AddPartyPlayer(ctx context.Context, channel, id gamedomain.ID) (*PartyChange, error) {
	return s.joinParty(ctx, "add party player", channel, func(g *gamedomain.Game) (*gamedomain.Party, error) {
		return g.AddPartyPlayer(channel, id)
	})
}

// JoinParty is the player-initiated party move
func (s *service) JoinParty(ctx context.Context, id, channel gamedomain.ID) (*PartyChange, error) {
	return s.joinParty(ctx, "join party", channel, func(g *gamedomain.Game) (*gamedomain.Party, error) {
		return g.JoinParty(id, channel)
	})
}

func (s *service) joinParty(ctx context.Context, op string, channel gamedomain.ID, join func(g *gamedomain.Game) (*gamedomain.Party, error)) (*PartyChange, error) {
	change := &PartyChange{}
	err := s.update(ctx, op, func(g *gamedomain.Game) error {
		previous, err := join(g)
		if err != nil {
			return err
		}
		if previous != nil {
			change.Left = previous.Name
		}
		change.Joined = g.GetParty(channel).Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// RemovePartyPlayer takes a player out of their party without game gates
func (s *service) RemovePartyPlayer(ctx context.Context, id gamedomain.ID) (*PartyChange, error) {
	return s.leaveParty(ctx, "remove party player", func(g *gamedomain.Game) (*gamedomain.Party, error) {
		return g.RemovePartyPlayer(id)
	})
}

// LeaveParty is the player-initiated party exit
func (s *service) LeaveParty(ctx context.Context, id gamedomain.ID) (*PartyChange, error) {
	return s.leaveParty(ctx, "leave party", func(g *gamedomain.Game) (*gamedomain.Party, error) {
		return g.LeaveParty(id)
	})
}

func (s *service) leaveParty(ctx context.Context, op string, leave func(g *gamedomain.Game) (*gamedomain.Party, error)) (*PartyChange, error) {
	change := &PartyChange{}
	err := s.update(ctx, op, func(g *gamedomain.Game) error {
		left, err := leave(g)
		if err != nil {
			return err
		}
		change.Left = left.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// AddPIView records a persistent view; the name must be unused
func (s *service) AddPIView(ctx context.Context, view gamedomain.PIView) error {
	if view.Name == "" {
		return apperr.InvalidArgument("view name is required")
	}
	if view.ChannelID.IsZero() {
		return apperr.InvalidArgument("view channel is required")
	}
	return s.update(ctx, "add view", func(g *gamedomain.Game) error {
		return g.AddPIView(view)
	})
}

// RemovePIView forgets a player-info view
func (s *service) RemovePIView(ctx context.Context, name string) (*gamedomain.PIView, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("view name is required")
	}

	var removed gamedomain.PIView
	err := s.update(ctx, "remove view", func(g *gamedomain.Game) error {
		view, err := g.RemovePIView(name)
		removed = view
		return err
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
