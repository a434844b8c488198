package game

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// TransferResource moves amount of a commodity from one player to another.
// Everything is checked before either player changes.
func (g *Game) TransferResource(from, to ID, name string, amount int) error {
	if amount <= 0 {
		return apperr.InvalidArgumentf("transfer amount must be positive, got %d", amount)
	}
	if from == to {
		return apperr.InvalidArgument("cannot transfer to the same player")
	}
	sender, err := g.MustGetPlayer(from)
	if err != nil {
		return err
	}
	receiver, err := g.MustGetPlayer(to)
	if err != nil {
		return err
	}

	sent := sender.GetResource(name)
	if sent == nil {
		return apperr.NotFoundf("resource %s not defined for player %s", name, sender.DiscordName)
	}
	if !sent.IsCommodity {
		return apperr.InvalidArgumentf("resource %s is not a commodity", name)
	}
	if amount > sent.Amount {
		return apperr.InvalidArgumentf("amount %d exceeds the %d %s held by %s", amount, sent.Amount, name, sender.DiscordName)
	}
	if receiver.GetResource(name) == nil {
		return apperr.NotFoundf("resource %s not defined for player %s", name, receiver.DiscordName)
	}

	sender.ModifyResource(name, -amount)
	receiver.ModifyResource(name, amount)
	return nil
}

// PlayerTransferResource is TransferResource started by the sending player
func (g *Game) PlayerTransferResource(from, to ID, name string, amount int) error {
	if err := g.requireOpen(FlagResourcesLocked, "resource transferring"); err != nil {
		return err
	}
	if _, err := g.requireLiving(from); err != nil {
		return err
	}
	return g.TransferResource(from, to, name, amount)
}

// TransferItem moves an item between players, unequipping it on the way
func (g *Game) TransferItem(from, to ID, name string) error {
	if from == to {
		return apperr.InvalidArgument("cannot transfer to the same player")
	}
	sender, err := g.MustGetPlayer(from)
	if err != nil {
		return err
	}
	receiver, err := g.MustGetPlayer(to)
	if err != nil {
		return err
	}
	if sender.GetItem(name) == nil {
		return apperr.NotFoundf("player %s does not have item %s", sender.DiscordName, name)
	}
	if receiver.GetItem(name) != nil {
		return apperr.AlreadyExistsf("player %s already has item %s", receiver.DiscordName, name)
	}

	item, err := sender.RemoveItem(name)
	if err != nil {
		return err
	}
	item.IsEquipped = false
	receiver.Items = append(receiver.Items, item)
	return nil
}

// PlayerTransferItem is TransferItem started by the sending player
func (g *Game) PlayerTransferItem(from, to ID, name string) error {
	if err := g.requireOpen(FlagItemsLocked, "item transferring"); err != nil {
		return err
	}
	if _, err := g.requireLiving(from); err != nil {
		return err
	}
	return g.TransferItem(from, to, name)
}

// GiveItem copies a catalog item to a player
func (g *Game) GiveItem(id ID, name string) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	item := g.GetItem(name)
	if item == nil {
		return apperr.NotFoundf("item %s is not in the catalog", name)
	}
	return p.AddItem(*item)
}

// TakeItem removes an item from a player
func (g *Game) TakeItem(id ID, name string) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	_, err = p.RemoveItem(name)
	return err
}

// GiveAction copies a catalog action to a player
func (g *Game) GiveAction(id ID, name string) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	action := g.GetAction(name)
	if action == nil {
		return apperr.NotFoundf("action %s is not in the catalog", name)
	}
	return p.AddAction(*action)
}

// TakeAction removes an action from a player
func (g *Game) TakeAction(id ID, name string) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	_, err = p.RemoveAction(name)
	return err
}

// AdjustActionUses adds delta uses to a limited action, never below zero
func (g *Game) AdjustActionUses(id ID, name string, delta int) (int, error) {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return 0, err
	}
	action := p.GetAction(name)
	if action == nil {
		return 0, apperr.NotFoundf("player %s does not have action %s", p.DiscordName, name)
	}
	if action.Unlimited() {
		return 0, apperr.InvalidTransitionf("action %s has unlimited uses", name)
	}
	action.Uses = clamp(action.Uses, delta, catalog.Unbounded)
	return action.Uses, nil
}

// SubmitAction spends one use and pays every cost of the action.
// Nothing changes unless the player can afford all of it.
func (g *Game) SubmitAction(id ID, name string) (*catalog.Action, error) {
	p, err := g.requireLiving(id)
	if err != nil {
		return nil, err
	}
	action := p.GetAction(name)
	if action == nil {
		return nil, apperr.NotFoundf("player %s does not have action %s", p.DiscordName, name)
	}
	if !action.Unlimited() && action.Uses <= 0 {
		return nil, apperr.InvalidTransitionf("no remaining uses for action %s", name)
	}

	need := make(map[string]int, len(action.Costs))
	for _, cost := range action.Costs {
		need[cost.ResourceName] += cost.Amount
	}
	for resource, amount := range need {
		r := p.GetResource(resource)
		if r == nil {
			return nil, apperr.NotFoundf("resource %s not defined for player %s", resource, p.DiscordName)
		}
		if r.Amount < amount {
			return nil, apperr.InvalidTransitionf("insufficient %s for action %s: need %d, have %d", resource, name, amount, r.Amount).
				WithMeta("resource", resource)
		}
	}

	if !action.Unlimited() {
		action.Uses--
	}
	for _, cost := range action.Costs {
		p.ModifyResource(cost.ResourceName, -cost.Amount)
	}
	return action, nil
}

// EquipItem equips or unequips a player's item
func (g *Game) EquipItem(id ID, name string, equip bool) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	item := p.GetItem(name)
	if item == nil {
		return apperr.NotFoundf("player %s does not have item %s", p.DiscordName, name)
	}
	var def *catalog.ItemTypeDefinition
	if equip {
		def = g.GetItemTypeDefinition(item.Type)
		if def == nil {
			return apperr.NotFoundf("item type %s is not defined", item.Type)
		}
	}
	return p.SetEquipped(name, equip, def)
}
