package game

import (
	"math"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// Resource is a player's holding of one resource type
type Resource struct {
	Type         string `json:"resource_type" validate:"required"`
	Amount       int    `json:"resource_amt" validate:"gte=0"`
	Income       int    `json:"resource_income"`
	Max          int    `json:"resource_max" validate:"gte=-1"`
	IsCommodity  bool   `json:"is_commodity"`
	IsPerishable bool   `json:"is_perishable"`
}

// NewResource instantiates a resource from its definition
func NewResource(def catalog.ResourceDefinition, amount, income int) Resource {
	return Resource{
		Type:         def.Name,
		Amount:       clamp(amount, 0, def.Max),
		Income:       income,
		Max:          def.Max,
		IsCommodity:  def.IsCommodity,
		IsPerishable: def.IsPerishable,
	}
}

// Attribute is a player's level in one attribute
type Attribute struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"gte=0"`
	MaxLevel int    `json:"max_level" validate:"gte=-1"`
}

// Player owns its resources, attributes, actions and items exclusively
type Player struct {
	ID              ID                       `json:"player_id" validate:"required"`
	DiscordName     string                   `json:"player_discord_name" validate:"required"`
	ModChannel      ID                       `json:"player_mod_channel"`
	Resources       []Resource               `json:"player_resources" validate:"dive"`
	Attributes      []Attribute              `json:"player_attributes" validate:"dive"`
	StatusModifiers []catalog.StatusModifier `json:"player_status_mods" validate:"dive"`
	Skills          []catalog.Skill          `json:"player_skills" validate:"dive"`
	Actions         []catalog.Action         `json:"player_actions" validate:"dive"`
	Items           []catalog.Item           `json:"player_items" validate:"dive"`
	IsDead          bool                     `json:"is_dead"`
}

// NewPlayer creates a living player with empty holdings
func NewPlayer(id ID, name string, modChannel ID) Player {
	return Player{
		ID:              id,
		DiscordName:     name,
		ModChannel:      modChannel,
		Resources:       []Resource{},
		Attributes:      []Attribute{},
		StatusModifiers: []catalog.StatusModifier{},
		Skills:          []catalog.Skill{},
		Actions:         []catalog.Action{},
		Items:           []catalog.Item{},
	}
}

// GetAction finds an action by name among the player's own actions first,
// then among actions granted by carried items. The first match wins.
func (p *Player) GetAction(name string) *catalog.Action {
	for i := range p.Actions {
		if p.Actions[i].Name == name {
			return &p.Actions[i]
		}
	}
	for i := range p.Items {
		if p.Items[i].Action != nil && p.Items[i].Action.Name == name {
			return p.Items[i].Action
		}
	}
	return nil
}

// AddAction stores a copy of action; names are unique per player
func (p *Player) AddAction(action catalog.Action) error {
	for _, a := range p.Actions {
		if a.Name == action.Name {
			return apperr.AlreadyExistsf("player %s already has action %s", p.ID, action.Name).
				WithMeta("player_id", p.ID.String())
		}
	}
	p.Actions = append(p.Actions, action.Clone())
	return nil
}

// RemoveAction deletes the player's own action with the given name
func (p *Player) RemoveAction(name string) (catalog.Action, error) {
	for i, a := range p.Actions {
		if a.Name == name {
			p.Actions = append(p.Actions[:i], p.Actions[i+1:]...)
			return a, nil
		}
	}
	return catalog.Action{}, apperr.NotFoundf("player %s does not have action %s", p.ID, name).
		WithMeta("player_id", p.ID.String())
}

// GetItem finds a carried item by name
func (p *Player) GetItem(name string) *catalog.Item {
	for i := range p.Items {
		if p.Items[i].Name == name {
			return &p.Items[i]
		}
	}
	return nil
}

// AddItem stores a copy of item; names are unique per player
func (p *Player) AddItem(item catalog.Item) error {
	if p.GetItem(item.Name) != nil {
		return apperr.AlreadyExistsf("player %s already has item %s", p.ID, item.Name).
			WithMeta("player_id", p.ID.String())
	}
	p.Items = append(p.Items, item.Clone())
	return nil
}

// RemoveItem deletes the carried item with the given name and returns it
func (p *Player) RemoveItem(name string) (catalog.Item, error) {
	for i, item := range p.Items {
		if item.Name == name {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return item, nil
		}
	}
	return catalog.Item{}, apperr.NotFoundf("player %s does not have item %s", p.ID, name).
		WithMeta("player_id", p.ID.String())
}

// ItemActions lists the actions granted through carried items
func (p *Player) ItemActions() []catalog.ItemAction {
	var out []catalog.ItemAction
	for i := range p.Items {
		if p.Items[i].Action != nil {
			out = append(out, catalog.ItemAction{ItemName: p.Items[i].Name, Action: p.Items[i].Action})
		}
	}
	return out
}

// GetResource finds a resource by type
func (p *Player) GetResource(name string) *Resource {
	for i := range p.Resources {
		if p.Resources[i].Type == name {
			return &p.Resources[i]
		}
	}
	return nil
}

// ModifyResource adds delta saturating into [0, max].
// An undefined resource is left alone and ok is false.
func (p *Player) ModifyResource(name string, delta int) (amount int, ok bool) {
	r := p.GetResource(name)
	if r == nil {
		return 0, false
	}
	r.Amount = clamp(r.Amount, delta, r.Max)
	return r.Amount, true
}

// GetAttribute finds an attribute by name
func (p *Player) GetAttribute(name string) *Attribute {
	for i := range p.Attributes {
		if p.Attributes[i].Name == name {
			return &p.Attributes[i]
		}
	}
	return nil
}

// ModifyAttribute adds delta saturating into [0, max_level].
// An undefined attribute is left alone and ok is false.
func (p *Player) ModifyAttribute(name string, delta int) (level int, ok bool) {
	a := p.GetAttribute(name)
	if a == nil {
		return 0, false
	}
	a.Level = clamp(a.Level, delta, a.MaxLevel)
	return a.Level, true
}

// AddResourceFromDefinition gives a player a new resource holding
func (p *Player) AddResourceFromDefinition(def catalog.ResourceDefinition, amount, income int) bool {
	if p.GetResource(def.Name) != nil {
		return false
	}
	p.Resources = append(p.Resources, NewResource(def, amount, income))
	return true
}

// AddAttributeFromDefinition gives a player a new attribute
func (p *Player) AddAttributeFromDefinition(def catalog.AttributeDefinition, level int) bool {
	if p.GetAttribute(def.Name) != nil {
		return false
	}
	p.Attributes = append(p.Attributes, Attribute{
		Name:     def.Name,
		Level:    clamp(level, 0, def.Max),
		MaxLevel: def.Max,
	})
	return true
}

// equippedCount counts equipped items of the given type
func (p *Player) equippedCount(itemType string) int {
	n := 0
	for _, item := range p.Items {
		if item.IsEquipped && item.Type == itemType {
			n++
		}
	}
	return n
}

// SetEquipped equips or unequips an item, honouring the type's limits
func (p *Player) SetEquipped(name string, equip bool, def *catalog.ItemTypeDefinition) error {
	item := p.GetItem(name)
	if item == nil {
		return apperr.NotFoundf("player %s does not have item %s", p.ID, name)
	}
	if !equip {
		item.IsEquipped = false
		return nil
	}
	if item.IsEquipped {
		return nil
	}
	if def == nil || !def.IsEquippable {
		return apperr.InvalidArgumentf("items of type %s cannot be equipped", item.Type)
	}
	if def.MaxEquippable != catalog.Unbounded && p.equippedCount(item.Type) >= def.MaxEquippable {
		return apperr.InvalidTransitionf("player %s already has %d %s equipped", p.ID, def.MaxEquippable, item.Type)
	}
	item.IsEquipped = true
	return nil
}

// clamp adds delta to current without overflow and bounds the result to
// [0, max], or [0, inf) when max is unbounded
func clamp(current, delta, max int) int {
	var next int
	switch {
	case delta > 0 && current > math.MaxInt-delta:
		next = math.MaxInt
	case delta < 0 && current < math.MinInt-delta:
		next = math.MinInt
	default:
		next = current + delta
	}

	if next < 0 {
		return 0
	}
	if max != catalog.Unbounded && next > max {
		return max
	}
	return next
}
