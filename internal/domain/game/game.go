// Package game holds the game document: players, parties, rounds and the
// catalog, with the invariants every command relies on.
package game

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// Game is the root aggregate persisted as one document
type Game struct {
	IsActive        bool `json:"is_active"`
	PartiesLocked   bool `json:"parties_locked"`
	VotingLocked    bool `json:"voting_locked"`
	ItemsLocked     bool `json:"items_locked"`
	ResourcesLocked bool `json:"resources_locked"`

	Players []Player `json:"players" validate:"dive"`
	Parties []Party  `json:"parties" validate:"dive"`
	Rounds  []Round  `json:"rounds" validate:"dive"`

	ActionTypeDefs  []catalog.ActionTypeDefinition `json:"action_type_defs" validate:"dive"`
	ItemTypeDefs    []catalog.ItemTypeDefinition   `json:"item_type_defs" validate:"dive"`
	ResourceDefs    []catalog.ResourceDefinition   `json:"resource_defs" validate:"dive"`
	AttributeDefs   []catalog.AttributeDefinition  `json:"attribute_defs" validate:"dive"`
	Skills          []catalog.Skill                `json:"skills" validate:"dive"`
	StatusModifiers []catalog.StatusModifier       `json:"status_mods" validate:"dive"`
	Actions         []catalog.Action               `json:"actions" validate:"dive"`
	Items           []catalog.Item                 `json:"items" validate:"dive"`

	PIViews []PIView `json:"pi_views" validate:"dive"`
}

// New creates an inactive game with every lock engaged
func New() *Game {
	return &Game{
		PartiesLocked:   true,
		VotingLocked:    true,
		ItemsLocked:     true,
		ResourcesLocked: true,
		Players:         []Player{},
		Parties:         []Party{},
		Rounds:          []Round{},
		ActionTypeDefs:  []catalog.ActionTypeDefinition{},
		ItemTypeDefs:    []catalog.ItemTypeDefinition{},
		ResourceDefs:    []catalog.ResourceDefinition{},
		AttributeDefs:   []catalog.AttributeDefinition{},
		Skills:          []catalog.Skill{},
		StatusModifiers: []catalog.StatusModifier{},
		Actions:         []catalog.Action{},
		Items:           []catalog.Item{},
		PIViews:         []PIView{},
	}
}

// Flag names one of the global switches
type Flag string

const (
	FlagActive          Flag = "is_active"
	FlagPartiesLocked   Flag = "parties_locked"
	FlagVotingLocked    Flag = "voting_locked"
	FlagItemsLocked     Flag = "items_locked"
	FlagResourcesLocked Flag = "resources_locked"
)

// Flags lists every switch in document order
var Flags = []Flag{FlagActive, FlagPartiesLocked, FlagVotingLocked, FlagItemsLocked, FlagResourcesLocked}

func (g *Game) flag(f Flag) (*bool, error) {
	switch f {
	case FlagActive:
		return &g.IsActive, nil
	case FlagPartiesLocked:
		return &g.PartiesLocked, nil
	case FlagVotingLocked:
		return &g.VotingLocked, nil
	case FlagItemsLocked:
		return &g.ItemsLocked, nil
	case FlagResourcesLocked:
		return &g.ResourcesLocked, nil
	}
	return nil, apperr.InvalidArgumentf("unknown flag %q", f)
}

// Flag returns the value of a switch
func (g *Game) Flag(f Flag) (bool, error) {
	p, err := g.flag(f)
	if err != nil {
		return false, err
	}
	return *p, nil
}

// SetFlag sets a switch
func (g *Game) SetFlag(f Flag, value bool) error {
	p, err := g.flag(f)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// ToggleFlag flips a switch and returns its new value
func (g *Game) ToggleFlag(f Flag) (bool, error) {
	p, err := g.flag(f)
	if err != nil {
		return false, err
	}
	*p = !*p
	return *p, nil
}

// GetPlayer finds a player by id
func (g *Game) GetPlayer(id ID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// MustGetPlayer is GetPlayer returning NotFound when absent
func (g *Game) MustGetPlayer(id ID) (*Player, error) {
	p := g.GetPlayer(id)
	if p == nil {
		return nil, apperr.NotFoundf("player %s not found", id).WithMeta("player_id", id.String())
	}
	return p, nil
}

// AddPlayer registers a player; ids are unique
func (g *Game) AddPlayer(p Player) error {
	if p.ID.IsZero() {
		return apperr.InvalidArgument("player id is required")
	}
	if g.GetPlayer(p.ID) != nil {
		return apperr.AlreadyExistsf("player %s already exists", p.ID).WithMeta("player_id", p.ID.String())
	}
	g.Players = append(g.Players, p)
	return nil
}

// SetPlayerDead marks a player dead or alive
func (g *Game) SetPlayerDead(id ID, dead bool) error {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return err
	}
	p.IsDead = dead
	return nil
}

// LivingPlayerIDs lists the ids of players who are not dead
func (g *Game) LivingPlayerIDs() []ID {
	var ids []ID
	for _, p := range g.Players {
		if !p.IsDead {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// GetParty finds a party by its channel
func (g *Game) GetParty(channel ID) *Party {
	for i := range g.Parties {
		if g.Parties[i].ChannelID == channel {
			return &g.Parties[i]
		}
	}
	return nil
}

// GetPartyByName finds a party by name
func (g *Game) GetPartyByName(name string) *Party {
	for i := range g.Parties {
		if g.Parties[i].Name == name {
			return &g.Parties[i]
		}
	}
	return nil
}

// PlayerParty returns the party the player belongs to, if any
func (g *Game) PlayerParty(id ID) *Party {
	for i := range g.Parties {
		if g.Parties[i].HasPlayer(id) {
			return &g.Parties[i]
		}
	}
	return nil
}

// CreateParty adds an empty party; names and channels are unique
func (g *Game) CreateParty(name string, maxSize int, channel ID) error {
	if name == "" {
		return apperr.InvalidArgument("party name is required")
	}
	if channel.IsZero() {
		return apperr.InvalidArgument("party channel is required")
	}
	if maxSize < -1 || maxSize == 0 {
		return apperr.InvalidArgumentf("invalid party size %d", maxSize)
	}
	if g.GetPartyByName(name) != nil {
		return apperr.AlreadyExistsf("party %s already exists", name)
	}
	if g.GetParty(channel) != nil {
		return apperr.AlreadyExistsf("a party already uses channel %s", channel)
	}
	g.Parties = append(g.Parties, Party{
		PlayerIDs: []ID{},
		Name:      name,
		MaxSize:   maxSize,
		ChannelID: channel,
	})
	return nil
}

// AddPartyPlayer moves a player into the party on channel, leaving any
// previous party. Returns the party left, if any.
func (g *Game) AddPartyPlayer(channel, id ID) (*Party, error) {
	if _, err := g.MustGetPlayer(id); err != nil {
		return nil, err
	}
	target := g.GetParty(channel)
	if target == nil {
		return nil, apperr.NotFoundf("no party uses channel %s", channel)
	}
	if target.HasPlayer(id) {
		return nil, apperr.AlreadyExistsf("player %s is already in party %s", id, target.Name)
	}
	if target.IsFull() {
		return nil, apperr.InvalidTransitionf("party %s is already at max size of %d", target.Name, target.MaxSize)
	}

	previous := g.PlayerParty(id)
	if previous != nil {
		previous.PlayerIDs, _ = removeID(previous.PlayerIDs, id)
	}
	target.PlayerIDs = append(target.PlayerIDs, id)
	return previous, nil
}

// RemovePartyPlayer takes a player out of their party and returns it
func (g *Game) RemovePartyPlayer(id ID) (*Party, error) {
	party := g.PlayerParty(id)
	if party == nil {
		return nil, apperr.NotFoundf("player %s is not in a party", id)
	}
	party.PlayerIDs, _ = removeID(party.PlayerIDs, id)
	return party, nil
}

// requireOpen checks the game is active and the given lock is released
func (g *Game) requireOpen(lock Flag, what string) error {
	if !g.IsActive {
		return apperr.InvalidTransition("the game is currently inactive")
	}
	locked, err := g.Flag(lock)
	if err != nil {
		return err
	}
	if locked {
		return apperr.InvalidTransitionf("%s is currently locked", what)
	}
	return nil
}

// requireLiving returns the registered living player
func (g *Game) requireLiving(id ID) (*Player, error) {
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return nil, err
	}
	if p.IsDead {
		return nil, apperr.InvalidTransitionf("player %s is dead", id).WithMeta("player_id", id.String())
	}
	return p, nil
}

// JoinParty is the player-initiated AddPartyPlayer
func (g *Game) JoinParty(id, channel ID) (*Party, error) {
	if err := g.requireOpen(FlagPartiesLocked, "party membership"); err != nil {
		return nil, err
	}
	if _, err := g.requireLiving(id); err != nil {
		return nil, err
	}
	return g.AddPartyPlayer(channel, id)
}

// LeaveParty is the player-initiated RemovePartyPlayer
func (g *Game) LeaveParty(id ID) (*Party, error) {
	if err := g.requireOpen(FlagPartiesLocked, "party membership"); err != nil {
		return nil, err
	}
	if _, err := g.requireLiving(id); err != nil {
		return nil, err
	}
	return g.RemovePartyPlayer(id)
}

// GetPIView finds a persistent view by name
func (g *Game) GetPIView(name string) *PIView {
	for i := range g.PIViews {
		if g.PIViews[i].Name == name {
			return &g.PIViews[i]
		}
	}
	return nil
}

// AddPIView registers a persistent view; names are unique
func (g *Game) AddPIView(view PIView) error {
	if g.GetPIView(view.Name) != nil {
		return apperr.AlreadyExistsf("persistent view %s already exists", view.Name)
	}
	g.PIViews = append(g.PIViews, view)
	return nil
}

// RemovePIView deletes a persistent view and returns it
func (g *Game) RemovePIView(name string) (PIView, error) {
	for i, v := range g.PIViews {
		if v.Name == name {
			g.PIViews = append(g.PIViews[:i], g.PIViews[i+1:]...)
			return v, nil
		}
	}
	return PIView{}, apperr.NotFoundf("persistent view %s not found", name)
}
