package seed

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	"go.uber.org/zap"
)

// Catalog is the reference data players are resolved against
type Catalog struct {
	AttributeDefs   []catalog.AttributeDefinition
	ResourceDefs    []catalog.ResourceDefinition
	ItemTypeDefs    []catalog.ItemTypeDefinition
	ActionTypeDefs  []catalog.ActionTypeDefinition
	Skills          []catalog.Skill
	StatusModifiers []catalog.StatusModifier
	Actions         []catalog.Action
	Items           []catalog.Item
}

// ReadPlayersFile reads player_id, name, mod_channel, attributes
// ("name:level;"), resources ("name:amount:income;"), skills,
// status_modifiers, actions and items (";"-joined names). Names missing
// from the catalog are logged and left out.
func (l *Loader) ReadPlayersFile(path string, cat *Catalog) ([]game.Player, error) {
	if cat == nil {
		cat = &Catalog{}
	}
	attributes := MapAttributeDefinitions(cat.AttributeDefs)
	resources := MapResourceDefinitions(cat.ResourceDefs)
	skills := MapSkills(cat.Skills)
	statusMods := MapStatusModifiers(cat.StatusModifiers)
	actions := MapActions(cat.Actions)
	items := MapItems(cat.Items)

	var out []game.Player
	err := l.each(path, func(r row) error {
		id, err := r.require("player_id")
		if err != nil {
			return err
		}
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return fmt.Errorf("invalid player_id %q", id)
		}
		name, err := r.require("name")
		if err != nil {
			return err
		}
		p := game.NewPlayer(game.ID(id), name, game.ID(r.str("mod_channel")))
		unknown := func(kind, value string) {
			l.logger.Warn("player references an undefined entry",
				zap.String("player_id", id),
				zap.String("kind", kind),
				zap.String("name", value))
		}

		attributeEntries, err := r.pairs("attributes", 2)
		if err != nil {
			return err
		}
		for _, e := range attributeEntries {
			level, err := atoi("attributes", e[1])
			if err != nil {
				return err
			}
			def, ok := attributes[e[0]]
			if !ok {
				unknown("attribute", e[0])
				continue
			}
			p.AddAttributeFromDefinition(def, level)
		}

		resourceEntries, err := r.pairs("resources", 3)
		if err != nil {
			return err
		}
		for _, e := range resourceEntries {
			amount, err := atoi("resources", e[1])
			if err != nil {
				return err
			}
			income, err := atoi("resources", e[2])
			if err != nil {
				return err
			}
			def, ok := resources[e[0]]
			if !ok {
				unknown("resource", e[0])
				continue
			}
			p.AddResourceFromDefinition(def, amount, income)
		}

		for _, n := range r.list("skills") {
			if s, ok := skills[n]; ok {
				p.Skills = append(p.Skills, s.Clone())
			} else {
				unknown("skill", n)
			}
		}
		for _, n := range r.list("status_modifiers") {
			if m, ok := statusMods[n]; ok {
				p.StatusModifiers = append(p.StatusModifiers, m.Clone())
			} else {
				unknown("status_modifier", n)
			}
		}
		for _, n := range r.list("actions") {
			a, ok := actions[n]
			if !ok {
				unknown("action", n)
				continue
			}
			if err := p.AddAction(a); err != nil {
				l.logger.Warn("duplicate player action", zap.String("player_id", id), zap.Error(err))
			}
		}
		for _, n := range r.list("items") {
			i, ok := items[n]
			if !ok {
				unknown("item", n)
				continue
			}
			if err := p.AddItem(i); err != nil {
				l.logger.Warn("duplicate player item", zap.String("player_id", id), zap.Error(err))
			}
		}

		out = append(out, p)
		return nil
	})
	return out, err
}
