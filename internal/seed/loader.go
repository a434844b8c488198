// Package seed reads the catalog and seed CSV files a game is initialized
// from. Loading is best effort: malformed rows are logged and skipped.
package seed

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	"go.uber.org/zap"
)

// Loader reads seed files
type Loader struct {
	logger *zap.Logger
}

// LoaderConfig holds configuration for the loader
type LoaderConfig struct {
	Logger *zap.Logger // Optional, defaults to a no-op logger
}

// NewLoader creates a new seed loader
func NewLoader(cfg *LoaderConfig) *Loader {
	logger := zap.NewNop()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &Loader{logger: logger.Named("seed")}
}

// each reads path and calls fn per row, logging rows fn rejects
func (l *Loader) each(path string, fn func(r row) error) error {
	skip := func(line int, err error) {
		l.logger.Warn("skipping malformed seed row",
			zap.String("path", path),
			zap.Int("line", line),
			zap.Error(err))
	}

	rows, err := readRows(path, skip)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := fn(r); err != nil {
			skip(r.line, err)
		}
	}
	return nil
}

// ReadAttributeDefinitionsFile reads attribute_name, attribute_max, emoji_text
func (l *Loader) ReadAttributeDefinitionsFile(path string) ([]catalog.AttributeDefinition, error) {
	var out []catalog.AttributeDefinition
	err := l.each(path, func(r row) error {
		name, err := r.require("attribute_name")
		if err != nil {
			return err
		}
		limit, err := r.intOr("attribute_max", catalog.Unbounded)
		if err != nil {
			return err
		}
		out = append(out, catalog.AttributeDefinition{Name: name, Max: limit, EmojiText: r.opt("emoji_text")})
		return nil
	})
	return out, err
}

// ReadResourceDefinitionsFile reads resource_name, resource_max,
// is_commodity, is_perishable, emoji_text
func (l *Loader) ReadResourceDefinitionsFile(path string) ([]catalog.ResourceDefinition, error) {
	var out []catalog.ResourceDefinition
	err := l.each(path, func(r row) error {
		name, err := r.require("resource_name")
		if err != nil {
			return err
		}
		limit, err := r.intOr("resource_max", catalog.Unbounded)
		if err != nil {
			return err
		}
		commodity, err := r.boolOr("is_commodity", false)
		if err != nil {
			return err
		}
		perishable, err := r.boolOr("is_perishable", false)
		if err != nil {
			return err
		}
		out = append(out, catalog.ResourceDefinition{
			Name:         name,
			Max:          limit,
			IsCommodity:  commodity,
			IsPerishable: perishable,
			EmojiText:    r.opt("emoji_text"),
		})
		return nil
	})
	return out, err
}

// ReadItemTypeDefinitionsFile reads item_type, is_equippable, max_equippable, emoji_text
func (l *Loader) ReadItemTypeDefinitionsFile(path string) ([]catalog.ItemTypeDefinition, error) {
	var out []catalog.ItemTypeDefinition
	err := l.each(path, func(r row) error {
		itemType, err := r.require("item_type")
		if err != nil {
			return err
		}
		equippable, err := r.boolOr("is_equippable", false)
		if err != nil {
			return err
		}
		limit, err := r.intOr("max_equippable", 0)
		if err != nil {
			return err
		}
		out = append(out, catalog.ItemTypeDefinition{
			Type:          itemType,
			IsEquippable:  equippable,
			MaxEquippable: limit,
			EmojiText:     r.opt("emoji_text"),
		})
		return nil
	})
	return out, err
}

// ReadActionTypeDefinitionsFile reads action_type, emoji_text
func (l *Loader) ReadActionTypeDefinitionsFile(path string) ([]catalog.ActionTypeDefinition, error) {
	var out []catalog.ActionTypeDefinition
	err := l.each(path, func(r row) error {
		actionType, err := r.require("action_type")
		if err != nil {
			return err
		}
		out = append(out, catalog.ActionTypeDefinition{Type: actionType, EmojiText: r.opt("emoji_text")})
		return nil
	})
	return out, err
}

// ReadSkillsFile reads skill_name, skill_req, skill_restrict, skill_desc,
// modifies_attributes ("att:mod;...")
func (l *Loader) ReadSkillsFile(path string) ([]catalog.Skill, error) {
	var out []catalog.Skill
	err := l.each(path, func(r row) error {
		name, err := r.require("skill_name")
		if err != nil {
			return err
		}
		mods, err := r.attributeModifiers("modifies_attributes")
		if err != nil {
			return err
		}
		out = append(out, catalog.Skill{
			Name:               name,
			Requirement:        r.opt("skill_req"),
			Restriction:        r.opt("skill_restrict"),
			Description:        r.str("skill_desc"),
			AttributeModifiers: mods,
		})
		return nil
	})
	return out, err
}

// ReadStatusModifiersFile reads modifier_type, modifier_name, modifier_desc,
// modifier_duration, modifier_stacks, modifies_attributes
func (l *Loader) ReadStatusModifiersFile(path string) ([]catalog.StatusModifier, error) {
	var out []catalog.StatusModifier
	err := l.each(path, func(r row) error {
		modType, err := r.require("modifier_type")
		if err != nil {
			return err
		}
		name, err := r.require("modifier_name")
		if err != nil {
			return err
		}
		duration, err := r.intOr("modifier_duration", catalog.Unbounded)
		if err != nil {
			return err
		}
		stacks, err := r.intOr("modifier_stacks", catalog.Unbounded)
		if err != nil {
			return err
		}
		mods, err := r.attributeModifiers("modifies_attributes")
		if err != nil {
			return err
		}
		out = append(out, catalog.StatusModifier{
			Type:               modType,
			Name:               name,
			Description:        r.opt("modifier_desc"),
			Duration:           duration,
			Stacks:             stacks,
			AttributeModifiers: mods,
		})
		return nil
	})
	return out, err
}

// ReadActionsFile reads action templates; action_costs is "gold:5;wood:2"
// and action_classes is "a;b"
func (l *Loader) ReadActionsFile(path string) ([]catalog.Action, error) {
	var out []catalog.Action
	err := l.each(path, func(r row) error {
		name, err := r.require("action_name")
		if err != nil {
			return err
		}
		entries, err := r.pairs("action_costs", 2)
		if err != nil {
			return err
		}
		costs := []catalog.ResourceCost{}
		for _, e := range entries {
			amount, err := atoi("action_costs", e[1])
			if err != nil {
				return err
			}
			costs = append(costs, catalog.ResourceCost{ResourceName: e[0], Amount: amount})
		}
		uses, err := r.intOr("action_uses", catalog.Unbounded)
		if err != nil {
			return err
		}
		level, err := r.intOr("action_level_req", 0)
		if err != nil {
			return err
		}
		priority, err := r.optInt("action_priority")
		if err != nil {
			return err
		}
		classes := r.list("action_classes")
		if classes == nil {
			classes = []string{}
		}
		out = append(out, catalog.Action{
			Name:             name,
			Type:             r.opt("action_type"),
			Timing:           r.opt("action_timing"),
			Costs:            costs,
			Uses:             uses,
			Classes:          classes,
			LevelRequirement: level,
			Priority:         priority,
			Description:      r.str("action_desc"),
		})
		return nil
	})
	return out, err
}

// ReadItemsFile reads item templates, binding action_name against actions
func (l *Loader) ReadItemsFile(path string, actions map[string]catalog.Action) ([]catalog.Item, error) {
	var out []catalog.Item
	err := l.each(path, func(r row) error {
		name, err := r.require("item_name")
		if err != nil {
			return err
		}
		itemType, err := r.require("item_type")
		if err != nil {
			return err
		}
		equipped, err := r.boolOr("is_equipped", false)
		if err != nil {
			return err
		}
		item := catalog.Item{
			Name:        name,
			Type:        itemType,
			Subtype:     r.opt("item_subtype"),
			Rarity:      r.opt("item_rarity"),
			Properties:  r.opt("item_properties"),
			Description: r.opt("item_desc"),
			IsEquipped:  equipped,
		}
		if actionName := r.str("action_name"); actionName != "" {
			if action, ok := actions[actionName]; ok {
				bound := action.Clone()
				item.Action = &bound
			} else {
				l.logger.Warn("item references an unknown action",
					zap.String("item", name),
					zap.String("action", actionName))
			}
		}
		out = append(out, item)
		return nil
	})
	return out, err
}

// ReadPartiesFile reads name, max_size (default -1), channel_id, player_ids ("a;b")
func (l *Loader) ReadPartiesFile(path string) ([]game.Party, error) {
	var out []game.Party
	err := l.each(path, func(r row) error {
		name, err := r.require("name")
		if err != nil {
			return err
		}
		channel, err := r.require("channel_id")
		if err != nil {
			return err
		}
		maxSize, err := r.intOr("max_size", catalog.Unbounded)
		if err != nil {
			return err
		}
		ids := []game.ID{}
		for _, id := range r.list("player_ids") {
			ids = append(ids, game.ID(id))
		}
		out = append(out, game.Party{
			PlayerIDs: ids,
			Name:      name,
			MaxSize:   maxSize,
			ChannelID: game.ID(channel),
		})
		return nil
	})
	return out, err
}
