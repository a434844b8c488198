package catalog

import "strings"

// ActionFilter selects actions; an action matches when any set field matches
type ActionFilter struct {
	Class            string
	Timing           string
	LevelRequirement int // zero means unset
}

// FilterActions returns the actions matching any criterion, in input order
func FilterActions(actions []Action, f ActionFilter) []Action {
	var out []Action
	for _, a := range actions {
		switch {
		case f.Class != "" && a.HasClass(f.Class):
		case f.Timing != "" && a.Timing != nil && *a.Timing == f.Timing:
		case f.LevelRequirement != 0 && a.LevelRequirement == f.LevelRequirement:
		default:
			continue
		}
		out = append(out, a)
	}
	return out
}

// ItemFilter selects items; Type matches as a substring of the item type
type ItemFilter struct {
	Type       string
	Subtype    string
	Rarity     string
	Properties string
}

// FilterItems returns the items matching any criterion, in input order
func FilterItems(items []Item, f ItemFilter) []Item {
	var out []Item
	for _, i := range items {
		switch {
		case f.Type != "" && strings.Contains(i.Type, f.Type):
		case f.Subtype != "" && equalPtr(i.Subtype, f.Subtype):
		case f.Rarity != "" && equalPtr(i.Rarity, f.Rarity):
		case f.Properties != "" && equalPtr(i.Properties, f.Properties):
		default:
			continue
		}
		out = append(out, i)
	}
	return out
}

// FilterStatusModifiers returns the modifiers whose type contains modifierType
func FilterStatusModifiers(mods []StatusModifier, modifierType string) []StatusModifier {
	var out []StatusModifier
	for _, m := range mods {
		if modifierType != "" && strings.Contains(m.Type, modifierType) {
			out = append(out, m)
		}
	}
	return out
}

func equalPtr(p *string, v string) bool {
	return p != nil && *p == v
}
