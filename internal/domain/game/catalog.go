package game

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// GetAction finds a catalog action by name
func (g *Game) GetAction(name string) *catalog.Action {
	for i := range g.Actions {
		if g.Actions[i].Name == name {
			return &g.Actions[i]
		}
	}
	return nil
}

// GetItem finds a catalog item by name
func (g *Game) GetItem(name string) *catalog.Item {
	for i := range g.Items {
		if g.Items[i].Name == name {
			return &g.Items[i]
		}
	}
	return nil
}

// ItemActions lists the actions bound to catalog items
func (g *Game) ItemActions() []catalog.ItemAction {
	var out []catalog.ItemAction
	for i := range g.Items {
		if g.Items[i].Action != nil {
			out = append(out, catalog.ItemAction{ItemName: g.Items[i].Name, Action: g.Items[i].Action})
		}
	}
	return out
}

// GetAttributeDefinition finds an attribute definition by name
func (g *Game) GetAttributeDefinition(name string) *catalog.AttributeDefinition {
	for i := range g.AttributeDefs {
		if g.AttributeDefs[i].Name == name {
			return &g.AttributeDefs[i]
		}
	}
	return nil
}

// GetResourceDefinition finds a resource definition by name
func (g *Game) GetResourceDefinition(name string) *catalog.ResourceDefinition {
	for i := range g.ResourceDefs {
		if g.ResourceDefs[i].Name == name {
			return &g.ResourceDefs[i]
		}
	}
	return nil
}

// GetItemTypeDefinition finds an item type definition
func (g *Game) GetItemTypeDefinition(itemType string) *catalog.ItemTypeDefinition {
	for i := range g.ItemTypeDefs {
		if g.ItemTypeDefs[i].Type == itemType {
			return &g.ItemTypeDefs[i]
		}
	}
	return nil
}

// GetActionTypeDefinition finds an action type definition
func (g *Game) GetActionTypeDefinition(actionType string) *catalog.ActionTypeDefinition {
	for i := range g.ActionTypeDefs {
		if g.ActionTypeDefs[i].Type == actionType {
			return &g.ActionTypeDefs[i]
		}
	}
	return nil
}

// GetSkill finds a skill by name
func (g *Game) GetSkill(name string) *catalog.Skill {
	for i := range g.Skills {
		if g.Skills[i].Name == name {
			return &g.Skills[i]
		}
	}
	return nil
}

// GetStatusModifier finds a status modifier by name
func (g *Game) GetStatusModifier(name string) *catalog.StatusModifier {
	for i := range g.StatusModifiers {
		if g.StatusModifiers[i].Name == name {
			return &g.StatusModifiers[i]
		}
	}
	return nil
}

// ReplaceCatalogActions swaps the catalog actions; names must be unique
func (g *Game) ReplaceCatalogActions(actions []catalog.Action) error {
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if seen[a.Name] {
			return apperr.AlreadyExistsf("duplicate catalog action %s", a.Name)
		}
		seen[a.Name] = true
	}
	g.Actions = actions
	return nil
}

// ReplaceCatalogItems swaps the catalog items; names must be unique
func (g *Game) ReplaceCatalogItems(items []catalog.Item) error {
	seen := make(map[string]bool, len(items))
	for _, i := range items {
		if seen[i.Name] {
			return apperr.AlreadyExistsf("duplicate catalog item %s", i.Name)
		}
		seen[i.Name] = true
	}
	g.Items = items
	return nil
}
