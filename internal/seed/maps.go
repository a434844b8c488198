package seed

import (
	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"go.uber.org/zap"
)

// MapBy keys entries by name; the first entry for a name wins
func MapBy[T any](entries []T, key func(T) string) map[string]T {
	out := make(map[string]T, len(entries))
	for _, e := range entries {
		if _, ok := out[key(e)]; !ok {
			out[key(e)] = e
		}
	}
	return out
}

func MapAttributeDefinitions(defs []catalog.AttributeDefinition) map[string]catalog.AttributeDefinition {
	return MapBy(defs, func(d catalog.AttributeDefinition) string { return d.Name })
}

func MapResourceDefinitions(defs []catalog.ResourceDefinition) map[string]catalog.ResourceDefinition {
	return MapBy(defs, func(d catalog.ResourceDefinition) string { return d.Name })
}

func MapItemTypeDefinitions(defs []catalog.ItemTypeDefinition) map[string]catalog.ItemTypeDefinition {
	return MapBy(defs, func(d catalog.ItemTypeDefinition) string { return d.Type })
}

func MapActionTypeDefinitions(defs []catalog.ActionTypeDefinition) map[string]catalog.ActionTypeDefinition {
	return MapBy(defs, func(d catalog.ActionTypeDefinition) string { return d.Type })
}

func MapSkills(skills []catalog.Skill) map[string]catalog.Skill {
	return MapBy(skills, func(s catalog.Skill) string { return s.Name })
}

func MapStatusModifiers(mods []catalog.StatusModifier) map[string]catalog.StatusModifier {
	return MapBy(mods, func(m catalog.StatusModifier) string { return m.Name })
}

func MapActions(actions []catalog.Action) map[string]catalog.Action {
	return MapBy(actions, func(a catalog.Action) string { return a.Name })
}

func MapItems(items []catalog.Item) map[string]catalog.Item {
	return MapBy(items, func(i catalog.Item) string { return i.Name })
}

// uniqueBy keeps the first entry per key and logs the dropped duplicates
func uniqueBy[T any](l *Loader, kind string, entries []T, key func(T) string) []T {
	seen := make(map[string]bool, len(entries))
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		k := key(e)
		if seen[k] {
			l.logger.Warn("skipping duplicate catalog entry", zap.String("kind", kind), zap.String("name", k))
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}
