// Package catalog holds the reference data a game is initialized from:
// definitions of attributes, resources, item and action types, plus the
// skill, status modifier, action and item templates copied onto players.
package catalog

// Unbounded marks a maximum, duration or stack count without a limit
const Unbounded = -1

// AttributeDefinition declares an attribute players may hold
type AttributeDefinition struct {
	Name      string  `json:"attribute_name" validate:"required"`
	Max       int     `json:"attribute_max" validate:"gte=-1"`
	EmojiText *string `json:"emoji_text"`
}

// ResourceDefinition declares a resource players may hold
type ResourceDefinition struct {
	Name         string  `json:"resource_name" validate:"required"`
	Max          int     `json:"resource_max" validate:"gte=-1"`
	IsCommodity  bool    `json:"is_commodity"`
	IsPerishable bool    `json:"is_perishable"`
	EmojiText    *string `json:"emoji_text"`
}

// ItemTypeDefinition declares an item type and how many may be equipped at once
type ItemTypeDefinition struct {
	Type          string  `json:"item_type" validate:"required"`
	IsEquippable  bool    `json:"is_equippable"`
	MaxEquippable int     `json:"max_equippable" validate:"gte=-1"`
	EmojiText     *string `json:"emoji_text"`
}

// ActionTypeDefinition declares an action type
type ActionTypeDefinition struct {
	Type      string  `json:"action_type" validate:"required"`
	EmojiText *string `json:"emoji_text"`
}

// AttributeModifier shifts an attribute by a fixed amount
type AttributeModifier struct {
	AttributeName string `json:"att_name" validate:"required"`
	Modification  int    `json:"modification"`
}

// Skill is a catalog entry copied onto a player when assigned
type Skill struct {
	Name               string              `json:"skill_name" validate:"required"`
	Requirement        *string             `json:"skill_req"`
	Restriction        *string             `json:"skill_restrict"`
	Description        string              `json:"skill_desc"`
	AttributeModifiers []AttributeModifier `json:"modifies_attributes" validate:"dive"`
}

// Clone returns an independent copy
func (s Skill) Clone() Skill {
	s.Requirement = cloneString(s.Requirement)
	s.Restriction = cloneString(s.Restriction)
	s.AttributeModifiers = cloneSlice(s.AttributeModifiers)
	return s
}

// StatusModifier is a buff or debuff; duration and stacks use Unbounded
type StatusModifier struct {
	Type               string              `json:"modifier_type" validate:"required"`
	Name               string              `json:"modifier_name" validate:"required"`
	Description        *string             `json:"modifier_desc"`
	Duration           int                 `json:"modifier_duration" validate:"gte=-1"`
	Stacks             int                 `json:"modifier_stacks" validate:"gte=-1"`
	AttributeModifiers []AttributeModifier `json:"modifies_attributes" validate:"dive"`
}

// Clone returns an independent copy
func (m StatusModifier) Clone() StatusModifier {
	m.Description = cloneString(m.Description)
	m.AttributeModifiers = cloneSlice(m.AttributeModifiers)
	return m
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

// cloneSlice keeps nil as nil so documents round-trip unchanged
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
