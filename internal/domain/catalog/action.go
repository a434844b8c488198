package catalog

// ResourceCost is what submitting an action deducts from a player
type ResourceCost struct {
	ResourceName string `json:"res_name" validate:"required"`
	Amount       int    `json:"amount" validate:"gte=0"`
}

// Action is a template in the catalog and a live instance on a player.
// Uses is Unbounded for unlimited, zero when exhausted, otherwise remaining.
type Action struct {
	Name             string         `json:"action_name" validate:"required"`
	Type             *string        `json:"action_type"`
	Timing           *string        `json:"action_timing"`
	Costs            []ResourceCost `json:"action_costs" validate:"dive"`
	Uses             int            `json:"action_uses" validate:"gte=-1"`
	Classes          []string       `json:"action_classes"`
	LevelRequirement int            `json:"action_level_req"`
	Priority         *int           `json:"action_priority"`
	Description      string         `json:"action_desc"`
}

// Unlimited reports whether the action never runs out
func (a *Action) Unlimited() bool {
	return a.Uses == Unbounded
}

// HasClass reports whether class is one of the action's classes
func (a *Action) HasClass(class string) bool {
	for _, c := range a.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Clone returns an independent copy
func (a Action) Clone() Action {
	a.Type = cloneString(a.Type)
	a.Timing = cloneString(a.Timing)
	a.Costs = cloneSlice(a.Costs)
	a.Classes = cloneSlice(a.Classes)
	a.Priority = cloneInt(a.Priority)
	return a
}

// NewAction builds an unlimited action with defaults applied
func NewAction(name, description string) Action {
	return Action{
		Name:        name,
		Uses:        Unbounded,
		Description: description,
	}
}
