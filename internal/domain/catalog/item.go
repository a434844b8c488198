package catalog

// Item is a catalog template and a carried instance; it may grant one action
type Item struct {
	Name        string  `json:"item_name" validate:"required"`
	Type        string  `json:"item_type" validate:"required"`
	Subtype     *string `json:"item_subtype"`
	Rarity      *string `json:"item_rarity"`
	Properties  *string `json:"item_properties"`
	Description *string `json:"item_desc"`
	IsEquipped  bool    `json:"is_equipped"`
	Action      *Action `json:"item_action"`
}

// Clone returns an independent copy, including the bound action
func (i Item) Clone() Item {
	i.Subtype = cloneString(i.Subtype)
	i.Rarity = cloneString(i.Rarity)
	i.Properties = cloneString(i.Properties)
	i.Description = cloneString(i.Description)
	if i.Action != nil {
		action := i.Action.Clone()
		i.Action = &action
	}
	return i
}

// ItemAction pairs an action with the item granting it
type ItemAction struct {
	ItemName string
	Action   *Action
}
