package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

func (h *Handler) addInventoryCommands() {
	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "items-player-add",
		Description: "Gives a catalog item to a player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Receiving player", true),
			stringOpt("item", "Item name", true),
		},
	}), h.itemsPlayerAdd)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "items-player-remove",
		Description: "Removes an item from a player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player holding the item", true),
			stringOpt("item", "Item name", true),
		},
	}), h.itemsPlayerRemove)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "items-transfer-player",
		Description: "Transfers an item from one player to another player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Sending player", true),
			userOpt("recipient_player", "Receiving player", true),
			stringOpt("item", "Item name", true),
		},
	}), h.itemsTransferPlayer)

	h.add(&discordgo.ApplicationCommand{
		Name:        "items-send-to-player",
		Description: "Send one of your items to another player",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("item", "Item name", true),
			userOpt("player", "Receiving player", true),
		},
	}, h.itemsSendToPlayer)

	h.add(&discordgo.ApplicationCommand{
		Name:        "items-equip",
		Description: "Equip or unequip one of your items",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("item", "Item name", true),
			boolOpt("equip", "False to unequip"),
		},
	}, h.itemsEquip)

	h.add(&discordgo.ApplicationCommand{
		Name:        "items-handbook-view",
		Description: "Lists catalog items, optionally filtered",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("item_type", "Part of the item type", false),
			stringOpt("rarity", "Exact rarity", false),
		},
	}, h.itemsHandbookView)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-player-add",
		Description: "Adds a catalog action to a player's action list",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Receiving player", true),
			stringOpt("action", "Action name", true),
		},
	}), h.actionsPlayerAdd)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-player-remove",
		Description: "Removes an action from a player's action list",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player holding the action", true),
			stringOpt("action", "Action name", true),
		},
	}), h.actionsPlayerRemove)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-player-add-uses",
		Description: "Adds uses to a player's action",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player holding the action", true),
			stringOpt("action", "Action name", true),
			intOpt("uses", "Uses to add", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.adjustActionUses(ctx, req, 1)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-player-remove-uses",
		Description: "Removes uses from a player's action",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player holding the action", true),
			stringOpt("action", "Action name", true),
			intOpt("uses", "Uses to remove", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.adjustActionUses(ctx, req, -1)
	})

	h.add(&discordgo.ApplicationCommand{
		Name:        "actions-available-view",
		Description: "Lists catalog actions, optionally filtered",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("class", "Class that may take the action", false),
			stringOpt("timing", "When the action resolves", false),
		},
	}, h.actionsAvailableView)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "attribute-player-add",
		Description: "Raises a player's attribute level",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to change", true),
			stringOpt("attribute", "Attribute name", true),
			intOpt("amount", "Levels to add", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.modifyAttribute(ctx, req, 1)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "attribute-player-remove",
		Description: "Lowers a player's attribute level",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to change", true),
			stringOpt("attribute", "Attribute name", true),
			intOpt("amount", "Levels to remove", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.modifyAttribute(ctx, req, -1)
	})
}

// playerAndName reads the common player plus entry name options
func playerAndName(req *Request, player, name string) (gamedomain.ID, string, error) {
	id, err := req.requiredID(player)
	if err != nil {
		return gamedomain.NoID, "", err
	}
	value, err := req.requiredStr(name)
	if err != nil {
		return gamedomain.NoID, "", err
	}
	return id, value, nil
}

func (h *Handler) itemsPlayerAdd(ctx context.Context, req *Request) (*Response, error) {
	id, item, err := playerAndName(req, "player", "item")
	if err != nil {
		return nil, err
	}
	if err := h.service.GiveItem(ctx, id, item); err != nil {
		return nil, err
	}
	return reply("Gave %s to <@%s>", item, id), nil
}

func (h *Handler) itemsPlayerRemove(ctx context.Context, req *Request) (*Response, error) {
	id, item, err := playerAndName(req, "player", "item")
	if err != nil {
		return nil, err
	}
	if err := h.service.TakeItem(ctx, id, item); err != nil {
		return nil, err
	}
	return reply("Removed %s from <@%s>", item, id), nil
}

func (h *Handler) itemsTransferPlayer(ctx context.Context, req *Request) (*Response, error) {
	from, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	to, err := req.requiredID("recipient_player")
	if err != nil {
		return nil, err
	}
	item, err := req.requiredStr("item")
	if err != nil {
		return nil, err
	}

	err = h.service.TransferItem(ctx, &gameService.TransferInput{From: from, To: to, Name: item})
	if err != nil {
		return nil, err
	}
	return reply("Transferred %s from <@%s> to <@%s>", item, from, to), nil
}

func (h *Handler) itemsSendToPlayer(ctx context.Context, req *Request) (*Response, error) {
	to, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	item, err := req.requiredStr("item")
	if err != nil {
		return nil, err
	}

	err = h.service.TransferItem(ctx, &gameService.TransferInput{
		From:     req.UserID,
		To:       to,
		Name:     item,
		ByPlayer: true,
	})
	if err != nil {
		return nil, err
	}
	return reply("Sent %s to <@%s>", item, to), nil
}

func (h *Handler) itemsEquip(ctx context.Context, req *Request) (*Response, error) {
	item, err := req.requiredStr("item")
	if err != nil {
		return nil, err
	}
	equip := req.boolean("equip", true)

	if err := h.service.EquipItem(ctx, req.UserID, item, equip); err != nil {
		return nil, err
	}
	if equip {
		return reply("Equipped %s", item), nil
	}
	return reply("Unequipped %s", item), nil
}

func (h *Handler) itemsHandbookView(ctx context.Context, req *Request) (*Response, error) {
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}

	items := g.Items
	filter := catalog.ItemFilter{Type: req.str("item_type"), Rarity: req.str("rarity")}
	if filter.Type != "" || filter.Rarity != "" {
		items = catalog.FilterItems(items, filter)
	}
	if len(items) == 0 {
		return reply("No items found"), nil
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%s)", item.Name, item.Type))
	}
	return reply("%s", strings.Join(lines, "\n")), nil
}

func (h *Handler) actionsPlayerAdd(ctx context.Context, req *Request) (*Response, error) {
	id, action, err := playerAndName(req, "player", "action")
	if err != nil {
		return nil, err
	}
	if err := h.service.GiveAction(ctx, id, action); err != nil {
		return nil, err
	}
	return reply("Gave action %s to <@%s>", action, id), nil
}

func (h *Handler) actionsPlayerRemove(ctx context.Context, req *Request) (*Response, error) {
	id, action, err := playerAndName(req, "player", "action")
	if err != nil {
		return nil, err
	}
	if err := h.service.TakeAction(ctx, id, action); err != nil {
		return nil, err
	}
	return reply("Removed action %s from <@%s>", action, id), nil
}

func (h *Handler) adjustActionUses(ctx context.Context, req *Request, sign int) (*Response, error) {
	id, action, err := playerAndName(req, "player", "action")
	if err != nil {
		return nil, err
	}
	uses := req.integer("uses", 0)
	if uses < 1 {
		return nil, apperr.InvalidArgument("uses must be positive")
	}

	remaining, err := h.service.AdjustActionUses(ctx, id, action, sign*uses)
	if err != nil {
		return nil, err
	}
	return reply("<@%s> now has %d use(s) of %s", id, remaining, action), nil
}

func (h *Handler) actionsAvailableView(ctx context.Context, req *Request) (*Response, error) {
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}

	actions := g.Actions
	filter := catalog.ActionFilter{Class: req.str("class"), Timing: req.str("timing")}
	if filter.Class != "" || filter.Timing != "" {
		actions = catalog.FilterActions(actions, filter)
	}
	if len(actions) == 0 {
		return reply("No actions found"), nil
	}

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, describeAction(a))
	}
	return reply("%s", strings.Join(lines, "\n")), nil
}

func describeAction(a catalog.Action) string {
	uses := "unlimited"
	if a.Uses != catalog.Unbounded {
		uses = fmt.Sprintf("%d use(s)", a.Uses)
	}
	line := fmt.Sprintf("%s (%s)", a.Name, uses)
	for _, cost := range a.Costs {
		line += fmt.Sprintf(", %d %s", cost.Amount, cost.ResourceName)
	}
	return line
}

func (h *Handler) modifyAttribute(ctx context.Context, req *Request, sign int) (*Response, error) {
	id, name, err := playerAndName(req, "player", "attribute")
	if err != nil {
		return nil, err
	}
	amount := req.integer("amount", 0)
	if amount < 1 {
		return nil, apperr.InvalidArgument("amount must be positive")
	}

	adj, err := h.service.ModifyAttribute(ctx, id, name, sign*amount)
	if err != nil {
		return nil, err
	}
	if !adj.Applied {
		return reply("<@%s> has no attribute %s", id, name), nil
	}
	return reply("<@%s> now has %s %d", id, name, adj.Value), nil
}

func bounded(value, limit int) string {
	if limit == catalog.Unbounded {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("%d/%d", value, limit)
}
