package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	actionViewName = "action_view"
	itemViewName   = "item_view"

	// maxPageLen keeps each posted page well under Discord's message limit
	maxPageLen = 1750
)

func (h *Handler) addViewCommands() {
	h.add(&discordgo.ApplicationCommand{
		Name:        "items-inventory-view",
		Description: "Displays all current items in your inventory",
	}, func(ctx context.Context, req *Request) (*Response, error) {
		return h.showPlayer(ctx, req.UserID, inventoryText)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "items-player-inventory-view",
		Description: "Displays all current items in the chosen player's inventory",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to show", true),
		},
	}), h.chosenPlayer(inventoryText))

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-player-view",
		Description: "Displays all current actions usable by the chosen player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to show", true),
		},
	}), h.chosenPlayer(playerActionsText))

	h.add(&discordgo.ApplicationCommand{
		Name:        "actions-handbook-view",
		Description: "Displays one action from the public handbook",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("action", "Action name", true),
		},
	}, h.actionsHandbookView)

	h.add(&discordgo.ApplicationCommand{
		Name:        "resource-view",
		Description: "Displays your current resources",
	}, func(ctx context.Context, req *Request) (*Response, error) {
		return h.showPlayer(ctx, req.UserID, resourcesText)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-player-view",
		Description: "Shows a player's resources",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to show", true),
		},
	}), h.chosenPlayer(resourcesText))

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-player-view-all",
		Description: "Displays every player's resources",
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.showAllPlayers(ctx, "resources", resourceSummary)
	})

	h.add(&discordgo.ApplicationCommand{
		Name:        "attribute-view",
		Description: "Displays your current attributes",
	}, func(ctx context.Context, req *Request) (*Response, error) {
		return h.showPlayer(ctx, req.UserID, attributesText)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "attribute-player-view",
		Description: "Shows a player's attributes",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to show", true),
		},
	}), h.chosenPlayer(attributesText))

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "attribute-player-view-all",
		Description: "Displays every player's attributes",
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.showAllPlayers(ctx, "attributes", attributeSummary)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "actions-generate-persistent-view",
		Description: "Posts a list of catalog actions that stays in the channel",
		Options: []*discordgo.ApplicationCommandOption{
			channelOpt("channel", "Channel to post in, defaults to this one", false),
			stringOpt("class", "Class that may take the action", false),
			stringOpt("timing", "When the action resolves", false),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		filter := catalog.ActionFilter{Class: req.str("class"), Timing: req.str("timing")}
		return h.generatePersistentView(ctx, req, actionViewName, "actions-available-view", func(g *gamedomain.Game) []string {
			return paginate("**Actions**", catalogActionLines(g, filter), "*<No actions!>*")
		})
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "items-generate-persistent-view",
		Description: "Posts a list of catalog items that stays in the channel",
		Options: []*discordgo.ApplicationCommandOption{
			channelOpt("channel", "Channel to post in, defaults to this one", false),
			stringOpt("item_type", "Part of the item type", false),
			stringOpt("rarity", "Exact rarity", false),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		filter := catalog.ItemFilter{Type: req.str("item_type"), Rarity: req.str("rarity")}
		return h.generatePersistentView(ctx, req, itemViewName, "items-handbook-view", func(g *gamedomain.Game) []string {
			items := g.Items
			if filter.Type != "" || filter.Rarity != "" {
				items = catalog.FilterItems(items, filter)
			}
			return paginate("**Items**", itemLines(sortedItems(items)), "*<No items!>*")
		})
	})
}

// chosenPlayer runs render against the player named by the player option
func (h *Handler) chosenPlayer(render func(p *gamedomain.Player) string) func(ctx context.Context, req *Request) (*Response, error) {
	return func(ctx context.Context, req *Request) (*Response, error) {
		id, err := req.requiredID("player")
		if err != nil {
			return nil, err
		}
		return h.showPlayer(ctx, id, render)
	}
}

func (h *Handler) showPlayer(ctx context.Context, id gamedomain.ID, render func(p *gamedomain.Player) string) (*Response, error) {
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}
	p, err := g.MustGetPlayer(id)
	if err != nil {
		return nil, err
	}
	return reply("%s", render(p)), nil
}

func (h *Handler) showAllPlayers(ctx context.Context, what string, summarize func(p *gamedomain.Player) string) (*Response, error) {
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}
	if len(g.Players) == 0 {
		return reply("No players found for this game"), nil
	}

	lines := []string{"All player " + what + ":"}
	for i := range g.Players {
		p := &g.Players[i]
		lines = append(lines, p.DiscordName+": "+summarize(p))
	}
	return reply("%s", strings.Join(lines, "\n")), nil
}

func (h *Handler) actionsHandbookView(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("action")
	if err != nil {
		return nil, err
	}
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}
	action := g.GetAction(name)
	if action == nil {
		return nil, apperr.NotFoundf("action %s not found", name)
	}

	lines := []string{describeAction(*action)}
	if action.Timing != nil {
		lines = append(lines, "Timing: "+*action.Timing)
	}
	if len(action.Classes) > 0 {
		lines = append(lines, "Classes: "+strings.Join(action.Classes, ", "))
	}
	if action.Description != "" {
		lines = append(lines, action.Description)
	}
	return reply("%s", strings.Join(lines, "\n")), nil
}

// generatePersistentView posts the rendered pages plus a footer and records
// them under name. Posted messages are removed again if recording fails.
func (h *Handler) generatePersistentView(ctx context.Context, req *Request, name, filterCommand string, render func(g *gamedomain.Game) []string) (*Response, error) {
	channel := req.id("channel")
	if channel.IsZero() {
		channel = req.ChannelID
	}

	g, err := h.service.GetGame(ctx)
	if err != nil {
		return nil, err
	}
	if g.GetPIView(name) != nil {
		return nil, apperr.AlreadyExistsf("persistent view %s already exists, delete it first", name)
	}

	view := gamedomain.PIView{Name: name, ChannelID: channel, MessageIDs: []gamedomain.ID{}}
	for _, page := range render(g) {
		msg, err := h.messenger.ChannelMessageSend(channel.String(), page)
		if err != nil {
			h.deleteViewMessages(view)
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to post persistent view")
		}
		view.MessageIDs = append(view.MessageIDs, gamedomain.ID(msg.ID))
	}

	footer, err := h.messenger.ChannelMessageSend(channel.String(), "Use /"+filterCommand+" to filter this list.")
	if err != nil {
		h.deleteViewMessages(view)
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to post persistent view")
	}
	view.ButtonMsgID = gamedomain.ID(footer.ID)

	if err := h.service.AddPIView(ctx, view); err != nil {
		h.deleteViewMessages(view)
		return nil, err
	}
	return reply("Created persistent view %s in <#%s>", name, channel), nil
}

func (h *Handler) deleteViewMessages(view gamedomain.PIView) {
	messages := append([]gamedomain.ID{}, view.MessageIDs...)
	if !view.ButtonMsgID.IsZero() {
		messages = append(messages, view.ButtonMsgID)
	}
	for _, msg := range messages {
		if err := h.messenger.ChannelMessageDelete(view.ChannelID.String(), msg.String()); err != nil {
			h.logger.Warn("failed to delete view message",
				zap.String("view", view.Name),
				zap.String("message_id", msg.String()),
				zap.Error(err))
		}
	}
}

func inventoryText(p *gamedomain.Player) string {
	if len(p.Items) == 0 {
		return p.DiscordName + " has no items"
	}
	return p.DiscordName + " inventory:\n" + strings.Join(itemLines(sortedItems(p.Items)), "\n")
}

func playerActionsText(p *gamedomain.Player) string {
	lines := make([]string, 0, len(p.Actions))
	for _, a := range sortedActions(p.Actions) {
		lines = append(lines, describeAction(a))
	}
	lines = append(lines, itemActionLines(p.ItemActions())...)
	if len(lines) == 0 {
		return p.DiscordName + " has no actions"
	}
	return p.DiscordName + " actions:\n" + strings.Join(lines, "\n")
}

func resourcesText(p *gamedomain.Player) string {
	if len(p.Resources) == 0 {
		return p.DiscordName + " has no resources"
	}
	lines := []string{p.DiscordName + " resources:"}
	for _, r := range p.Resources {
		lines = append(lines, fmt.Sprintf("%s: %s (income %d)", r.Type, bounded(r.Amount, r.Max), r.Income))
	}
	return strings.Join(lines, "\n")
}

func attributesText(p *gamedomain.Player) string {
	if len(p.Attributes) == 0 {
		return p.DiscordName + " has no attributes"
	}
	lines := []string{p.DiscordName + " attributes:"}
	for _, a := range p.Attributes {
		lines = append(lines, fmt.Sprintf("%s: %s", a.Name, bounded(a.Level, a.MaxLevel)))
	}
	return strings.Join(lines, "\n")
}

func resourceSummary(p *gamedomain.Player) string {
	if len(p.Resources) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(p.Resources))
	for _, r := range p.Resources {
		parts = append(parts, fmt.Sprintf("%d %s", r.Amount, r.Type))
	}
	return strings.Join(parts, ", ")
}

func attributeSummary(p *gamedomain.Player) string {
	if len(p.Attributes) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		parts = append(parts, fmt.Sprintf("%s %d", a.Name, a.Level))
	}
	return strings.Join(parts, ", ")
}

// catalogActionLines lists catalog actions not granted by an item, then the
// item-granted ones, each group sorted by name
func catalogActionLines(g *gamedomain.Game, filter catalog.ActionFilter) []string {
	filtered := filter.Class != "" || filter.Timing != ""
	keep := func(a catalog.Action) bool {
		return !filtered || len(catalog.FilterActions([]catalog.Action{a}, filter)) == 1
	}

	itemActions := g.ItemActions()
	granted := make(map[string]bool, len(itemActions))
	for _, ia := range itemActions {
		granted[ia.Action.Name] = true
	}

	var lines []string
	for _, a := range sortedActions(g.Actions) {
		if !granted[a.Name] && keep(a) {
			lines = append(lines, describeAction(a))
		}
	}
	var kept []catalog.ItemAction
	for _, ia := range itemActions {
		if keep(*ia.Action) {
			kept = append(kept, ia)
		}
	}
	return append(lines, itemActionLines(kept)...)
}

func itemActionLines(itemActions []catalog.ItemAction) []string {
	sort.SliceStable(itemActions, func(i, j int) bool {
		return strings.ToLower(itemActions[i].ItemName) < strings.ToLower(itemActions[j].ItemName)
	})
	lines := make([]string, 0, len(itemActions))
	for _, ia := range itemActions {
		lines = append(lines, describeAction(*ia.Action)+" [from "+ia.ItemName+"]")
	}
	return lines
}

func itemLines(items []catalog.Item) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("%s (%s)", item.Name, item.Type)
		if item.Rarity != nil {
			line += ", " + *item.Rarity
		}
		if item.IsEquipped {
			line += " [equipped]"
		}
		lines = append(lines, line)
	}
	return lines
}

func sortedActions(actions []catalog.Action) []catalog.Action {
	out := append([]catalog.Action{}, actions...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func sortedItems(items []catalog.Item) []catalog.Item {
	out := append([]catalog.Item{}, items...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// paginate joins header and lines into pages of at most maxPageLen bytes.
// A single line longer than a page gets a page of its own.
func paginate(header string, lines []string, empty string) []string {
	if len(lines) == 0 {
		lines = []string{empty}
	}

	var pages []string
	page := header
	for _, line := range lines {
		if page != "" && len(page)+1+len(line) > maxPageLen {
			pages = append(pages, page)
			page = ""
		}
		if page == "" {
			page = line
			continue
		}
		page += "\n" + line
	}
	return append(pages, page)
}
