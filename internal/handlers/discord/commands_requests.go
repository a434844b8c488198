package discord

import (
	"context"
	"fmt"
	"strings"

	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/bwmarrin/discordgo"
)

var attributeChoices = []string{"Body", "Mind", "Spirit"}

func (h *Handler) addRequestCommands() {
	h.add(&discordgo.ApplicationCommand{
		Name:        "action-submission",
		Description: "Submit an action to be performed to the moderator",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("action", "Action to perform", true),
			stringOpt("first-target", "Optional first target", false),
			stringOpt("second-target", "Optional second target", false),
			stringOpt("third-target", "Optional third target", false),
			stringOpt("request-details", "Optional non-targeting details", false),
		},
	}, h.actionSubmission)

	h.add(&discordgo.ApplicationCommand{
		Name:        "mod-request",
		Description: "Send a request to the moderator",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("request", "What you are asking for", true),
		},
	}, h.modRequest)

	h.add(&discordgo.ApplicationCommand{
		Name:        "level-up",
		Description: "Submit a level-up request to the moderator",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("action", "New action", true),
			stringOpt("skill", "New skill", true),
			stringOpt("attribute1", "First attribute to raise", true, attributeChoices...),
			stringOpt("attribute2", "Second attribute to raise", true, attributeChoices...),
		},
	}, h.levelUp)
}

func (h *Handler) requireRequestChannel() error {
	if h.requestChannel.IsZero() {
		return apperr.InvalidArgument("no moderator request channel is configured")
	}
	return nil
}

// requireLivingRequester checks the caller is a registered living player
func (h *Handler) requireLivingRequester(ctx context.Context, req *Request) (string, error) {
	g, err := h.service.GetGame(ctx)
	if err != nil {
		return "", err
	}
	p := g.GetPlayer(req.UserID)
	if p == nil {
		return "", apperr.NotFoundf("player %s is not defined in this game", req.UserName)
	}
	if p.IsDead {
		return "", apperr.InvalidTransition("you are dead")
	}
	return p.DiscordName, nil
}

func (h *Handler) postRequest(header string, lines []string) error {
	content := header
	if h.modRoleID != "" {
		content = "<@&" + h.modRoleID + ">\n" + content
	}
	if len(lines) > 0 {
		content += "\n" + strings.Join(lines, "\n")
	}
	if _, err := h.messenger.ChannelMessageSend(h.requestChannel.String(), content); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to post request")
	}
	return nil
}

func (h *Handler) actionSubmission(ctx context.Context, req *Request) (*Response, error) {
	if err := h.requireRequestChannel(); err != nil {
		return nil, err
	}
	name, err := req.requiredStr("action")
	if err != nil {
		return nil, err
	}

	action, err := h.service.SubmitAction(ctx, req.UserID, name)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, opt := range []struct{ name, label string }{
		{"first-target", "First target"},
		{"second-target", "Second target"},
		{"third-target", "Third target"},
		{"request-details", "Details"},
	} {
		if v := req.str(opt.name); v != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", opt.label, v))
		}
	}
	header := fmt.Sprintf("Player <@%s> has submitted action **%s** (%s)", req.UserID, action.Name, describeAction(*action))
	if err := h.postRequest(header, lines); err != nil {
		return nil, err
	}
	return reply("Submitted action %s to the moderator!", action.Name), nil
}

func (h *Handler) modRequest(ctx context.Context, req *Request) (*Response, error) {
	if err := h.requireRequestChannel(); err != nil {
		return nil, err
	}
	request, err := req.requiredStr("request")
	if err != nil {
		return nil, err
	}
	name, err := h.requireLivingRequester(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := h.postRequest(fmt.Sprintf("Player **%s** has submitted a moderator request of **%s**", name, request), nil); err != nil {
		return nil, err
	}
	return reply("Submitted request **%s** to the moderator!", request), nil
}

func (h *Handler) levelUp(ctx context.Context, req *Request) (*Response, error) {
	if err := h.requireRequestChannel(); err != nil {
		return nil, err
	}
	name, err := h.requireLivingRequester(ctx, req)
	if err != nil {
		return nil, err
	}

	lines := []string{
		"New Action: " + req.str("action"),
		"New Skill: " + req.str("skill"),
		"Attribute 1: " + req.str("attribute1"),
		"Attribute 2: " + req.str("attribute2"),
	}
	if err := h.postRequest(fmt.Sprintf("Player **%s** has submitted a level-up request:", name), lines); err != nil {
		return nil, err
	}
	return reply("Submitted level up request to the moderator!"), nil
}
