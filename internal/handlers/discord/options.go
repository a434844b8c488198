package discord

import (
	"strings"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/handlers/discord/utils"
	"github.com/bwmarrin/discordgo"
)

const (
	actionAdd    = "Add"
	actionRemove = "Remove"
)

// manageGuild is the Manage Server permission bit
const manageGuild int64 = 1 << 5

func moderator(def *discordgo.ApplicationCommand) *discordgo.ApplicationCommand {
	perm := manageGuild
	def.DefaultMemberPermissions = &perm
	return def
}

func userOpt(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func channelOpt(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionChannel,
		Name:         name,
		Description:  description,
		Required:     required,
		ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
	}
}

func stringOpt(name, description string, required bool, choices ...string) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
	for _, c := range choices {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: c, Value: c})
	}
	return opt
}

func intOpt(name, description string, required bool, minValue, maxValue int) *discordgo.ApplicationCommandOption {
	lower := float64(minValue)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    &lower,
		MaxValue:    float64(maxValue),
	}
}

func boolOpt(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
	}
}

func addRemoveOpt(name string) *discordgo.ApplicationCommandOption {
	return stringOpt(name, "Add or remove", true, actionAdd, actionRemove)
}

func (r *Request) str(name string) string {
	return strings.TrimSpace(utils.StringOption(r.Options, name))
}

func (r *Request) requiredStr(name string) (string, error) {
	v := r.str(name)
	if v == "" {
		return "", apperr.InvalidArgumentf("%s is required", name)
	}
	return v, nil
}

func (r *Request) id(name string) gamedomain.ID {
	return gamedomain.ID(utils.IDOption(r.Options, name))
}

func (r *Request) requiredID(name string) (gamedomain.ID, error) {
	id := r.id(name)
	if id.IsZero() {
		return gamedomain.NoID, apperr.InvalidArgumentf("%s is required", name)
	}
	return id, nil
}

func (r *Request) integer(name string, def int) int {
	return utils.IntOption(r.Options, name, def)
}

func (r *Request) boolean(name string, def bool) bool {
	return utils.BoolOption(r.Options, name, def)
}

// adding reads an Add/Remove option
func (r *Request) adding(name string) (bool, error) {
	switch r.str(name) {
	case actionAdd:
		return true, nil
	case actionRemove:
		return false, nil
	}
	return false, apperr.InvalidArgumentf("%s must be %s or %s", name, actionAdd, actionRemove)
}

// mentionedIDs extracts user ids from free text such as "<@1> <@!2>, 3"
func mentionedIDs(text string) []gamedomain.ID {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r < '0' || r > '9'
	})
	ids := make([]gamedomain.ID, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, gamedomain.ID(f))
	}
	return ids
}
