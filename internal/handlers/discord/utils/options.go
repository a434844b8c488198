package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// FindOption looks up an option by name, drilling into subcommands
func FindOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}

		// subcommand groups and subcommands carry their own options
		if len(options[0].Options) > 0 {
			options = options[0].Options
		} else {
			break
		}
	}

	return nil
}

// GetCommandOption safely retrieves a command option by name from interaction data
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	return FindOption(i.ApplicationCommandData().Options, name)
}

// StringOption returns a string option or ""
func StringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := FindOption(options, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// IntOption returns an integer option or def
func IntOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	opt := FindOption(options, name)
	if opt == nil {
		return def
	}
	return int(opt.IntValue())
}

// BoolOption returns a boolean option or def
func BoolOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string, def bool) bool {
	opt := FindOption(options, name)
	if opt == nil {
		return def
	}
	return opt.BoolValue()
}

// IDOption returns the snowflake of a user, channel or role option, or ""
func IDOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := FindOption(options, name)
	if opt == nil || opt.Value == nil {
		return ""
	}
	return fmt.Sprint(opt.Value)
}
