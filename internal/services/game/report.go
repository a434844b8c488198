package game

import (
	"fmt"
	"strings"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
)

// Report kinds
const (
	ReportRound   = "Round"
	ReportDilemma = "Dilemma"
)

// VoteReport is a tally with voters resolved to display names
type VoteReport struct {
	Kind      string
	Name      string
	ChannelID gamedomain.ID
	MessageID gamedomain.ID
	Entries   []ReportEntry
}

// ReportEntry is one choice and who picked it
type ReportEntry struct {
	Choice string
	Voters []string
}

// String renders the report as plain text
func (r *VoteReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vote Totals for %s: %s\n", r.Kind, r.Name)
	if len(r.Entries) == 0 {
		b.WriteString("No votes yet.\n")
		return b.String()
	}
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s: %d vote(s)\n    Voted By: %s\n", e.Choice, len(e.Voters), strings.Join(e.Voters, ", "))
	}
	return b.String()
}

func newVoteReport(g *gamedomain.Game, kind, name string, channel, message gamedomain.ID, votes []gamedomain.Vote) *VoteReport {
	report := &VoteReport{
		Kind:      kind,
		Name:      name,
		ChannelID: channel,
		MessageID: message,
		Entries:   []ReportEntry{},
	}
	for _, entry := range gamedomain.Tally(votes) {
		choice := entry.Choice
		if entry.Kind == gamedomain.ChoicePlayer {
			choice = displayName(g, gamedomain.ID(entry.Choice))
		}
		voters := make([]string, 0, entry.Count())
		for _, id := range entry.VoterIDs {
			voters = append(voters, displayName(g, id))
		}
		report.Entries = append(report.Entries, ReportEntry{Choice: choice, Voters: voters})
	}
	return report
}

// displayName falls back to the raw id for unknown players
func displayName(g *gamedomain.Game, id gamedomain.ID) string {
	if p := g.GetPlayer(id); p != nil {
		return p.DiscordName
	}
	return id.String()
}

func roundReport(g *gamedomain.Game, r *gamedomain.Round) *VoteReport {
	return newVoteReport(g, ReportRound, fmt.Sprintf("%d", r.Number), r.ChannelID, r.MessageID, r.Votes)
}

func dilemmaReport(g *gamedomain.Game, d *gamedomain.Dilemma) *VoteReport {
	return newVoteReport(g, ReportDilemma, d.Name, d.ChannelID, d.MessageID, d.Votes)
}
