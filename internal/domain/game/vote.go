package game

import (
	"sort"
	"strings"

	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// ChoiceKind tags what a vote choice refers to
type ChoiceKind string

const (
	ChoiceUnvote ChoiceKind = "unvote"
	ChoiceOption ChoiceKind = "option"
	ChoicePlayer ChoiceKind = "player"
)

// UnvoteText is the option players pick to withdraw a vote
const UnvoteText = "Unvote"

// Choice is what a voter picks: withdraw, a named option or a target player
type Choice struct {
	Kind  ChoiceKind
	Value string
}

// Unvote withdraws the voter's current vote
func Unvote() Choice {
	return Choice{Kind: ChoiceUnvote}
}

// Option picks a named option such as "No Vote" or a dilemma choice
func Option(name string) Choice {
	return Choice{Kind: ChoiceOption, Value: name}
}

// PlayerTarget votes for a player
func PlayerTarget(id ID) Choice {
	return Choice{Kind: ChoicePlayer, Value: id.String()}
}

// ParseOption maps free text to Unvote or an Option
func ParseOption(text string) Choice {
	if strings.EqualFold(strings.TrimSpace(text), UnvoteText) {
		return Unvote()
	}
	return Option(text)
}

func (c Choice) validate() error {
	switch c.Kind {
	case ChoiceUnvote:
		return nil
	case ChoiceOption:
		if strings.TrimSpace(c.Value) == "" {
			return apperr.InvalidArgument("vote option cannot be empty")
		}
		return nil
	case ChoicePlayer:
		if c.Value == "" {
			return apperr.InvalidArgument("vote target cannot be empty")
		}
		return nil
	}
	return apperr.InvalidArgumentf("unknown choice kind %q", c.Kind)
}

// Vote is one voter's standing choice
type Vote struct {
	PlayerID   ID         `json:"player_id" validate:"required"`
	Choice     string     `json:"choice" validate:"required"`
	Timestamp  int64      `json:"timestamp"`
	ChoiceKind ChoiceKind `json:"choice_kind,omitempty"`
}

// Target returns the tagged choice; older documents carry no kind and are
// read as options
func (v Vote) Target() Choice {
	if v.ChoiceKind == "" {
		return Option(v.Choice)
	}
	return Choice{Kind: v.ChoiceKind, Value: v.Choice}
}

// getVote returns the voter's vote in votes
func getVote(votes []Vote, voter ID) *Vote {
	for i := range votes {
		if votes[i].PlayerID == voter {
			return &votes[i]
		}
	}
	return nil
}

// castVote overwrites, appends or removes the voter's single vote
func castVote(votes []Vote, voter ID, choice Choice, now int64) ([]Vote, error) {
	if choice.Kind == ChoiceUnvote {
		for i := range votes {
			if votes[i].PlayerID == voter {
				return append(votes[:i], votes[i+1:]...), nil
			}
		}
		return votes, apperr.NotFoundf("player %s has no vote to withdraw", voter)
	}

	if existing := getVote(votes, voter); existing != nil {
		existing.Choice = choice.Value
		existing.ChoiceKind = choice.Kind
		existing.Timestamp = now
		return votes, nil
	}
	return append(votes, Vote{
		PlayerID:   voter,
		Choice:     choice.Value,
		Timestamp:  now,
		ChoiceKind: choice.Kind,
	}), nil
}

// dropVotes filters out the votes drop reports true for
func dropVotes(votes []Vote, drop func(Vote) bool) []Vote {
	out := votes[:0]
	for _, v := range votes {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

// TallyEntry groups the voters of one choice
type TallyEntry struct {
	Choice   string
	Kind     ChoiceKind
	VoterIDs []ID
}

// Count is the number of votes for the choice
func (e TallyEntry) Count() int {
	return len(e.VoterIDs)
}

// Tally groups votes by choice, most votes first. An option and a player
// with the same text are separate choices. Ties keep the order in which each
// choice first appeared; voters keep vote order.
func Tally(votes []Vote) []TallyEntry {
	var entries []TallyEntry
	index := make(map[Choice]int)
	for _, v := range votes {
		target := v.Target()
		i, ok := index[target]
		if !ok {
			i = len(entries)
			index[target] = i
			entries = append(entries, TallyEntry{Choice: v.Choice, Kind: target.Kind})
		}
		entries[i].VoterIDs = append(entries[i].VoterIDs, v.PlayerID)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return len(entries[a].VoterIDs) > len(entries[b].VoterIDs)
	})
	return entries
}
