package game

import (
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// Round is a numbered voting period. Once ended it never reopens.
type Round struct {
	Votes     []Vote    `json:"votes" validate:"dive"`
	ChannelID ID        `json:"round_channel_id"`
	MessageID ID        `json:"round_message_id"`
	Number    int       `json:"round_number" validate:"gte=1"`
	Dilemmas  []Dilemma `json:"round_dilemmas" validate:"dive"`
	IsActive  bool      `json:"is_active_round"`
}

// GetDilemma finds a dilemma by name
func (r *Round) GetDilemma(name string) *Dilemma {
	for i := range r.Dilemmas {
		if r.Dilemmas[i].Name == name {
			return &r.Dilemmas[i]
		}
	}
	return nil
}

// GetVote returns the voter's round vote
func (r *Round) GetVote(voter ID) *Vote {
	return getVote(r.Votes, voter)
}

// CloseDilemmas deactivates and closes every dilemma of the round
func (r *Round) CloseDilemmas() int {
	closed := 0
	for i := range r.Dilemmas {
		if !r.Dilemmas[i].IsClosed {
			closed++
		}
		r.Dilemmas[i].IsActive = false
		r.Dilemmas[i].IsClosed = true
	}
	return closed
}

// Dilemma is a sub-vote of a round restricted to eligible players and choices.
// It is created inactive, toggled by the moderator and closed for good by
// CloseDilemmas.
type Dilemma struct {
	Votes     []Vote   `json:"dilemma_votes" validate:"dive"`
	Name      string   `json:"dilemma_name" validate:"required"`
	ChannelID ID       `json:"dilemma_channel_id"`
	MessageID ID       `json:"dilemma_message_id"`
	PlayerIDs []ID     `json:"dilemma_player_ids"`
	Choices   []string `json:"dilemma_choices"`
	IsActive  bool     `json:"is_active_dilemma"`
	IsClosed  bool     `json:"is_closed_dilemma"`
}

// IsEligible reports whether the player may vote in the dilemma
func (d *Dilemma) IsEligible(id ID) bool {
	return containsID(d.PlayerIDs, id)
}

// HasChoice reports whether choice is offered
func (d *Dilemma) HasChoice(choice string) bool {
	for _, c := range d.Choices {
		if c == choice {
			return true
		}
	}
	return false
}

// GetVote returns the voter's dilemma vote
func (d *Dilemma) GetVote(voter ID) *Vote {
	return getVote(d.Votes, voter)
}

// AddPlayer makes a player eligible
func (d *Dilemma) AddPlayer(id ID) error {
	if d.IsEligible(id) {
		return apperr.AlreadyExistsf("player %s is already part of dilemma %s", id, d.Name)
	}
	d.PlayerIDs = append(d.PlayerIDs, id)
	return nil
}

// RemovePlayer revokes eligibility and drops the player's vote
func (d *Dilemma) RemovePlayer(id ID) error {
	ids, ok := removeID(d.PlayerIDs, id)
	if !ok {
		return apperr.NotFoundf("player %s is not part of dilemma %s", id, d.Name)
	}
	d.PlayerIDs = ids
	d.Votes = dropVotes(d.Votes, func(v Vote) bool { return v.PlayerID == id })
	return nil
}

// AddChoice offers a new choice
func (d *Dilemma) AddChoice(choice string) error {
	if choice == "" {
		return apperr.InvalidArgument("dilemma choice cannot be empty")
	}
	if d.HasChoice(choice) {
		return apperr.AlreadyExistsf("dilemma %s already offers %s", d.Name, choice)
	}
	d.Choices = append(d.Choices, choice)
	return nil
}

// RemoveChoice withdraws a choice and drops the votes cast for it
func (d *Dilemma) RemoveChoice(choice string) error {
	for i, c := range d.Choices {
		if c == choice {
			d.Choices = append(d.Choices[:i], d.Choices[i+1:]...)
			d.Votes = dropVotes(d.Votes, func(v Vote) bool { return v.Choice == choice })
			return nil
		}
	}
	return apperr.NotFoundf("dilemma %s does not offer %s", d.Name, choice)
}

// Party is a group of players sharing a channel; MaxSize is -1 when unbounded
type Party struct {
	PlayerIDs []ID   `json:"player_ids"`
	Name      string `json:"party_name" validate:"required"`
	MaxSize   int    `json:"max_size" validate:"gte=-1"`
	ChannelID ID     `json:"channel_id" validate:"required"`
}

// HasPlayer reports whether id is a member
func (p *Party) HasPlayer(id ID) bool {
	return containsID(p.PlayerIDs, id)
}

// IsFull reports whether a bounded party has no room left
func (p *Party) IsFull() bool {
	return p.MaxSize != -1 && len(p.PlayerIDs) >= p.MaxSize
}

// PIView tracks chat messages mirroring a refreshable list
type PIView struct {
	Name        string `json:"view_name" validate:"required"`
	ChannelID   ID     `json:"channel_id"`
	MessageIDs  []ID   `json:"message_ids"`
	ButtonMsgID ID     `json:"button_msg_id"`
}
