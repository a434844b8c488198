package dice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// Mode selects how each die is rolled
type Mode string

const (
	ModeNormal       Mode = ""
	ModeAdvantage    Mode = "Advantage"
	ModeDisadvantage Mode = "Disadvantage"
)

const (
	MaxCount = 5
)

// AllowedSides are the die faces offered by the roll-dice command
var AllowedSides = []int{2, 4, 6, 8, 10, 12, 20}

// RollResult holds the values of one roll-dice request.
// With advantage or disadvantage every die is rolled twice and the
// other value of each pair lands in Discarded.
type RollResult struct {
	Count     int
	Sides     int
	Mode      Mode
	Kept      []int
	Discarded []int
	Total     int
}

// ParseMode accepts the command option value, empty meaning a normal roll
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ModeNormal, nil
	case "advantage":
		return ModeAdvantage, nil
	case "disadvantage":
		return ModeDisadvantage, nil
	}
	return ModeNormal, apperr.InvalidArgumentf("unknown roll modifier %q", s)
}

// Validate checks count and sides against the command limits
func Validate(count, sides int) error {
	if count < 1 || count > MaxCount {
		return apperr.InvalidArgumentf("dice count must be between 1 and %d", MaxCount).
			WithMeta("count", count)
	}
	for _, allowed := range AllowedSides {
		if sides == allowed {
			return nil
		}
	}
	return apperr.InvalidArgumentf("d%d is not a supported die", sides).
		WithMeta("sides", sides)
}

func (r *RollResult) finish() {
	sort.Ints(r.Kept)
	sort.Ints(r.Discarded)
	r.Total = 0
	for _, v := range r.Kept {
		r.Total += v
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Header is the announcement sent before the result
func (r *RollResult) Header() string {
	if r.Mode == ModeNormal {
		return fmt.Sprintf("Rolling %d d%d...", r.Count, r.Sides)
	}
	return fmt.Sprintf("Rolling %d d%d with %s...", r.Count, r.Sides, r.Mode)
}

func (r *RollResult) String() string {
	out := "Rolled values: " + joinInts(r.Kept)
	if r.Mode != ModeNormal {
		out += "\nDiscarded rolled values: ~~" + joinInts(r.Discarded) + "~~"
	}
	return out
}
