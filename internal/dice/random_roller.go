package dice

import (
	"math/rand"
	"time"
)

// sourceRoller implements Roller on top of a Source
type sourceRoller struct {
	source Source
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return NewRoller(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRoller creates a roller drawing faces from source
func NewRoller(source Source) Roller {
	if source == nil {
		panic("source is required")
	}
	return &sourceRoller{source: source}
}

// Roll implements Roller.Roll
func (r *sourceRoller) Roll(count, sides int, mode Mode) (*RollResult, error) {
	if err := Validate(count, sides); err != nil {
		return nil, err
	}

	result := &RollResult{
		Count: count,
		Sides: sides,
		Mode:  mode,
		Kept:  make([]int, 0, count),
	}

	for i := 0; i < count; i++ {
		first := r.source.Intn(sides) + 1
		if mode == ModeNormal {
			result.Kept = append(result.Kept, first)
			continue
		}

		second := r.source.Intn(sides) + 1
		keep, discard := first, second
		switch mode {
		case ModeAdvantage:
			if second > first {
				keep, discard = second, first
			}
		case ModeDisadvantage:
			if second < first {
				keep, discard = second, first
			}
		}
		result.Kept = append(result.Kept, keep)
		result.Discarded = append(result.Discarded, discard)
	}

	result.finish()
	return result, nil
}
