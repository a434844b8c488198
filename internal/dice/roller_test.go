package dice_test

import (
	"testing"

	"github.com/KirkDiggler/wolfbot/internal/dice"
	mockdice "github.com/KirkDiggler/wolfbot/internal/dice/mock"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoller_Roll(t *testing.T) {
	tests := []struct {
		name          string
		faces         []int
		count         int
		sides         int
		mode          dice.Mode
		wantKept      []int
		wantDiscarded []int
		wantTotal     int
	}{
		{
			name:      "normal roll sorts values",
			faces:     []int{5, 2, 6},
			count:     3,
			sides:     6,
			mode:      dice.ModeNormal,
			wantKept:  []int{2, 5, 6},
			wantTotal: 13,
		},
		{
			name:          "advantage keeps the higher of each pair",
			faces:         []int{3, 17, 20, 1},
			count:         2,
			sides:         20,
			mode:          dice.ModeAdvantage,
			wantKept:      []int{17, 20},
			wantDiscarded: []int{1, 3},
			wantTotal:     37,
		},
		{
			name:          "disadvantage keeps the lower of each pair",
			faces:         []int{3, 17, 4, 4},
			count:         2,
			sides:         20,
			mode:          dice.ModeDisadvantage,
			wantKept:      []int{3, 4},
			wantDiscarded: []int{4, 17},
			wantTotal:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mockdice.NewSequenceSource(tt.faces...)
			roller := dice.NewRoller(source)

			result, err := roller.Roll(tt.count, tt.sides, tt.mode)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKept, result.Kept)
			assert.Equal(t, tt.wantDiscarded, result.Discarded)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, len(tt.faces), source.Used())
		})
	}
}

func TestRoller_RejectsUnsupportedDice(t *testing.T) {
	roller := dice.NewRoller(mockdice.NewSequenceSource())

	_, err := roller.Roll(0, 6, dice.ModeNormal)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = roller.Roll(6, 6, dice.ModeNormal)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = roller.Roll(1, 7, dice.ModeNormal)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestRollResult_String(t *testing.T) {
	roller := dice.NewRoller(mockdice.NewSequenceSource(2, 5))

	result, err := roller.Roll(1, 6, dice.ModeAdvantage)
	require.NoError(t, err)

	assert.Equal(t, "Rolling 1 d6 with Advantage...", result.Header())
	assert.Equal(t, "Rolled values: 5\nDiscarded rolled values: ~~2~~", result.String())
}

func TestParseMode(t *testing.T) {
	mode, err := dice.ParseMode("advantage")
	require.NoError(t, err)
	assert.Equal(t, dice.ModeAdvantage, mode)

	mode, err = dice.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, dice.ModeNormal, mode)

	_, err = dice.ParseMode("lucky")
	assert.True(t, apperr.IsInvalidArgument(err))
}
