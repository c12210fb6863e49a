package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

func TestParseCommand(t *testing.T) {
	t.Run("Recognizes commands", func(t *testing.T) {
		cases := map[string]Command{
			"place c4":     {Kind: CommandPlace, Target: othello.Coord{Col: 2, Row: 3}},
			"C4":           {Kind: CommandPlace, Target: othello.Coord{Col: 2, Row: 3}},
			"p 2 3":        {Kind: CommandPlace, Target: othello.Coord{Col: 2, Row: 3}},
			"  2,3  ":      {Kind: CommandPlace, Target: othello.Coord{Col: 2, Row: 3}},
			"play h8":      {Kind: CommandPlace, Target: othello.Coord{Col: 7, Row: 7}},
			"reset":        {Kind: CommandReset},
			"new":          {Kind: CommandNew},
			"abandon":      {Kind: CommandNew},
			"resume":       {Kind: CommandResume},
			"resume Ab-12": {Kind: CommandResume, ID: "Ab-12"},
			"board":        {Kind: CommandBoard},
			"help":         {Kind: CommandHelp},
			"?":            {Kind: CommandHelp},
			"quit":         {Kind: CommandQuit},
			"EXIT":         {Kind: CommandQuit},
			"place 9 9":    {Kind: CommandPlace, Target: othello.Coord{Col: 9, Row: 9}},
		}

		for line, expected := range cases {
			// When: the line is parsed
			command, err := ParseCommand(line)

			// Then: it maps to the expected command
			require.NoError(t, err, line)
			assert.Equal(t, expected, command, line)
		}
	})

	t.Run("Empty line", func(t *testing.T) {
		_, err := ParseCommand("   ")

		assert.ErrorIs(t, err, ErrEmptyCommand)
	})

	t.Run("Unknown word", func(t *testing.T) {
		_, err := ParseCommand("dance")

		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("Resume with more than one id", func(t *testing.T) {
		_, err := ParseCommand("resume a b")

		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("Place without a square", func(t *testing.T) {
		_, err := ParseCommand("place")

		assert.ErrorIs(t, err, othello.ErrBadNotation)
	})

	t.Run("Place with bad notation", func(t *testing.T) {
		_, err := ParseCommand("place c")

		assert.ErrorIs(t, err, othello.ErrBadNotation)
	})
}
