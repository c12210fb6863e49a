package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/othello-backend/internal/match"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

func TestView_Render(t *testing.T) {
	t.Run("Opening position with legal squares", func(t *testing.T) {
		// Given: a fresh match waiting on Black
		session := match.NewSession()
		session.Advance()

		var out bytes.Buffer

		// When: the view is rendered
		err := NewView(&out).Render(session.View())

		// Then: the board, counts and turn line are drawn
		require.NoError(t, err)

		expected := "" +
			"   a b c d e f g h\n" +
			" 1 . . . . . . . .\n" +
			" 2 . . . . . . . .\n" +
			" 3 . . . * . . . .\n" +
			" 4 . . * W B . . .\n" +
			" 5 . . . B W * . .\n" +
			" 6 . . . . * . . .\n" +
			" 7 . . . . . . . .\n" +
			" 8 . . . . . . . .\n" +
			"Black 2 - White 2\n" +
			"Black to move (4 legal)\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Announces a pass", func(t *testing.T) {
		// Given: Black is stuck and White takes over
		board, err := othello.ParseBoard([othello.Size]string{
			"WB......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})
		require.NoError(t, err)
		state := match.Advance(match.NewState(), board)

		var out bytes.Buffer

		// When: the view is rendered
		require.NoError(t, NewView(&out).Render(match.NewView(board, state)))

		// Then: the pass is reported before White's turn
		assert.Contains(t, out.String(), "Black has no legal move and passes.\nWhite to move (1 legal)\n")
		assert.Contains(t, out.String(), " 1 W B * . . . . .\n")
	})

	t.Run("Shows the result", func(t *testing.T) {
		board, err := othello.ParseBoard([othello.Size]string{
			"BB......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".......W",
		})
		require.NoError(t, err)
		state := match.Advance(match.NewState(), board)

		var out bytes.Buffer
		require.NoError(t, NewView(&out).Render(match.NewView(board, state)))

		assert.Contains(t, out.String(), "Game over: Black wins 2-1\n")
		assert.Contains(t, out.String(), "Type reset or play any square to start again.\n")
		assert.NotContains(t, out.String(), "to move")
		assert.NotContains(t, out.String(), "*")
	})
}
