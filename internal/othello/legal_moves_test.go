package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceCaptures brute-forces every ray from target, independent of the engine's walk,
// and returns the union of the cells a placement there would flip.
func referenceCaptures(board *Board, target Coord, side Side) []Coord {
	if board.At(target.Col, target.Row) != Empty {
		return nil
	}

	var captured []Coord
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}

			var run []Coord
			for step := 1; step < Size; step++ {
				c, r := target.Col+dc*step, target.Row+dr*step
				if c < 0 || r < 0 || c >= Size || r >= Size {
					break
				}
				cell := board.At(c, r)
				if cell == CellOf(side.Opponent()) {
					run = append(run, Coord{Col: c, Row: r})
					continue
				}
				if cell == CellOf(side) {
					captured = append(captured, run...)
				}
				break
			}
		}
	}

	return captured
}

func TestComputeLegalMoves(t *testing.T) {
	t.Run("Opening moves for First", func(t *testing.T) {
		// Given: the opening position
		board := NewBoard()

		// When: First's moves are computed
		moves := ComputeLegalMoves(board, First)

		// Then: the four classic openings are legal, each flipping one piece
		require.Equal(t, 4, moves.Len())
		assert.Equal(t, []LegalMove{
			{Target: Coord{Col: 3, Row: 2}, Captures: []Coord{{Col: 3, Row: 3}}},
			{Target: Coord{Col: 2, Row: 3}, Captures: []Coord{{Col: 3, Row: 3}}},
			{Target: Coord{Col: 5, Row: 4}, Captures: []Coord{{Col: 4, Row: 4}}},
			{Target: Coord{Col: 4, Row: 5}, Captures: []Coord{{Col: 4, Row: 4}}},
		}, moves.All())
		assert.Equal(t, First, moves.Side)
	})

	t.Run("Adjacent own piece does not capture", func(t *testing.T) {
		// Given: a Black piece right next to the empty target, with no White in between
		board := mustBoard(t, [Size]string{
			"BB......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})

		// When: First's moves are computed
		moves := board.LegalMoves(First)

		// Then: nothing is legal
		assert.True(t, moves.Empty())
	})

	t.Run("Run that reaches the edge captures nothing", func(t *testing.T) {
		// Given: a White run ending at the board edge
		board := mustBoard(t, [Size]string{
			"...WWWWW",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})

		// When: First's moves are computed
		moves := board.LegalMoves(First)

		// Then: (2,0) is not legal
		assert.False(t, moves.Contains(Coord{Col: 2, Row: 0}))
	})

	t.Run("Run broken by an empty cell captures nothing", func(t *testing.T) {
		// Given: a White run with a gap before the Black anchor
		board := mustBoard(t, [Size]string{
			".WW.B...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})

		// When: First's moves are computed
		moves := board.LegalMoves(First)

		// Then: (0,0) is not legal
		assert.False(t, moves.Contains(Coord{Col: 0, Row: 0}))
	})

	t.Run("Captures list directions in walk order", func(t *testing.T) {
		// Given: a target with runs to the east and to the south
		board := mustBoard(t, [Size]string{
			".WWB....",
			"W.......",
			"B.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		})

		// When: First's moves are computed
		move, ok := board.LegalMoves(First).Get(Coord{Col: 0, Row: 0})

		// Then: east comes before south, nearer cells first
		require.True(t, ok)
		assert.Equal(t, []Coord{{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 0, Row: 1}}, move.Captures)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		// Given: a board without empty cells
		var rows [Size]string
		for r := range rows {
			rows[r] = "BWBWBWBW"
		}
		board := mustBoard(t, rows)

		// Then: neither side can move
		assert.True(t, board.LegalMoves(First).Empty())
		assert.True(t, board.LegalMoves(Second).Empty())
	})

	t.Run("Invalid side has no moves", func(t *testing.T) {
		assert.True(t, ComputeLegalMoves(NewBoard(), Side(0)).Empty())
	})
}

func TestComputeLegalMoves_MatchesReferenceScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic playouts

	for game := 0; game < 30; game++ {
		board := NewBoard()
		side := First

		for ply := 0; ply < 70; ply++ {
			for _, s := range []Side{First, Second} {
				moves := board.LegalMoves(s)

				for row := 0; row < Size; row++ {
					for col := 0; col < Size; col++ {
						target := Coord{Col: col, Row: row}

						// Then: the engine and the reference agree on every square and its captures
						expected := referenceCaptures(board, target, s)
						move, ok := moves.Get(target)
						require.Equal(t, len(expected) > 0, ok, "%s for %s on\n%s", target, s, board)
						if ok {
							require.ElementsMatch(t, expected, move.Captures, "%s for %s on\n%s", target, s, board)
						}

						// And: occupied squares are never offered
						if board.At(col, row) != Empty {
							require.False(t, moves.Contains(target))
						}
					}
				}
			}

			moves := board.LegalMoves(side)
			if moves.Empty() {
				if board.LegalMoves(side.Opponent()).Empty() {
					break
				}
				side = side.Opponent()
				continue
			}

			all := moves.All()
			pick := all[rng.Intn(len(all))]
			require.True(t, board.ApplyPlacement(moves, pick.Target.Col, pick.Target.Row, side))
			side = side.Opponent()
		}
	}
}

func TestApplyPlacement_IsAtomic(t *testing.T) {
	// Given: the opening position after one move
	board := NewBoard()
	require.True(t, board.ApplyPlacement(board.LegalMoves(First), 2, 3, First))
	before := board.Clone()

	moves := board.LegalMoves(Second)
	for _, move := range moves.All() {
		// When: each of Second's moves is applied to a copy
		next := before.Clone()
		require.True(t, next.ApplyPlacement(moves, move.Target.Col, move.Target.Row, Second))

		// Then: exactly the target and the captures changed, all to White
		changed := 0
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if next.At(col, row) != before.At(col, row) {
					changed++
					assert.Equal(t, White, next.At(col, row))
				}
			}
		}
		assert.Equal(t, 1+len(move.Captures), changed)
	}
}

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in   string
		want Coord
	}{
		{in: "c4", want: Coord{Col: 2, Row: 3}},
		{in: "A1", want: Coord{Col: 0, Row: 0}},
		{in: " h8 ", want: Coord{Col: 7, Row: 7}},
		{in: "2 3", want: Coord{Col: 2, Row: 3}},
		{in: "2,3", want: Coord{Col: 2, Row: 3}},
		{in: "-1 9", want: Coord{Col: -1, Row: 9}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCoord(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "c", "44", "cx", "x y", "1 y"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParseCoord(bad)

			assert.ErrorIs(t, err, ErrBadNotation)
		})
	}
}

func TestCoord_String(t *testing.T) {
	assert.Equal(t, "c4", Coord{Col: 2, Row: 3}.String())
	assert.Equal(t, "(8,0)", Coord{Col: 8, Row: 0}.String())
}

func TestSide(t *testing.T) {
	assert.Equal(t, Second, First.Opponent())
	assert.Equal(t, First, Second.Opponent())
	assert.Equal(t, "Black", First.String())
	assert.Equal(t, "White", Second.String())

	side, ok := White.Side()
	assert.True(t, ok)
	assert.Equal(t, Second, side)

	_, ok = Empty.Side()
	assert.False(t, ok)

	parsed, err := ParseSide("W")
	require.NoError(t, err)
	assert.Equal(t, Second, parsed)

	_, err = ParseSide("-")
	assert.ErrorIs(t, err, ErrUnknownSide)
}
