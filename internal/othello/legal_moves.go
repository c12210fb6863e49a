package othello

import "sort"

// LegalMove is a placement target together with the opponent cells it would flip.
type LegalMove struct {
	Target   Coord   `json:"target"`
	Captures []Coord `json:"captures"`
}

// LegalMoves is the result of one legality scan for one side.
// It belongs to the position it was computed from and must be recomputed after any change.
type LegalMoves struct {
	Side  Side
	moves map[Coord]LegalMove
}

// ComputeLegalMoves scans every square of the board for placements available to side.
func ComputeLegalMoves(board *Board, side Side) LegalMoves {
	result := LegalMoves{
		Side:  side,
		moves: make(map[Coord]LegalMove),
	}

	if !side.Valid() {
		return result
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			target := Coord{Col: col, Row: row}
			if captures := board.captures(target, side); len(captures) > 0 {
				result.moves[target] = LegalMove{Target: target, Captures: captures}
			}
		}
	}

	return result
}

// LegalMoves is a shorthand for ComputeLegalMoves(that, side).
func (that *Board) LegalMoves(side Side) LegalMoves {
	return ComputeLegalMoves(that, side)
}

func (that LegalMoves) Len() int {
	return len(that.moves)
}

// Empty reports that side must pass.
func (that LegalMoves) Empty() bool {
	return len(that.moves) == 0
}

func (that LegalMoves) Contains(coord Coord) bool {
	_, ok := that.moves[coord]
	return ok
}

func (that LegalMoves) Get(coord Coord) (LegalMove, bool) {
	move, ok := that.moves[coord]
	return move, ok
}

// All lists the moves row by row, left to right.
func (that LegalMoves) All() []LegalMove {
	all := make([]LegalMove, 0, len(that.moves))
	for _, move := range that.moves {
		all = append(all, move)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Target.index() < all[j].Target.index()
	})

	return all
}

// captures is the union of every direction's capture run from target; nil if target is not playable.
func (that *Board) captures(target Coord, side Side) []Coord {
	if !target.Inside() || that.cells[target.index()] != Empty {
		return nil
	}

	var captures []Coord
	for _, dir := range directions {
		captures = append(captures, that.walk(target, dir, side)...)
	}

	return captures
}

// walk collects the contiguous opponent run starting next to target in one direction.
// The run only counts when a piece of side closes it; the edge or an empty cell voids it.
func (that *Board) walk(target, dir Coord, side Side) []Coord {
	own := CellOf(side)
	opponent := CellOf(side.Opponent())

	var run []Coord
	for step := 1; ; step++ {
		next := Coord{Col: target.Col + dir.Col*step, Row: target.Row + dir.Row*step}
		if !next.Inside() {
			return nil
		}

		switch that.cells[next.index()] {
		case opponent:
			run = append(run, next)
		case own:
			return run
		default:
			return nil
		}
	}
}
