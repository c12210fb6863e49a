package othello

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrIllegalMove       = errors.New("placement captures nothing")
	ErrUnknownSide       = errors.New("unknown side")
	ErrBadNotation       = errors.New("bad coordinate notation")
	ErrBadBoard          = errors.New("malformed board text")
)

// Board is the fixed 8x8 grid, stored row-major.
type Board struct {
	cells [Size * Size]Cell
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()
	return board
}

// Reset clears the grid and places the opening four pieces.
func (that *Board) Reset() {
	that.cells = [Size * Size]Cell{}

	mid := Size / 2
	that.set(Coord{Col: mid - 1, Row: mid - 1}, White)
	that.set(Coord{Col: mid, Row: mid}, White)
	that.set(Coord{Col: mid - 1, Row: mid}, Black)
	that.set(Coord{Col: mid, Row: mid - 1}, Black)
}

// ParseBoard builds a board from eight rows of '.', 'B' and 'W', top row first.
func ParseBoard(rows [Size]string) (*Board, error) {
	board := &Board{}

	for r, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, r, len(line))
		}

		for c := 0; c < Size; c++ {
			var cell Cell
			switch line[c] {
			case '.':
				cell = Empty
			case 'B', 'b':
				cell = Black
			case 'W', 'w':
				cell = White
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrBadBoard, line[c], Coord{Col: c, Row: r})
			}
			board.set(Coord{Col: c, Row: r}, cell)
		}
	}

	return board, nil
}

// Rows is the inverse of ParseBoard.
func (that *Board) Rows() [Size]string {
	var rows [Size]string

	for r := 0; r < Size; r++ {
		line := make([]byte, Size)
		for c := 0; c < Size; c++ {
			line[c] = that.cells[Coord{Col: c, Row: r}.index()].Letter()
		}
		rows[r] = string(line)
	}

	return rows
}

func (that *Board) String() string {
	rows := that.Rows()
	return strings.Join(rows[:], "\n")
}

// At returns the cell at (col, row); squares off the board read as Empty.
func (that *Board) At(col, row int) Cell {
	coord := Coord{Col: col, Row: row}
	if !coord.Inside() {
		return Empty
	}
	return that.cells[coord.index()]
}

// Count returns how many cells hold the given occupancy.
func (that *Board) Count(cell Cell) int {
	count := 0
	for _, c := range that.cells {
		if c == cell {
			count++
		}
	}
	return count
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// CheckPlacement tells why a placement would be rejected, or nil if ApplyPlacement would accept it.
func (that *Board) CheckPlacement(moves LegalMoves, col, row int, side Side) error {
	target := Coord{Col: col, Row: row}
	if !target.Inside() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, target)
	}

	if that.cells[target.index()] != Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, target)
	}

	if moves.Side != side {
		return fmt.Errorf("%w: moves were computed for %s, not %s", ErrIllegalMove, moves.Side, side)
	}

	move, ok := moves.Get(target)
	if !ok || len(move.Captures) == 0 {
		return fmt.Errorf("%w: %s", ErrIllegalMove, target)
	}

	opponent := CellOf(side.Opponent())
	for _, captured := range move.Captures {
		if !captured.Inside() || that.cells[captured.index()] != opponent {
			return fmt.Errorf("%w: %s is stale for this position", ErrIllegalMove, target)
		}
	}

	return nil
}

// ApplyPlacement places a piece of side at (col, row) and flips every capture of that move.
// It reports false and leaves the board untouched when the placement is not in moves.
func (that *Board) ApplyPlacement(moves LegalMoves, col, row int, side Side) bool {
	if err := that.CheckPlacement(moves, col, row, side); err != nil {
		return false
	}

	target := Coord{Col: col, Row: row}
	move, _ := moves.Get(target)

	piece := CellOf(side)
	for _, captured := range move.Captures {
		that.set(captured, piece)
	}
	that.set(target, piece)

	return true
}

func (that *Board) set(coord Coord, cell Cell) {
	that.cells[coord.index()] = cell
}
