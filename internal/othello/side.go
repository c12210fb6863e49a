package othello

import "fmt"

// Side is one of the two competing players. First moves first and plays Black.
type Side int8

const (
	First  Side = 1
	Second Side = 2
)

// Cell is the occupancy of one board square.
type Cell int8

const (
	Empty Cell = 0
	Black Cell = Cell(First)
	White Cell = Cell(Second)
)

func (that Side) Opponent() Side {
	if that == First {
		return Second
	}
	return First
}

func (that Side) Valid() bool {
	return that == First || that == Second
}

func (that Side) String() string {
	switch that {
	case First:
		return "Black"
	case Second:
		return "White"
	default:
		return "None"
	}
}

// ParseSide accepts the Cell letters used in board text ("B", "W").
func ParseSide(s string) (Side, error) {
	switch s {
	case "B", "b":
		return First, nil
	case "W", "w":
		return Second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// CellOf returns the occupancy value a piece of side leaves on the board.
func CellOf(side Side) Cell {
	return Cell(side)
}

// Side reports which side occupies the cell; false for Empty.
func (that Cell) Side() (Side, bool) {
	side := Side(that)
	return side, side.Valid()
}

func (that Cell) Letter() byte {
	switch that {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		return '.'
	}
}

func (that Cell) String() string {
	switch that {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}
