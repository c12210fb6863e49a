package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of columns and rows on the board.
const Size = 8

// Coord addresses a square by column and row, both zero-based.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Coord) Inside() bool {
	return that.Col >= 0 && that.Row >= 0 && that.Col < Size && that.Row < Size
}

func (that Coord) index() int {
	return that.Row*Size + that.Col
}

// String renders the coordinate in algebraic form: column letter, 1-based row ("c4" is (2,3)).
func (that Coord) String() string {
	if !that.Inside() {
		return fmt.Sprintf("(%d,%d)", that.Col, that.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+that.Col, that.Row+1)
}

// ParseCoord reads either algebraic notation ("c4") or two zero-based integers ("2 3", "2,3").
// Coordinates outside the board parse fine; rejecting them is the engine's job.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 2 {
		col, err := strconv.Atoi(fields[0])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: column %q", ErrBadNotation, fields[0])
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: row %q", ErrBadNotation, fields[1])
		}
		return Coord{Col: col, Row: row}, nil
	}

	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	return Coord{Col: int(s[0] - 'a'), Row: row - 1}, nil
}

// directions are walked in this order: N, NE, E, SE, S, SW, W, NW.
var directions = [8]Coord{
	{Col: 0, Row: -1},
	{Col: 1, Row: -1},
	{Col: 1, Row: 0},
	{Col: 1, Row: 1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 1},
	{Col: -1, Row: 0},
	{Col: -1, Row: -1},
}
