package match

import "github.com/rocketscienceinc/othello-backend/internal/othello"

// Square is what a renderer needs to draw one cell.
type Square struct {
	Cell  othello.Cell
	Legal bool
}

// View is the read-only picture of a session handed to the presentation layer.
type View struct {
	Squares [othello.Size][othello.Size]Square // indexed [row][col]
	Phase   Phase
	Active  othello.Side
	Passes  int
	Passed  othello.Side
	Black   int
	White   int
	Outcome Outcome
}

func NewView(board *othello.Board, state State) View {
	view := View{
		Phase:   state.Phase,
		Active:  state.Active,
		Passes:  state.Passes,
		Passed:  state.Passed,
		Black:   board.Count(othello.Black),
		White:   board.Count(othello.White),
		Outcome: state.Outcome,
	}

	awaiting := state.AwaitingInput()
	for row := 0; row < othello.Size; row++ {
		for col := 0; col < othello.Size; col++ {
			view.Squares[row][col] = Square{
				Cell:  board.At(col, row),
				Legal: awaiting && state.Moves.Contains(othello.Coord{Col: col, Row: row}),
			}
		}
	}

	return view
}

func (that View) LegalCount() int {
	count := 0
	for _, row := range that.Squares {
		for _, square := range row {
			if square.Legal {
				count++
			}
		}
	}
	return count
}
