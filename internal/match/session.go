package match

import "github.com/rocketscienceinc/othello-backend/internal/othello"

// Session owns the board and turn state of one match.
// It is not safe for concurrent use; the host serializes placement and reset requests.
type Session struct {
	board *othello.Board
	state State
}

func NewSession() *Session {
	board := othello.NewBoard()
	return &Session{
		board: board,
		state: NewState(),
	}
}

// RestoreSession resumes a match from a saved position and checkpoint.
func RestoreSession(board *othello.Board, checkpoint Checkpoint) (*Session, error) {
	state, err := Restore(board, checkpoint)
	if err != nil {
		return nil, err
	}

	return &Session{board: board, state: state}, nil
}

// Tick runs one automatic transition, the way a host calls it once per frame.
func (that *Session) Tick() {
	that.state = Step(that.state, that.board)
}

// Advance ticks until the active side must place a piece or the match is over.
func (that *Session) Advance() {
	that.state = Advance(that.state, that.board)
}

// Place submits a placement for the active side and reports whether it was accepted.
func (that *Session) Place(col, row int) bool {
	next, ok := Place(that.state, that.board, col, row)
	that.state = next
	return ok
}

// CheckPlacement explains why Place would reject (col, row); nil if it would be accepted.
func (that *Session) CheckPlacement(col, row int) error {
	if that.state.Phase != TurnInProgress {
		return ErrNotAwaitingPlacement
	}
	return that.board.CheckPlacement(that.state.Moves, col, row, that.state.Active)
}

func (that *Session) Reset() {
	that.state = Reset(that.board)
}

func (that *Session) State() State {
	return that.state
}

// Board returns a copy of the current position.
func (that *Session) Board() *othello.Board {
	return that.board.Clone()
}

func (that *Session) View() View {
	return NewView(that.board, that.state)
}
