package match

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

var (
	ErrUnknownPhase = errors.New("unknown phase")
	ErrInvalidState = errors.New("invalid match state")

	ErrNotAwaitingPlacement = errors.New("match is not waiting for a placement")
)

// maxSteps bounds Advance: two automatic steps per pass, at most two passes before GameOver.
const maxSteps = 8

// StartTurn computes the active side's moves. With none available the turn counts as a pass.
func StartTurn(state State, board *othello.Board) State {
	if state.Phase != TurnStart {
		return state
	}

	moves := othello.ComputeLegalMoves(board, state.Active)
	if !moves.Empty() {
		state.Passes = 0
		state.Moves = moves
		state.Phase = TurnInProgress
		return state
	}

	state.Moves = othello.LegalMoves{}
	state.Passes++
	state.Passed = state.Active

	if state.Passes >= passLimit {
		return finish(state, board)
	}

	state.Phase = TurnResolved
	return state
}

// Place forwards a placement request for the active side. A rejected request leaves the state
// waiting in TurnInProgress so another request can follow.
func Place(state State, board *othello.Board, col, row int) (State, bool) {
	if state.Phase != TurnInProgress {
		return state, false
	}

	if !board.ApplyPlacement(state.Moves, col, row, state.Active) {
		return state, false
	}

	state.Moves = othello.LegalMoves{}
	state.Passed = 0
	state.Phase = TurnResolved

	return state, true
}

// ResolveTurn ends the match on a full board, otherwise hands the turn over.
func ResolveTurn(state State, board *othello.Board) State {
	if state.Phase != TurnResolved {
		return state
	}

	if board.Count(othello.Empty) == 0 {
		return finish(state, board)
	}

	state.Active = state.Active.Opponent()
	state.Phase = TurnStart

	return state
}

// Step runs the single automatic transition of TurnStart or TurnResolved.
func Step(state State, board *othello.Board) State {
	switch state.Phase {
	case TurnStart:
		return StartTurn(state, board)
	case TurnResolved:
		return ResolveTurn(state, board)
	default:
		return state
	}
}

// Advance steps until the state needs a placement or the match is over.
func Advance(state State, board *othello.Board) State {
	for i := 0; i < maxSteps && !state.AwaitingInput() && !state.IsOver(); i++ {
		state = Step(state, board)
	}
	return state
}

// Reset restarts the match on board.
func Reset(board *othello.Board) State {
	board.Reset()
	return NewState()
}

// Checkpoint is the part of a State worth saving; everything else derives from the board.
type Checkpoint struct {
	Phase  Phase
	Active othello.Side
	Passes int
	Passed othello.Side
}

func (that State) Checkpoint() Checkpoint {
	return Checkpoint{
		Phase:  that.Phase,
		Active: that.Active,
		Passes: that.Passes,
		Passed: that.Passed,
	}
}

// Restore rebuilds a State from a checkpoint taken on board.
func Restore(board *othello.Board, checkpoint Checkpoint) (State, error) {
	if !checkpoint.Active.Valid() {
		return State{}, fmt.Errorf("%w: active side %d", ErrInvalidState, checkpoint.Active)
	}

	if checkpoint.Passes < 0 || checkpoint.Passes > passLimit {
		return State{}, fmt.Errorf("%w: %d passes", ErrInvalidState, checkpoint.Passes)
	}

	if checkpoint.Passed != 0 && !checkpoint.Passed.Valid() {
		return State{}, fmt.Errorf("%w: passed side %d", ErrInvalidState, checkpoint.Passed)
	}

	state := State{
		Phase:  checkpoint.Phase,
		Active: checkpoint.Active,
		Passes: checkpoint.Passes,
		Passed: checkpoint.Passed,
	}

	switch checkpoint.Phase {
	case TurnStart, TurnResolved:
		if checkpoint.Passes >= passLimit {
			return State{}, fmt.Errorf("%w: %d passes outside game over", ErrInvalidState, checkpoint.Passes)
		}
		return state, nil
	case TurnInProgress:
		if checkpoint.Passes != 0 {
			return State{}, fmt.Errorf("%w: %d passes while %s has moves", ErrInvalidState, checkpoint.Passes, state.Active)
		}
		state.Moves = othello.ComputeLegalMoves(board, state.Active)
		if state.Moves.Empty() {
			return State{}, fmt.Errorf("%w: %s has no move to wait for", ErrInvalidState, state.Active)
		}
		return state, nil
	case GameOver:
		if !isFinal(board) {
			return State{}, fmt.Errorf("%w: game over on a position that can still be played", ErrInvalidState)
		}
		state.Outcome = OutcomeOf(board)
		return state, nil
	default:
		return State{}, fmt.Errorf("%w: %d", ErrUnknownPhase, checkpoint.Phase)
	}
}

// isFinal reports a full board or a position where neither side can move.
func isFinal(board *othello.Board) bool {
	if board.Count(othello.Empty) == 0 {
		return true
	}
	return othello.ComputeLegalMoves(board, othello.First).Empty() &&
		othello.ComputeLegalMoves(board, othello.Second).Empty()
}

func finish(state State, board *othello.Board) State {
	state.Moves = othello.LegalMoves{}
	state.Phase = GameOver
	state.Outcome = OutcomeOf(board)
	return state
}
