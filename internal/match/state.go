package match

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// Phase is the position of a match in its turn cycle.
type Phase int

const (
	TurnStart Phase = iota
	TurnInProgress
	TurnResolved
	GameOver
)

// passLimit consecutive passes end the match.
const passLimit = 2

func (that Phase) String() string {
	switch that {
	case TurnStart:
		return "turn_start"
	case TurnInProgress:
		return "turn_in_progress"
	case TurnResolved:
		return "turn_resolved"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func ParsePhase(s string) (Phase, error) {
	for _, phase := range []Phase{TurnStart, TurnInProgress, TurnResolved, GameOver} {
		if phase.String() == s {
			return phase, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

// Outcome is the final result, fixed once the match reaches GameOver.
type Outcome struct {
	Kind   OutcomeKind
	Winner othello.Side
	Black  int
	White  int
}

func (that Outcome) String() string {
	switch that.Kind {
	case OutcomeWin:
		return fmt.Sprintf("%s wins %d-%d", that.Winner, that.Black, that.White)
	case OutcomeDraw:
		return fmt.Sprintf("Draw %d-%d", that.Black, that.White)
	default:
		return "undecided"
	}
}

// OutcomeOf compares the piece counts on board. Equal counts are a draw.
func OutcomeOf(board *othello.Board) Outcome {
	outcome := Outcome{
		Black: board.Count(othello.Black),
		White: board.Count(othello.White),
	}

	switch {
	case outcome.Black > outcome.White:
		outcome.Kind = OutcomeWin
		outcome.Winner = othello.First
	case outcome.White > outcome.Black:
		outcome.Kind = OutcomeWin
		outcome.Winner = othello.Second
	default:
		outcome.Kind = OutcomeDraw
	}

	return outcome
}

// State carries everything the turn cycle needs besides the board itself.
type State struct {
	Phase  Phase
	Active othello.Side
	Passes int
	// Passed is the side whose turn was most recently skipped; zero once a piece is placed.
	Passed othello.Side
	// Moves holds the active side's legal moves while the phase is TurnInProgress.
	Moves   othello.LegalMoves
	Outcome Outcome
}

func NewState() State {
	return State{
		Phase:  TurnStart,
		Active: othello.First,
	}
}

// AwaitingInput reports that the state only moves on with an external placement.
func (that State) AwaitingInput() bool {
	return that.Phase == TurnInProgress
}

func (that State) IsOver() bool {
	return that.Phase == GameOver
}
