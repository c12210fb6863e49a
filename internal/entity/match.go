package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/match"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerBlack = "B"
	PlayerWhite = "W"
	PlayerTie   = "-"

	NoPlayer = ""
)

var (
	ErrUnknownMatchStatus = errors.New("unknown match status")
	ErrCorruptSnapshot    = errors.New("corrupt match snapshot")
)

// Match is the stored form of a session: the current position and turn cycle, no history.
type Match struct {
	ID     string               `json:"id"`
	Board  [othello.Size]string `json:"board"`
	Turn   string               `json:"player_turn"`
	Phase  string               `json:"phase"`
	Passes int                  `json:"passes"`
	Passed string               `json:"passed,omitempty"`
	Winner string               `json:"winner"`
	Status string               `json:"status"`
	Black  int                  `json:"black"`
	White  int                  `json:"white"`
}

// NewMatch takes a snapshot of session under id.
func NewMatch(id string, session *match.Session) *Match {
	state := session.State()
	board := session.Board()

	snapshot := &Match{
		ID:     id,
		Board:  board.Rows(),
		Turn:   sideMark(state.Active),
		Phase:  state.Phase.String(),
		Passes: state.Passes,
		Passed: sideMark(state.Passed),
		Status: StatusOngoing,
		Black:  board.Count(othello.Black),
		White:  board.Count(othello.White),
	}

	if state.IsOver() {
		snapshot.Status = StatusFinished
		snapshot.Winner = winnerMark(state.Outcome)
	}

	return snapshot
}

// Session rebuilds a live session from the snapshot.
func (that *Match) Session() (*match.Session, error) {
	board, err := othello.ParseBoard(that.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	phase, err := match.ParsePhase(that.Phase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	active, err := othello.ParseSide(that.Turn)
	if err != nil {
		return nil, fmt.Errorf("%w: turn: %w", ErrCorruptSnapshot, err)
	}

	var passed othello.Side
	if that.Passed != NoPlayer {
		if passed, err = othello.ParseSide(that.Passed); err != nil {
			return nil, fmt.Errorf("%w: passed: %w", ErrCorruptSnapshot, err)
		}
	}

	session, err := match.RestoreSession(board, match.Checkpoint{
		Phase:  phase,
		Active: active,
		Passes: that.Passes,
		Passed: passed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	return session, nil
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}

func sideMark(side othello.Side) string {
	if !side.Valid() {
		return NoPlayer
	}
	return string(othello.CellOf(side).Letter())
}

func winnerMark(outcome match.Outcome) string {
	switch outcome.Kind {
	case match.OutcomeWin:
		return sideMark(outcome.Winner)
	case match.OutcomeDraw:
		return PlayerTie
	default:
		return NoPlayer
	}
}
