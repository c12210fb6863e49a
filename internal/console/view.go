package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/match"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const legalMark = '*'

// View draws match views as plain text.
type View struct {
	out io.Writer
}

func NewView(out io.Writer) *View {
	return &View{out: out}
}

// Render writes the board with column letters and row numbers, then the status lines.
func (that *View) Render(view match.View) error {
	var b strings.Builder

	b.WriteString("  ")
	for col := 0; col < othello.Size; col++ {
		fmt.Fprintf(&b, " %c", 'a'+col)
	}
	b.WriteByte('\n')

	for row, squares := range view.Squares {
		fmt.Fprintf(&b, "%2d", row+1)
		for _, square := range squares {
			mark := square.Cell.Letter()
			if square.Cell == othello.Empty && square.Legal {
				mark = legalMark
			}
			b.WriteByte(' ')
			b.WriteByte(mark)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Black %d - White %d\n", view.Black, view.White)

	if view.Phase == match.GameOver {
		fmt.Fprintf(&b, "Game over: %s\n", view.Outcome)
		b.WriteString("Type reset or play any square to start again.\n")
	} else {
		if view.Passed.Valid() {
			fmt.Fprintf(&b, "%s has no legal move and passes.\n", view.Passed)
		}
		if view.Phase == match.TurnInProgress {
			fmt.Fprintf(&b, "%s to move (%d legal)\n", view.Active, view.LegalCount())
		}
	}

	if _, err := io.WriteString(that.out, b.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// Notice writes one line of feedback.
func (that *View) Notice(format string, args ...any) {
	fmt.Fprintf(that.out, format+"\n", args...)
}
