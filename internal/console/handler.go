package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/match"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

// LineReader is the input side of the console; *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type matchManager interface {
	Start(ctx context.Context) *entity.Match
	Resume(ctx context.Context, id string) (*entity.Match, error)
	Abandon(ctx context.Context) error
	Place(ctx context.Context, col, row int) (*entity.Match, error)
	Reset(ctx context.Context) (*entity.Match, error)
	View() (match.View, error)
}

type Handler struct {
	logger  *slog.Logger
	reader  LineReader
	view    *View
	manager matchManager
}

func NewHandler(logger *slog.Logger, reader LineReader, view *View, manager matchManager) *Handler {
	return &Handler{
		logger:  logger.With("component", "console"),
		reader:  reader,
		view:    view,
		manager: manager,
	}
}

// NewLineReader opens a readline prompt on the terminal with history kept in historyFile.
func NewLineReader(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "othello> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("place"),
			readline.PcItem("board"),
			readline.PcItem("reset"),
			readline.PcItem("new"),
			readline.PcItem("resume"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	return rl, nil
}

// Run shows the board and serves commands until quit, end of input or ctx is done.
func (that *Handler) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.show(); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		}

		that.reader.SetPrompt(that.prompt())

		line, err := that.reader.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			log.Info("console closed by user")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		quit, err := that.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			log.Info("console closed by user")
			return nil
		}
	}
}

func (that *Handler) handle(ctx context.Context, line string) (bool, error) {
	command, err := ParseCommand(line)
	switch {
	case errors.Is(err, ErrEmptyCommand):
		return false, nil
	case err != nil:
		that.view.Notice("%s; type help for the list of commands.", err)
		return false, nil
	}

	switch command.Kind {
	case CommandPlace:
		return false, that.place(ctx, command.Target)
	case CommandReset:
		if _, err = that.manager.Reset(ctx); err != nil {
			return false, fmt.Errorf("failed to reset match: %w", err)
		}
		return false, that.show()
	case CommandNew:
		return false, that.startOver(ctx)
	case CommandResume:
		return false, that.resume(ctx, command.ID)
	case CommandBoard:
		return false, that.show()
	case CommandHelp:
		that.view.Notice(helpText)
		return false, nil
	case CommandQuit:
		return true, nil
	default:
		return false, nil
	}
}

func (that *Handler) place(ctx context.Context, target othello.Coord) error {
	view, err := that.manager.View()
	if err != nil {
		return fmt.Errorf("failed to get match view: %w", err)
	}

	_, err = that.manager.Place(ctx, target.Col, target.Row)
	switch {
	case err == nil:
		return that.show()
	case errors.Is(err, apperror.ErrGameFinished):
		// a placement on the result screen starts the next match
		if _, err = that.manager.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset match: %w", err)
		}
		return that.show()
	case errors.Is(err, othello.ErrInvalidCoordinate):
		that.view.Notice("%s is off the board, try again.", target)
	case errors.Is(err, othello.ErrCellOccupied):
		that.view.Notice("%s is already taken, try again.", target)
	case errors.Is(err, othello.ErrIllegalMove):
		that.view.Notice("%s captures nothing for %s, try again.", target, view.Active)
	default:
		return fmt.Errorf("failed to place piece: %w", err)
	}

	return nil
}

// startOver abandons the current match, if any, and opens a new one.
func (that *Handler) startOver(ctx context.Context) error {
	if err := that.manager.Abandon(ctx); err != nil && !errors.Is(err, apperror.ErrNoActiveMatch) {
		return fmt.Errorf("failed to abandon match: %w", err)
	}

	started := that.manager.Start(ctx)
	that.view.Notice("New match %s.", started.ID)

	return that.show()
}

func (that *Handler) resume(ctx context.Context, id string) error {
	resumed, err := that.manager.Resume(ctx, id)
	switch {
	case err == nil:
		that.view.Notice("Resumed match %s.", resumed.ID)
		return that.show()
	case errors.Is(err, apperror.ErrPersistenceDisabled):
		that.view.Notice("Saved matches are disabled, nothing to resume.")
	case errors.Is(err, apperror.ErrMatchNotFound):
		if id == "" {
			that.view.Notice("No saved match to resume.")
		} else {
			that.view.Notice("No saved match %s.", id)
		}
	default:
		that.logger.Error("failed to resume match", "match_id", id, "error", err)
		that.view.Notice("Could not resume match: %s.", err)
	}

	return nil
}

func (that *Handler) show() error {
	view, err := that.manager.View()
	if err != nil {
		return fmt.Errorf("failed to get match view: %w", err)
	}

	return that.view.Render(view)
}

func (that *Handler) prompt() string {
	view, err := that.manager.View()
	if err != nil {
		return "othello> "
	}

	if view.Phase == match.GameOver {
		return "result> "
	}

	return strings.ToLower(view.Active.String()) + "> "
}
