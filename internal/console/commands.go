package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

type CommandKind int

const (
	CommandPlace CommandKind = iota + 1
	CommandReset
	CommandBoard
	CommandHelp
	CommandQuit
	CommandNew
	CommandResume
)

type Command struct {
	Kind   CommandKind
	Target othello.Coord
	// ID names the saved match for CommandResume; empty means the latest one.
	ID string
}

const helpText = `Commands:
  place <square>   put a piece, e.g. "place c4", "c4" or "2 3" (column row, zero-based)
  board            show the board again
  reset            start the match over
  new              drop this match and open a fresh one
  resume [id]      continue a saved match, the latest one without an id
  help             show this text
  quit             leave`

// ParseCommand reads one input line. A bare square is a placement.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	switch fields[0] {
	case "reset", "r":
		return Command{Kind: CommandReset}, nil
	case "new", "abandon":
		return Command{Kind: CommandNew}, nil
	case "resume":
		if len(fields) > 2 {
			return Command{}, fmt.Errorf("%w: resume takes one match id", ErrUnknownCommand)
		}
		command := Command{Kind: CommandResume}
		if len(fields) == 2 {
			// ids are case-sensitive, take it from the raw line
			command.ID = strings.Fields(line)[1]
		}
		return command, nil
	case "board", "show", "b":
		return Command{Kind: CommandBoard}, nil
	case "help", "?", "h":
		return Command{Kind: CommandHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: CommandQuit}, nil
	case "place", "play", "p":
		if len(fields) == 1 {
			return Command{}, fmt.Errorf("%w: %s needs a square", othello.ErrBadNotation, fields[0])
		}
		return parsePlacement(strings.Join(fields[1:], " "))
	default:
		placement, err := parsePlacement(strings.Join(fields, " "))
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}
		return placement, nil
	}
}

func parsePlacement(s string) (Command, error) {
	target, err := othello.ParseCoord(s)
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: CommandPlace, Target: target}, nil
}
