package submarines

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

// CommandKind identifies what a line of player input asks for.
type CommandKind int

const (
	CmdFire CommandKind = iota // Fire at Command.Coord
	CmdShow                    // Reveal the active player's own board
	CmdQuit                    // Abort the match
	CmdHelp                    // Print usage
)

// Command is one parsed line of player input.
type Command struct {
	Kind  CommandKind
	Coord core.Coord
}

// ErrBadCommand is returned for input that is neither a coordinate nor a
// known word.
var ErrBadCommand = errors.New("invalid format. Use 'depth,row,column' (z,y,x)")

// ParseCommand parses "z,y,x", "show", "quit" or "help". Input is
// case-insensitive and surrounding whitespace is ignored, including around
// each coordinate component. Range is not checked here.
func ParseCommand(line string) (Command, error) {
	text := strings.ToLower(strings.TrimSpace(line))

	switch text {
	case "show":
		return Command{Kind: CmdShow}, nil
	case "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	}

	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Command{}, ErrBadCommand
	}

	var zyx [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Command{}, ErrBadCommand
		}
		zyx[i] = n
	}

	return Command{Kind: CmdFire, Coord: core.FromZYX(zyx[0], zyx[1], zyx[2])}, nil
}
