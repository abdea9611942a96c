// Package line provides the plain line-oriented frontend. It reads one
// command per line and prints text views, so it works over pipes and dumb
// terminals.
package line

import (
	"bufio"
	"fmt"

	"github.com/vovakirdan/submarines3d/internal/games/submarines"
	"github.com/vovakirdan/submarines3d/internal/registry"
)

// Frontend runs a match on line-based input and output.
type Frontend struct{}

func init() {
	registry.Register("line", func() registry.Frontend { return Frontend{} })
}

// ID returns "line".
func (Frontend) ID() string { return "line" }

// Title returns the display name.
func (Frontend) Title() string { return "Plain text prompt" }

// Run prints the active player's view, reads a command and prints the reply
// until the session is done. End of input aborts the match.
func (Frontend) Run(sess *submarines.Session, env registry.Env) error {
	out := bufio.NewWriter(env.Out)
	defer out.Flush()

	scanner := bufio.NewScanner(env.In)
	fmt.Fprintln(out, submarines.MsgWelcome)

	showView := true
	for !sess.Done() {
		if showView {
			fmt.Fprint(out, sess.View())
		}
		fmt.Fprint(out, sess.Prompt())
		if err := out.Flush(); err != nil {
			return fmt.Errorf("line: write: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("line: read input: %w", err)
			}
			fmt.Fprintln(out)
			reply := sess.Handle("quit")
			fmt.Fprintln(out, reply.Text)
			return nil
		}

		reply := sess.Handle(scanner.Text())
		fmt.Fprintln(out, reply.Text)

		// Rejected input re-prompts without redrawing the board.
		showView = reply.Kind == submarines.ReplyShot
	}

	if env.Logger != nil {
		env.Logger.Debug("line frontend finished", "match", sess.ID(), "aborted", sess.Aborted())
	}
	return nil
}
