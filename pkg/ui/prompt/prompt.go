// Package prompt implements the blocking yes/no confirmation gate.
//
// The gate has no timeout and no non-interactive mode: it reads lines
// until one normalizes to an accepted answer. An empty answer means no.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
)

// ConsoleConfirmer reads confirmations line by line from an input stream.
type ConsoleConfirmer struct {
	in         *bufio.Reader
	out        io.Writer
	warnedOnce bool
	tty        bool
}

// NewConsole creates a confirmer on stdin/stdout.
func NewConsole() *ConsoleConfirmer {
	return &ConsoleConfirmer{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		tty: isatty.IsTerminal(os.Stdin.Fd()),
	}
}

// New creates a confirmer with explicit streams, used in tests.
func New(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: bufio.NewReader(in), out: out, tty: true}
}

// Confirm prompts until the answer normalizes to yes or no.
// "y"/"yes" answer true; "n"/"no" and the empty string answer false;
// anything else re-prompts.
func (c *ConsoleConfirmer) Confirm(promptText string) (bool, error) {
	logger := logging.GetLogger("ui.prompt")

	if !c.tty && !c.warnedOnce {
		// The gate still blocks; this only tells the operator why.
		fmt.Fprintln(c.out, "stdin is not a terminal; confirmation prompts will read from piped input")
		c.warnedOnce = true
	}

	for {
		fmt.Fprintf(c.out, "%s [y/N]: ", promptText)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.Wrap(err, errors.ErrPromptRead, "failed to read confirmation")
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			logger.Debug().Str("answer", answer).Msg("Confirmation accepted")
			return true, nil
		case "n", "no", "":
			logger.Debug().Str("answer", answer).Msg("Confirmation declined")
			return false, nil
		default:
			fmt.Fprintln(c.out, "Please answer 'yes' or 'no'.")
		}

		// EOF after a partial final line: treat the loop as unanswerable.
		if err != nil {
			return false, errors.Wrap(err, errors.ErrPromptRead, "input ended before a valid answer")
		}
	}
}

// Scripted is a Confirmer that replays canned answers, for tests and
// dry runs.
type Scripted struct {
	Answers []bool

	// Prompts records every prompt presented, in order.
	Prompts []string

	next int
}

// Confirm pops the next scripted answer; it answers false once the
// script is exhausted.
func (s *Scripted) Confirm(promptText string) (bool, error) {
	s.Prompts = append(s.Prompts, promptText)
	if s.next >= len(s.Answers) {
		return false, nil
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}
