package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BartekS5/VCM/internal/migrate"
)

// consoleDecider implements the gateway decision protocol on a terminal:
// a numbered list of target gateway candidates followed by create-named,
// create-generated and skip options. Out-of-range or non-numeric input is
// re-prompted without limit.
//
// The reader is shared with every other prompt in the run: a second
// bufio.Reader over the same stream would buffer input ahead and starve
// whichever prompt reads next.
type consoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsoleDecider(in *bufio.Reader, out io.Writer) *consoleDecider {
	return &consoleDecider{in: in, out: out}
}

func (d *consoleDecider) ResolveGateway(sourceName string, candidates []string, offerNamed bool) (migrate.Selection, error) {
	fmt.Fprintf(d.out, "\nNo target gateway matches source gateway %q.\n", sourceName)
	for i, c := range candidates {
		fmt.Fprintf(d.out, "  %d) use existing gateway %s\n", i+1, c)
	}

	next := len(candidates) + 1
	createNamed, createGenerated := 0, 0
	if offerNamed {
		createNamed = next
		fmt.Fprintf(d.out, "  %d) create a gateway named %q\n", createNamed, sourceName)
		next++
	}
	createGenerated = next
	fmt.Fprintf(d.out, "  %d) create a gateway with a generated name\n", createGenerated)
	skip := next + 1
	fmt.Fprintf(d.out, "  %d) skip this gateway\n", skip)

	for {
		fmt.Fprintf(d.out, "Select an option [1-%d]: ", skip)
		line, err := d.in.ReadString('\n')
		if err != nil && line == "" {
			return migrate.Selection{}, fmt.Errorf("failed to read selection: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > skip {
			fmt.Fprintln(d.out, "Invalid selection, try again.")
			continue
		}

		switch {
		case n <= len(candidates):
			return migrate.Selection{Choice: migrate.ChooseExisting, Index: n - 1}, nil
		case n == createNamed:
			return migrate.Selection{Choice: migrate.ChooseCreateNamed}, nil
		case n == createGenerated:
			return migrate.Selection{Choice: migrate.ChooseCreateGenerated}, nil
		default:
			return migrate.Selection{Choice: migrate.ChooseSkip}, nil
		}
	}
}

// confirm returns a yes/no prompt bound to the given streams. Anything other
// than "y"/"yes" counts as no. The reader must be the same one the decider
// uses (see consoleDecider).
func confirm(in *bufio.Reader, out io.Writer) migrate.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Fprint(out, prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
