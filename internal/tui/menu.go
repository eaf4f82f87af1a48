package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

const clearScreen = "\033[2J\033[1;1H"

// MenuText is the control summary shown between sessions.
func MenuText() string {
	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("Sorting Visualizer Controls") + "\n")
	b.WriteString("0 - Generate new array\n")
	for _, alg := range sorting.Algorithms() {
		fmt.Fprintf(&b, "%c - Start %s sort\n", alg.Key, alg.Name)
	}
	b.WriteString("q - Return to this menu\n\n")
	b.WriteString(viz.KeyHint.Render("Enter 'R' to run visualizer or 'Q' to quit program"))
	return viz.MenuBox.Render(b.String())
}

// RunMenu reads one non-blank character per prompt: R runs launch, Q ends
// the menu and anything else shows it again. A failed launch is reported
// under the menu until the next choice. End of input ends the menu like Q.
func RunMenu(in io.Reader, out io.Writer, launch func() error) error {
	r := bufio.NewReader(in)
	var failed error
	for {
		fmt.Fprint(out, clearScreen+MenuText()+"\n\n")
		if failed != nil {
			fmt.Fprint(out, viz.ErrorText.Render("session failed: "+failed.Error())+"\n\n")
			failed = nil
		}

		c, err := readChoice(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch unicode.ToUpper(c) {
		case 'R':
			failed = launch()
		case 'Q':
			return nil
		}
	}
}

func readChoice(r *bufio.Reader) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}
