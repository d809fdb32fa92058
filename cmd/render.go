package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal the raw markdown is printed instead, so reports stay pipeable.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
