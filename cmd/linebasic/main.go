package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit status: 0 when END is reached, 1 on a
// fault, 2 on a usage error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linebasic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: linebasic [-tui] [-steps N] FILE")
		fs.PrintDefaults()
	}
	useTUI := fs.Bool("tui", false, "run the program inside the terminal UI")
	steps := fs.Int("steps", 0, "abort after this many executed statements (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	path := fs.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		report(stderr, err)
		return 1
	}
	cfg := appConfig{
		path:   path,
		source: strings.ReplaceAll(string(src), "\r\n", "\n"),
		steps:  *steps,
	}

	if !*useTUI {
		if err := runPlain(cfg, stdin, stdout); err != nil {
			report(stderr, err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(stderr, "tui: %v\n", err)
		return 1
	}
	if m, ok := final.(model); ok && !m.succeeded() {
		if m.err != nil {
			report(stderr, m.err)
		}
		return 1
	}
	return 0
}

// report prints a single diagnostic line, coloured when w is a terminal.
func report(w io.Writer, err error) {
	msg := err.Error()
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		msg = errStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}
