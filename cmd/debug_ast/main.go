package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"

	"github.com/gosuda/linebasic/parser"
)

func main() {
	format := flag.String("format", "list", "output format: list|pretty|yaml")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-format list|pretty|yaml] FILE\n", os.Args[0])
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	prog, err := parser.ParseProgram(strings.ReplaceAll(string(src), "\r\n", "\n"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch *format {
	case "list":
		fmt.Print(prog.Listing())
	case "pretty":
		for _, line := range prog.Lines() {
			fmt.Printf("%d: %# v\n", line.Number, pretty.Formatter(line.Stmt))
		}
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(prog.Export()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		enc.Close()
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
}
