package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gosuda/linebasic"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

func runPlain(cfg appConfig, stdin io.Reader, stdout io.Writer) error {
	vm, err := linebasic.Compile(cfg.source)
	if err != nil {
		return err
	}
	vm.SetStepLimit(cfg.steps)

	reader := bufio.NewReader(stdin)
	writer := bufio.NewWriter(stdout)
	defer writer.Flush()

	vm.SetOutputHook(func(out lbruntime.Output) {
		if out.NewLine {
			fmt.Fprintln(writer, out.Text)
		} else {
			fmt.Fprint(writer, out.Text)
		}
	})

	vm.SetInputProvider(func(req lbruntime.InputRequest) (string, error) {
		if err := writer.Flush(); err != nil {
			return "", err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if errors.Is(err, io.EOF) && line == "" {
			return "", io.EOF
		}
		return line, nil
	})

	_, err = vm.Run()
	return err
}
