package linebasic_test

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gosuda/linebasic"
	lbruntime "github.com/gosuda/linebasic/runtime"
)

type programFixture struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
	Error  string   `yaml:"error"`
}

func loadFixtures(t *testing.T, path string) []programFixture {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open fixtures: %v", err)
	}
	defer f.Close()
	var fixtures []programFixture
	if err := yaml.NewDecoder(f).Decode(&fixtures); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	return fixtures
}

// outputLines folds prompt records into the line that follows them, the
// way they appear on a terminal.
func outputLines(out []lbruntime.Output) []string {
	lines := []string{}
	tail := ""
	for _, o := range out {
		if o.NewLine {
			lines = append(lines, tail+o.Text)
			tail = ""
			continue
		}
		tail += o.Text
	}
	if tail != "" {
		lines = append(lines, tail)
	}
	return lines
}

func TestProgramFixtures(t *testing.T) {
	for _, fx := range loadFixtures(t, "testdata/programs.yaml") {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			vm, err := linebasic.Compile(fx.Source)
			if err == nil {
				vm.EnqueueInput(fx.Input...)
				var out []lbruntime.Output
				out, err = vm.Run()
				if err == nil {
					got := outputLines(out)
					if len(got) != len(fx.Output) {
						t.Fatalf("output = %q, want %q", got, fx.Output)
					}
					for i := range got {
						if got[i] != fx.Output[i] {
							t.Fatalf("output line %d = %q, want %q", i, got[i], fx.Output[i])
						}
					}
				}
			}
			if fx.Error == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got none", fx.Error)
			}
			if err.Error() != fx.Error {
				t.Fatalf("error = %q, want %q", err.Error(), fx.Error)
			}
		})
	}
}
