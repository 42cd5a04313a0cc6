package ast_test

import (
	"reflect"
	"testing"

	"github.com/gosuda/linebasic/ast"
	"github.com/gosuda/linebasic/parser"
)

func TestFormatNormalizes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"10   let   x=5", "10 let x = 5"},
		{"10 let x = -(2+3)", "10 let x = 0 - (2 + 3)"},
		{"10 let x = (1+2)*3", "10 let x = (1 + 2) * 3"},
		{"10 let x = 1+(2*3)", "10 let x = 1 + 2 * 3"},
		{"10 let x = 8-(3-1)", "10 let x = 8 - (3 - 1)"},
		{"10 let x = (8-3)-1", "10 let x = 8 - 3 - 1"},
		{"10 let x = 8/(4/2)", "10 let x = 8 / (4 / 2)"},
		{`10 print "a",b;`, `10 print "a" , b ;`},
		{"10 print", "10 print"},
		{`10 input "n? " n,m`, `10 input "n? " n, m`},
		{"10 input n", "10 input n"},
		{"10 for i=1 to 10", "10 for i = 1 to 10"},
		{"10 next i", "10 next i"},
		{"10 if a<b then goto 30", "10 if a < b then goto 30"},
		{"10 if a=b then", "10 if a = b then"},
		{"10 gosub 0100", "10 gosub 100"},
		{"10 return", "10 return"},
		{"10 end", "10 end"},
		{"010", "10"},
	}
	for _, tc := range cases {
		line, err := parser.ParseLine(parser.Tokenize(tc.src, 1))
		if err != nil {
			t.Fatalf("parse %q: %v", tc.src, err)
		}
		if got := ast.Format(line); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	sources := []string{
		"10 let x = -a * -(b - c) / 2",
		"20 print 1 -2; (3) 4",
		`30 if 2 * (a + 1) > b - -c then print "big", a`,
		"40 let y = ((((1))))",
	}
	for _, src := range sources {
		line, err := parser.ParseLine(parser.Tokenize(src, 1))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		again, err := parser.ParseLine(parser.Tokenize(ast.Format(line), 1))
		if err != nil {
			t.Fatalf("reparse %q: %v", ast.Format(line), err)
		}
		if !reflect.DeepEqual(line, again) {
			t.Fatalf("round trip changed %q:\n%#v\n%#v", src, line, again)
		}
	}
}

func TestListing(t *testing.T) {
	prog, err := parser.ParseProgram("20 end\n10 print \"hi\"\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := "10 print \"hi\"\n20 end\n"
	if got := prog.Listing(); got != want {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestExport(t *testing.T) {
	prog, err := parser.ParseProgram("10 let x = a + 1\n20 goto 10")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	nodes := prog.Export()
	if len(nodes) != 2 {
		t.Fatalf("unexpected export size: %d", len(nodes))
	}
	if nodes[0]["kind"] != "let" || nodes[0]["line"] != 10 {
		t.Fatalf("unexpected first node: %v", nodes[0])
	}
	expr, ok := nodes[0]["expr"].(map[string]any)
	if !ok || expr["op"] != "+" || expr["right"] != int64(1) {
		t.Fatalf("unexpected expr node: %v", nodes[0]["expr"])
	}
	if nodes[1]["kind"] != "goto" || nodes[1]["target"] != 20-10 {
		t.Fatalf("unexpected second node: %v", nodes[1])
	}
}
