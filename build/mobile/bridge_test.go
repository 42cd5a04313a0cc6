package mobile

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) runResult {
	t.Helper()
	var res runResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("bad json %q: %v", raw, err)
	}
	return res
}

func TestRunWithInput(t *testing.T) {
	res := decode(t, Run("10 input \"n? \" n\n20 print n * 2\n30 end", `["21"]`))
	if res.Error != "" {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if len(res.Outputs) != 2 || res.Outputs[0].Text != "n? " || res.Outputs[0].NewLine {
		t.Fatalf("unexpected outputs: %+v", res.Outputs)
	}
	if res.Outputs[1].Text != "42" || !res.Outputs[1].NewLine {
		t.Fatalf("unexpected outputs: %+v", res.Outputs)
	}
}

func TestRunKeepsOutputBeforeFault(t *testing.T) {
	res := decode(t, Run("10 print 1\n20 goto 99\n", ""))
	if res.Error != "error on line 20: line 99 does not exist" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if len(res.Outputs) != 1 || res.Outputs[0].Text != "1" {
		t.Fatalf("unexpected outputs: %+v", res.Outputs)
	}
}

func TestRunReportsBadInput(t *testing.T) {
	res := decode(t, Run("10 end", "{"))
	if res.Error == "" {
		t.Fatalf("expected inputs json error")
	}
	res = decode(t, Run("10 let = 1", ""))
	if res.Error != "[1:7] syntax error: expected IDENTIFIER but saw EQ" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}
