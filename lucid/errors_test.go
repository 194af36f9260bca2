package lucid

import (
	"strings"
	"testing"
)

func TestDiagnosticFormat(t *testing.T) {
	d := Diagnostic{
		Phase:    PhaseType,
		Location: Position{File: "x.lucid", Line: 3, Column: 7},
		Message:  "Undefined variable 'y'",
	}

	want := "type error at x.lucid:3:7: Undefined variable 'y'"
	if d.Error() != want {
		t.Errorf("expected %q, got %q", want, d.Error())
	}
}

func TestCompileErrorJoinsDiagnostics(t *testing.T) {
	err := &CompileError{Diagnostics: []Diagnostic{
		{Phase: PhaseParse, Location: Position{File: "a", Line: 1, Column: 1}, Message: "first"},
		{Phase: PhaseParse, Location: Position{File: "a", Line: 2, Column: 1}, Message: "second"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Errorf("joined message missing a diagnostic: %q", msg)
	}
	if len(strings.Split(msg, "\n")) != 2 {
		t.Errorf("expected one line per diagnostic: %q", msg)
	}
}

func TestFormatCodeFrame(t *testing.T) {
	source := "let x = 5\nlet y = oops\n"
	frame := FormatCodeFrame(source, Position{Line: 2, Column: 9})

	if !strings.Contains(frame, "let y = oops") {
		t.Errorf("frame should include the source line: %q", frame)
	}
	if !strings.Contains(frame, "^") {
		t.Errorf("frame should include a caret: %q", frame)
	}
	if !strings.Contains(frame, "line 2, column 9") {
		t.Errorf("frame should name the location: %q", frame)
	}
}

func TestFormatCodeFrameOutOfRange(t *testing.T) {
	if FormatCodeFrame("one line", Position{Line: 9, Column: 1}) != "" {
		t.Errorf("out-of-range line should render nothing")
	}
	if FormatCodeFrame("", Position{Line: 1, Column: 1}) != "" {
		t.Errorf("empty source should render nothing")
	}
}
