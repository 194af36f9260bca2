package lucid

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase names the pipeline stage a diagnostic originated from.
type Phase string

const (
	PhaseLex   Phase = "lex"
	PhaseParse Phase = "parse"
	PhaseType  Phase = "type"
)

// Diagnostic is a located pipeline error. Runtime errors carry no location
// and are reported as plain errors instead.
type Diagnostic struct {
	Phase    Phase
	Location Position
	Message  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s error at %s:%d:%d: %s",
		d.Phase, d.Location.File, d.Location.Line, d.Location.Column, d.Message)
}

// CompileError aggregates every diagnostic from a failed pipeline run.
type CompileError struct {
	Diagnostics []Diagnostic
}

func (e *CompileError) Error() string {
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// FormatCodeFrame renders the offending source line with a caret under the
// diagnostic's column. Returns "" when the location cannot be resolved.
func FormatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
