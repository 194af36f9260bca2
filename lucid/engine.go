package lucid

import (
	"io"
	"os"
)

// Config controls how an Engine runs compiled scripts.
type Config struct {
	// Output receives print/println output; nil means os.Stdout.
	Output io.Writer
}

// Engine turns Lucid source into runnable scripts.
type Engine struct {
	config Config
}

// NewEngine constructs an Engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Engine{config: cfg}
}

// Script is a compiled program bound to its engine's configuration.
type Script struct {
	engine   *Engine
	bytecode *Bytecode
}

// Compile runs the full pipeline over source: lex, parse, type check,
// compile. Pipeline diagnostics are aggregated into a single *CompileError.
func (e *Engine) Compile(source, filename string) (*Script, error) {
	tokens := newLexer(source, filename).tokenize()

	// The first error token is fatal for the pipeline.
	for _, tok := range tokens {
		if tok.Type == tokenError {
			return nil, &CompileError{Diagnostics: []Diagnostic{{
				Phase:    PhaseLex,
				Location: tok.Pos,
				Message:  tok.Str,
			}}}
		}
	}

	parseResult := newParser(tokens).parse()
	if !parseResult.Ok() {
		return nil, &CompileError{Diagnostics: parseResult.Errors}
	}

	checkResult := typecheck(parseResult.Program)
	if !checkResult.Ok() {
		return nil, &CompileError{Diagnostics: checkResult.Errors}
	}

	bytecode, err := compileProgram(parseResult.Program)
	if err != nil {
		return nil, err
	}

	return &Script{engine: e, bytecode: bytecode}, nil
}

// Call executes the named function with the given arguments on a fresh VM.
func (s *Script) Call(name string, args []Value) (Value, error) {
	vm := NewVM()
	vm.SetOutput(s.engine.config.Output)
	return vm.CallFunction(s.bytecode, name, args)
}

// Bytecode exposes the compiled artifact for disassembly tooling.
func (s *Script) Bytecode() *Bytecode {
	return s.bytecode
}
