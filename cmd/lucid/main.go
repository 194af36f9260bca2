package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maragkose/lucid/lucid"
)

func main() {
	os.Exit(runCLI(os.Args))
}

func runCLI(args []string) int {
	if len(args) < 2 {
		printUsage()
		return 1
	}

	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "disasm":
		return disasmCommand(args[2:])
	case "repl":
		if err := runREPL(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[1])
		printUsage()
		return 1
	}
}

func runCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "show detailed compilation information")
	function := fs.String("function", "main", "function to invoke")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lucid run: source file required")
		return 1
	}

	script, _, code := compileFile(fs.Arg(0), *verbose)
	if script == nil {
		return code
	}

	if !script.Bytecode().HasFunction(*function) {
		fmt.Fprintf(os.Stderr, "Error: No %s() function found\n", *function)
		return 1
	}

	result, err := script.Call(*function, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *verbose {
		fmt.Print("Program returned: ")
	}
	fmt.Println(result.String())

	// An Int result becomes the exit status; Bool maps to 0/1.
	switch result.Kind() {
	case lucid.ValueInt:
		return int(result.Int())
	case lucid.ValueBool:
		if result.Bool() {
			return 0
		}
		return 1
	default:
		return 0
	}
}

func checkCommand(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lucid check: source file required")
		return 1
	}

	if script, _, code := compileFile(fs.Arg(0), false); script == nil {
		return code
	}
	return 0
}

func disasmCommand(args []string) int {
	fs := flag.NewFlagSet("disasm", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lucid disasm: source file required")
		return 1
	}

	path := fs.Arg(0)
	script, _, code := compileFile(path, false)
	if script == nil {
		return code
	}

	fmt.Print(script.Bytecode().Disassemble(filepath.Base(path)))
	return 0
}

// compileFile reads and compiles a source file, reporting diagnostics with
// code frames. Returns a nil script and an exit code on failure.
func compileFile(path string, verbose bool) (*lucid.Script, string, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not open file: %s\n", path)
		return nil, "", 1
	}
	source := string(data)

	if verbose {
		fmt.Printf("Compiling: %s\n", path)
	}

	engine := lucid.NewEngine(lucid.Config{})
	script, err := engine.Compile(source, path)
	if err != nil {
		reportCompileError(err, source)
		return nil, source, 1
	}

	if verbose {
		bc := script.Bytecode()
		fmt.Printf("  - Functions: %d\n", len(bc.Functions))
		fmt.Printf("  - Constants: %d\n", len(bc.Constants))
		fmt.Printf("  - Instructions: %d bytes\n", len(bc.Instructions))
	}

	return script, source, 0
}

func reportCompileError(err error, source string) {
	var compileErr *lucid.CompileError
	if !errors.As(err, &compileErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for _, diag := range compileErr.Diagnostics {
		fmt.Fprintln(os.Stderr, diag.Error())
		if frame := lucid.FormatCodeFrame(source, diag.Location); frame != "" {
			fmt.Fprintln(os.Stderr, frame)
		}
	}
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] <file.lucid>\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run     compile and execute a program (calls main)")
	fmt.Fprintln(os.Stderr, "  check   compile without executing")
	fmt.Fprintln(os.Stderr, "  disasm  print the compiled bytecode listing")
	fmt.Fprintln(os.Stderr, "  repl    start an interactive session")
	fmt.Fprintln(os.Stderr, "  help    show this help message")
	fmt.Fprintln(os.Stderr, "Run flags:")
	fmt.Fprintln(os.Stderr, "  -v                show detailed compilation information")
	fmt.Fprintln(os.Stderr, "  -function string  function to invoke (default \"main\")")
}
