/*
File   : pitlang/cmd/pitlang/main.go
Package: main

The pitlang command. Modes:

	pitlang                      Start the interactive REPL
	pitlang <script> [arg ...]   Execute a PitLang script
	pitlang --ast <script>       Parse and pretty-print the AST as source
	pitlang --help / --version   Usage and version information
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/akashmaji946/pitlang/config"
	"github.com/akashmaji946/pitlang/eval"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
	"github.com/akashmaji946/pitlang/repl"
	"github.com/akashmaji946/pitlang/std"
)

var AUTHOR = "pitlang maintainers"

var LICENSE = "MIT"

var BANNER = `
	 ____  _ _   _
	|  _ \(_) |_| |    __ _ _ __   __ _
	| |_) | | __| |   / _' | '_ \ / _' |
	|  __/| | |_| |__| (_| | | | | (_| |
	|_|   |_|\__|_____\__,_|_| |_|\__, |
	                              |___/
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}
		if arg == "--ast" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing script for --ast. Usage: pitlang --ast <path>\n")
				os.Exit(1)
			}
			printAST(os.Args[2])
			os.Exit(0)
		}

		runFile(arg, os.Args[2:])
		return
	}

	cfg := config.Load(".")
	repler := repl.NewRepl(BANNER, cfg.Version, AUTHOR, LINE, LICENSE, cfg.Prompt)
	repler.MaxDepth = cfg.RecursionLimit
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("PitLang - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  pitlang                       Start interactive REPL mode")
	yellowColor.Println("  pitlang <path> [arg ...]      Execute a PitLang script (.pit)")
	yellowColor.Println("  pitlang --ast <path>          Print the parsed AST back as source")
	yellowColor.Println("  pitlang --help                Display this help message")
	yellowColor.Println("  pitlang --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                         Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  pitlang examples/primes.pit 30")
	yellowColor.Println("  pitlang --ast examples/fib.pit")
}

func showVersion() {
	cfg := config.Load(".")
	cyanColor.Println("PitLang - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", cfg.Version)
	cyanColor.Printf("License: %s\n", LICENSE)
}

func readScript(fileName string) string {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	return string(content)
}

// printAST parses the script and writes it back as canonical source, the
// mechanism behind the parse/print round-trip property.
func printAST(fileName string) {
	source := readScript(fileName)
	prog, diags := parser.ParseSource(source)
	if len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(os.Stderr, "%s\n", d.At(fileName))
		}
		os.Exit(1)
	}
	fmt.Print(parser.Print(prog))
}

func runFile(fileName string, scriptArgs []string) {
	source := readScript(fileName)
	cfg := config.Load(filepath.Dir(fileName))
	executeFileWithRecovery(fileName, source, scriptArgs, cfg)
}

// executeFileWithRecovery parses and evaluates a script with panic
// recovery, so an interpreter bug surfaces as a diagnostic instead of a
// Go stack trace.
func executeFileWithRecovery(fileName, source string, scriptArgs []string, cfg *config.Config) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	prog, diags := parser.ParseSource(source)
	if len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(os.Stderr, "%s\n", d.At(fileName))
		}
		os.Exit(1)
	}

	argv := append([]string{"pitlang", fileName}, scriptArgs...)
	evaluator := eval.NewEvaluator(std.NewHost(argv))
	evaluator.SetMaxDepth(cfg.RecursionLimit)

	result := evaluator.Eval(prog)
	if err, ok := result.(*object.RuntimeError); ok {
		redColor.Fprintf(os.Stderr, "%s\n", err.Diagnostic(fileName))
		os.Exit(1)
	}
}
