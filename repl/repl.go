/*
File   : pitlang/repl/repl.go
Package: repl

Package repl implements PitLang's interactive Read-Eval-Print Loop:
readline-backed line editing with history, colored feedback, and a
persistent environment so bindings survive from one line to the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/pitlang/eval"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
	"github.com/akashmaji946/pitlang/std"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration for one interactive session.
type Repl struct {
	Banner   string
	Version  string
	Author   string
	Line     string
	License  string
	Prompt   string
	MaxDepth int
}

// NewRepl creates a REPL instance with the given visual configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to PitLang!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until '.exit' or EOF. One evaluator lives for
// the whole session, so `let` bindings and function declarations persist
// across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	host := std.NewHost([]string{"pitlang"})
	host.SetWriter(writer)
	host.SetReader(reader)
	evaluator := eval.NewEvaluator(host)
	if r.MaxDepth > 0 {
		evaluator.SetMaxDepth(r.MaxDepth)
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one input line. Unlike file
// mode the REPL never exits on an error: diagnostics are printed in red
// and the loop continues.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	// A bare expression is the common REPL input; retry with a synthetic
	// semicolon before surfacing a parse error.
	prog, diags := parser.ParseSource(line)
	if len(diags) > 0 && !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
		if retry, retryDiags := parser.ParseSource(line + ";"); len(retryDiags) == 0 {
			prog, diags = retry, nil
		}
	}
	if len(diags) > 0 {
		for _, d := range diags {
			redColor.Fprintf(writer, "%s\n", d.String())
		}
		return
	}

	result := evaluator.Eval(prog)
	if err, ok := result.(*object.RuntimeError); ok {
		redColor.Fprintf(writer, "[%d:%d] %s: %s\n", err.Line, err.Col, err.ErrKind, err.Message)
		return
	}
	if result != nil && result.Kind() != object.NullKind {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
