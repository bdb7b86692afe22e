/*
File   : pitlang/std/builtins.go
Package: std

Package std implements PitLang's standard library: the process-wide `std`
Object the evaluator binds into the root environment, and the per-kind
method tables (Array, String, Number) behind built-in method dispatch.
Builtins are plain object.Builtin values whose callbacks close over a Host,
so tests can swap stdout/stdin/argv/random for buffers and fakes without
touching any global state.
*/
package std

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/akashmaji946/pitlang/object"
)

// Host carries the process-level collaborators the std builtins need:
// where print writes, where get_line reads, the vector std.argv() exposes,
// the source behind std.random(), and the hook std.exit() calls.
type Host struct {
	Writer io.Writer
	Reader *bufio.Reader
	Argv   []string
	Rand   *rand.Rand
	Exit   func(code int)
}

// NewHost returns a Host with the real process collaborators: stdout,
// stdin, os.Exit, and a time-seeded random source.
func NewHost(argv []string) *Host {
	return &Host{
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
		Argv:   argv,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Exit:   os.Exit,
	}
}

// SetWriter redirects print/println output, typically to a buffer in tests
// or to the REPL's writer.
func (h *Host) SetWriter(w io.Writer) {
	h.Writer = w
}

// SetReader redirects get_line input.
func (h *Host) SetReader(r io.Reader) {
	h.Reader = bufio.NewReader(r)
}

// New builds the `std` Object: the core I/O, time and process builtins
// first, then the supplementary ones.
func New(h *Host) *object.Object {
	std := object.NewObject()
	reg := func(name string, fn object.BuiltinFn) {
		std.Set(name, &object.Builtin{Name: "std." + name, Fn: fn})
	}

	reg("time", h.timeNow)
	reg("random", h.random)
	reg("print", h.print)
	reg("println", h.println)
	reg("argv", h.argv)
	reg("get_line", h.getLine)
	reg("read_file", h.readFile)
	reg("write_file", h.writeFile)
	reg("exit", h.exitBuiltin)

	reg("time_string", h.timeString)
	reg("json_encode", h.jsonEncode)
	reg("json_decode", h.jsonDecode)

	reg("fopen", h.fopen)
	reg("fclose", h.fclose)
	reg("fread", h.fread)
	reg("fwrite", h.fwrite)
	reg("fseek", h.fseek)
	reg("ftell", h.ftell)

	return std
}

// newError builds a RuntimeError without position information; the
// evaluator's call site fills in the line and column of the offending call.
func newError(kind object.ErrorKindTag, format string, a ...interface{}) *object.RuntimeError {
	return &object.RuntimeError{ErrKind: kind, Message: fmt.Sprintf(format, a...)}
}

func arityError(name string, want string, got int) *object.RuntimeError {
	return newError(object.ArityError, "%s expects %s argument(s), got %d", name, want, got)
}

func numberArg(name string, args []object.Value, i int) (*object.Number, *object.RuntimeError) {
	n, ok := args[i].(*object.Number)
	if !ok {
		return nil, newError(object.TypeError, "%s: argument %d must be a number, got %s", name, i+1, args[i].Kind())
	}
	return n, nil
}

func stringArg(name string, args []object.Value, i int) (*object.String, *object.RuntimeError) {
	s, ok := args[i].(*object.String)
	if !ok {
		return nil, newError(object.TypeError, "%s: argument %d must be a string, got %s", name, i+1, args[i].Kind())
	}
	return s, nil
}
