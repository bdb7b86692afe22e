/*
File   : pitlang/eval/eval_examples_test.go
Package: eval

End-to-end runs of the shipped example scripts with captured I/O.
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
	"github.com/akashmaji946/pitlang/std"
)

// runExample executes examples/<file> with the given trailing arguments
// and stdin, returning everything it printed.
func runExample(t *testing.T, file string, args []string, stdin string) string {
	t.Helper()
	source, err := os.ReadFile(filepath.Join("..", "examples", file))
	require.NoError(t, err)

	prog, diags := parser.ParseSource(string(source))
	require.Empty(t, diags, "parse errors in %s", file)

	host := std.NewHost(append([]string{"pitlang", file}, args...))
	var buf bytes.Buffer
	host.SetWriter(&buf)
	host.SetReader(strings.NewReader(stdin))

	ev := NewEvaluator(host)
	result := ev.Eval(prog)
	if runtimeErr, ok := result.(*object.RuntimeError); ok {
		t.Fatalf("%s failed: %s", file, runtimeErr.Diagnostic(file))
	}
	return buf.String()
}

func TestExample_Primes(t *testing.T) {
	out := runExample(t, "primes.pit", []string{"30"}, "")
	assert.Equal(t, "29\n", out)
}

func TestExample_Serpinsky(t *testing.T) {
	out := runExample(t, "serpinsky.pit", []string{"2"}, "")
	expected := "   * \n" +
		"  * * \n" +
		" *   * \n" +
		"* * * * \n" +
		"\n"
	assert.Equal(t, expected, out)
}

func TestExample_Person(t *testing.T) {
	out := runExample(t, "person.pit", nil, "")
	expected := "Hello, my name is John\n" +
		"Happy Birthday! I am now 31 years old.\n" +
		"Happy Birthday! I am now 32 years old.\n"
	assert.Equal(t, expected, out)
}

func TestExample_Fib(t *testing.T) {
	out := runExample(t, "fib.pit", nil, "")
	assert.Equal(t, "55\n", out)
}

func TestExample_Add(t *testing.T) {
	out := runExample(t, "add.pit", nil, "")
	assert.Equal(t, "30", out)
}

func TestExample_Calculator(t *testing.T) {
	out := runExample(t, "calculator.pit", nil, "(1+2)*3^2%7\n")
	assert.Equal(t, "6\n", out)

	out = runExample(t, "calculator.pit", nil, "2^3^2\n")
	// ^ is left-associative: (2^3)^2.
	assert.Equal(t, "64\n", out)

	out = runExample(t, "calculator.pit", nil, "10 + 2 * 3\n1 - (4 - 2)\n")
	assert.Equal(t, "16\n-1\n", out)
}

func TestExample_Mandelbrot(t *testing.T) {
	out := runExample(t, "mandelbrot.pit", nil, "")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 24)
	assert.Contains(t, out, "@")
}
