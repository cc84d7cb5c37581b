package interp_test

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/jot/internal/interp"
	"go.followtheprocess.codes/jot/internal/syntax/parser"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
	"go.uber.org/goleak"
)

var (
	update = flag.Bool("update", false, "Update snapshots and testdata")

	// Not used here but keeps go test ./... -clean happy.
	_ = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Source text to execute
		want string // Expected stdout
	}{
		{
			name: "arithmetic precedence",
			src:  "print 1 + 2 * 3;",
			want: "7\n",
		},
		{
			name: "division",
			src:  "print 10 / 4;",
			want: "2.5\n",
		},
		{
			name: "floats are floats",
			src:  "print 0.1 + 0.2;",
			want: "0.30000000000000004\n",
		},
		{
			name: "unary minus",
			src:  "print -5 + 2;",
			want: "-3\n",
		},
		{
			name: "string concat",
			src:  `print "foo" + "bar";`,
			want: "foobar\n",
		},
		{
			name: "zero is falsy",
			src:  "print !0;",
			want: "true\n",
		},
		{
			name: "empty string is truthy",
			src:  `print !"";`,
			want: "false\n",
		},
		{
			name: "no cross kind equality",
			src:  `print 1 == "1";`,
			want: "false\n",
		},
		{
			name: "null equals null",
			src:  "print null == null;",
			want: "true\n",
		},
		{
			name: "string comparison",
			src:  `print "apple" < "banana";`,
			want: "true\n",
		},
		{
			name: "logical and",
			src:  "print true and false;",
			want: "false\n",
		},
		{
			name: "logical or coerces",
			src:  "print 0 or 2;",
			want: "true\n",
		},
		{
			name: "print null",
			src:  "print null;",
			want: "null\n",
		},
		{
			name: "uninitialised let is null",
			src:  "let x;\nprint x;",
			want: "null\n",
		},
		{
			name: "uninitialised let can be assigned",
			src:  "let x;\nx = 3;\nprint x;",
			want: "3\n",
		},
		{
			name: "symbolic and",
			src:  "print true && false;",
			want: "false\n",
		},
		{
			name: "symbolic or coerces",
			src:  "print 0 || 2;",
			want: "true\n",
		},
		{
			name: "shadowing",
			src:  "let x = 1;\n{\n    let x = 2;\n    print x;\n}\nprint x;",
			want: "2\n1\n",
		},
		{
			name: "assignment walks out",
			src:  "let x = 1;\n{\n    x = 2;\n}\nprint x;",
			want: "2\n",
		},
		{
			name: "assignment is an expression",
			src:  "let x = 0;\nprint x = 5;",
			want: "5\n",
		},
		{
			name: "if else",
			src:  `if (1 > 2) { print "wat"; } else { print "phew"; }`,
			want: "phew\n",
		},
		{
			name: "while",
			src:  "let i = 0;\nwhile (i < 3) {\n    print i;\n    i = i + 1;\n}",
			want: "0\n1\n2\n",
		},
		{
			name: "for loop",
			src:  "for (let i = 0; i < 3; i = i + 1) print i;",
			want: "0\n1\n2\n",
		},
		{
			name: "function return",
			src:  "function add(a, b) {\n    return a + b;\n}\nprint add(1, 2);",
			want: "3\n",
		},
		{
			name: "return propagates through nesting",
			src:  "function f() {\n    while (true) {\n        if (true) {\n            return 5;\n        }\n    }\n    return 10;\n}\nprint f();",
			want: "5\n",
		},
		{
			name: "falling off the end returns null",
			src:  "function noop() {}\nprint noop();",
			want: "null\n",
		},
		{
			name: "top level return is ignored",
			src:  "return 1;\nprint 2;",
			want: "2\n",
		},
		{
			name: "function statement has a name",
			src:  "function greet() {}\nprint greet;",
			want: "<function greet>\n",
		},
		{
			name: "anonymous function adopts its binding",
			src:  "let add = function(a, b) {\n    return a + b;\n};\nprint add;",
			want: "<function add>\n",
		},
		{
			name: "native function string",
			src:  "print clock;",
			want: "<native function clock>\n",
		},
		{
			name: "clock",
			src:  "print clock();",
			want: "1000\n",
		},
		{
			name: "random",
			src:  "print random();",
			want: "0.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			got, err := run(t, tt.src)
			test.Ok(t, err)

			test.Diff(t, got, tt.want)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		want error  // Sentinel the error must wrap
		name string // Name of the test case
		src  string // Source text that should fail at runtime
	}{
		{
			name: "undefined variable",
			src:  "print missing;",
			want: interp.ErrUndefinedVariable,
		},
		{
			name: "assignment needs a binding",
			src:  "missing = 1;",
			want: interp.ErrUndefinedVariable,
		},
		{
			name: "loop variable does not escape",
			src:  "for (let i = 0; i < 1; i = i + 1) {}\nprint i;",
			want: interp.ErrUndefinedVariable,
		},
		{
			name: "error propagates out of functions",
			src:  "function f() {\n    return missing;\n}\nf();",
			want: interp.ErrUndefinedVariable,
		},
		{
			name: "and evaluates both sides",
			src:  "print false and missing;",
			want: interp.ErrUndefinedVariable,
		},
		{
			name: "negating a string",
			src:  `print -"a";`,
			want: interp.ErrTypeMismatch,
		},
		{
			name: "adding a number to a string",
			src:  `print 1 + "a";`,
			want: interp.ErrTypeMismatch,
		},
		{
			name: "comparing across kinds",
			src:  `print 1 < "a";`,
			want: interp.ErrTypeMismatch,
		},
		{
			name: "calling a number",
			src:  "let x = 5;\nx();",
			want: interp.ErrTypeMismatch,
		},
		{
			name: "too few arguments",
			src:  "function add(a, b) {\n    return a + b;\n}\nadd(1);",
			want: interp.ErrArityMismatch,
		},
		{
			name: "too many arguments to a native function",
			src:  "clock(1);",
			want: interp.ErrArityMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			_, err := run(t, tt.src)
			test.Err(t, err, test.Context("%q should fail at runtime", tt.src))
			test.True(t, errors.Is(err, tt.want), test.Context("error was %v, wanted %v", err, tt.want))
		})
	}
}

// TestPrograms executes whole programs from txtar archives and compares
// the output against a golden stdout.
func TestPrograms(t *testing.T) {
	// Force colour for diffs but only locally
	test.ColorEnabled(os.Getenv("CI") == "")

	pattern := filepath.Join("testdata", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			src, ok := archive.Read("src.jot")
			test.True(t, ok, test.Context("%s missing src.jot", file))

			want, ok := archive.Read("stdout.txt")
			test.True(t, ok, test.Context("%s missing stdout.txt", file))

			got, err := run(t, src)
			test.Ok(t, err)

			if *update {
				err := archive.Write("stdout.txt", got)
				test.Ok(t, err)

				err = txtar.DumpFile(file, archive)
				test.Ok(t, err)

				return
			}

			test.Diff(t, got, want)
		})
	}
}

func BenchmarkInterp(b *testing.B) {
	file := filepath.Join("testdata", "fib.txtar")
	archive, err := txtar.ParseFile(file)
	test.Ok(b, err)

	src, ok := archive.Read("src.jot")
	test.True(b, ok, test.Context("%s missing src.jot", file))

	program, err := parser.New("bench", []byte(src)).Parse()
	test.Ok(b, err)

	for b.Loop() {
		interpreter := interp.New(&bytes.Buffer{})
		env := interp.NewGlobalEnvironment(testGlobals())

		if err := interpreter.Run(program, env); err != nil {
			b.Fatal(err)
		}
	}
}

// run parses and executes src against a fresh global environment with
// deterministic builtins, returning whatever was printed.
func run(t testing.TB, src string) (stdout string, err error) {
	t.Helper()

	program, err := parser.New(t.Name(), []byte(src)).Parse()
	test.Ok(t, err)

	buf := &bytes.Buffer{}
	interpreter := interp.New(buf)
	env := interp.NewGlobalEnvironment(testGlobals())

	err = interpreter.Run(program, env)

	return buf.String(), err
}

// testGlobals returns deterministic stand-ins for the native functions
// so golden output is stable.
func testGlobals() []interp.Builtin {
	return []interp.Builtin{
		{
			Name:  "clock",
			Arity: 0,
			Fn: func(_ *interp.Interpreter, _ []interp.Value) (interp.Value, error) {
				return interp.Number(1000), nil
			},
		},
		{
			Name:  "random",
			Arity: 0,
			Fn: func(_ *interp.Interpreter, _ []interp.Value) (interp.Value, error) {
				return interp.Number(0.5), nil
			},
		},
	}
}
