package parser_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/jot/internal/syntax/ast"
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

func TestParse(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Source text to parse
		want string // Expected canonical rendering of the parsed program
	}{
		{
			name: "empty",
			src:  "",
			want: "",
		},
		{
			name: "let",
			src:  "let x = 1;",
			want: "let x = 1;\n",
		},
		{
			name: "let no semicolon",
			src:  "let x = 1",
			want: "let x = 1;\n",
		},
		{
			name: "let no initialiser",
			src:  "let x;",
			want: "let x;\n",
		},
		{
			name: "let no initialiser no semicolon",
			src:  "let x",
			want: "let x;\n",
		},
		{
			name: "uninitialised let then use",
			src:  "let x; print x;",
			want: "let x;\nprint x;\n",
		},
		{
			name: "string literal",
			src:  `let greeting = "hello";`,
			want: "let greeting = \"hello\";\n",
		},
		{
			name: "print",
			src:  "print 42;",
			want: "print 42;\n",
		},
		{
			name: "precedence",
			src:  "print 1 + 2 * 3 == 7;",
			want: "print 1 + 2 * 3 == 7;\n",
		},
		{
			name: "grouping",
			src:  "print (1 + 2) * 3;",
			want: "print (1 + 2) * 3;\n",
		},
		{
			name: "logical operators",
			src:  "print true and false or true;",
			want: "print true and false or true;\n",
		},
		{
			name: "symbolic logical operators normalise",
			src:  "print true && false || true;",
			want: "print true and false or true;\n",
		},
		{
			name: "unary",
			src:  "print -x + !ok;",
			want: "print -x + !ok;\n",
		},
		{
			name: "assignment",
			src:  "x = 1;",
			want: "x = 1;\n",
		},
		{
			name: "chained assignment",
			src:  "a = b = 2;",
			want: "a = b = 2;\n",
		},
		{
			name: "call",
			src:  "add(1, 2 * 3);",
			want: "add(1, 2 * 3);\n",
		},
		{
			name: "call chain",
			src:  "counter()();",
			want: "counter()();\n",
		},
		{
			name: "if",
			src:  "if (x > 1) print x;",
			want: "if (x > 1) print x;\n",
		},
		{
			name: "if else",
			src:  `if (x > 1) { print "big"; } else { print "small"; }`,
			want: "if (x > 1) {\n    print \"big\";\n} else {\n    print \"small\";\n}\n",
		},
		{
			name: "while",
			src:  "while (x < 10) x = x + 1;",
			want: "while (x < 10) x = x + 1;\n",
		},
		{
			name: "for desugars to while",
			src:  "for (let i = 0; i < 3; i = i + 1) print i;",
			want: "{\n    let i = 0;\n    while (i < 3) {\n        print i;\n        i = i + 1;\n    }\n}\n",
		},
		{
			name: "for no clauses",
			src:  "for (;;) print 1;",
			want: "while (true) print 1;\n",
		},
		{
			name: "function statement",
			src:  "function add(a, b) { return a + b; }",
			want: "function add(a, b) {\n    return a + b;\n}\n",
		},
		{
			name: "function literal",
			src:  "let id = function(x) { return x; };",
			want: "let id = function(x) {\n    return x;\n};\n",
		},
		{
			name: "bare return",
			src:  "function noop() { return; }",
			want: "function noop() {\n    return;\n}\n",
		},
		{
			name: "null literal",
			src:  "let nothing = null;",
			want: "let nothing = null;\n",
		},
		{
			name: "leading dot number",
			src:  "print .5;",
			want: "print .5;\n",
		},
		{
			name: "stray semicolons",
			src:  ";;let x = 1;;",
			want: "let x = 1;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			p := parser.New(tt.name, []byte(tt.src))

			program, err := p.Parse()
			test.Ok(t, err, test.Context("diagnostics: %v", p.Diagnostics()))

			test.Diff(t, program.String(), tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Source text that should fail to parse
	}{
		{
			name: "let missing ident",
			src:  "let = 1;",
		},
		{
			name: "let missing value",
			src:  "let x =;",
		},
		{
			name: "if missing paren",
			src:  "if x > 1 print x;",
		},
		{
			name: "unclosed block",
			src:  "function f() { print 1;",
		},
		{
			name: "unclosed call",
			src:  "add(1, 2;",
		},
		{
			name: "bare let in if",
			src:  "if (true) let x = 1;",
		},
		{
			name: "bare let in else",
			src:  "if (true) {} else let x = 1;",
		},
		{
			name: "do is reserved",
			src:  "do { print 1; }",
		},
		{
			name: "invalid assignment target",
			src:  "1 = 2;",
		},
		{
			name: "call on nothing",
			src:  "();",
		},
		{
			name: "for missing semicolon",
			src:  "for (let i = 0 i < 10; i = i + 1) print i;",
		},
		{
			name: "scanner error surfaces",
			src:  "let x = 1 ?;",
		},
		{
			name: "unterminated string",
			src:  `print "oops`,
		},
		{
			name: "unexpected eof",
			src:  "let x = ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			p := parser.New(tt.name, []byte(tt.src))

			program, err := p.Parse()
			test.Err(t, err, test.Context("%q should not parse", tt.src))
			test.True(t, errors.Is(err, parser.ErrParse), test.Context("error was not ErrParse: %v", err))

			// No partial tree on error
			test.Equal(t, len(program.Statements), 0, test.Context("partial AST returned"))

			// And there must be something useful to show the user
			test.True(t, len(p.Diagnostics()) > 0, test.Context("no diagnostics gathered"))
		})
	}
}

func TestValid(t *testing.T) {
	// Force colour for diffs but only locally
	test.ColorEnabled(os.Getenv("CI") == "")

	pattern := filepath.Join("testdata", "valid", "*.txtar")
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

			want, ok := archive.Read("ast.txt")
			test.True(t, ok, test.Context("%s missing ast.txt", file))

			p := parser.New(name, []byte(src))

			program, err := p.Parse()
			test.Ok(t, err, test.Context("diagnostics: %v", p.Diagnostics()))

			got := program.String()

			if *update {
				err := archive.Write("ast.txt", got)
				test.Ok(t, err)

				err = txtar.DumpFile(file, archive)
				test.Ok(t, err)

				return
			}

			test.Diff(t, got, want)
		})
	}
}

// TestRoundTrip checks that rendering a parsed program back to source
// and parsing it again gives the same tree, using the rendering as the
// comparable form.
func TestRoundTrip(t *testing.T) {
	pattern := filepath.Join("testdata", "valid", "*.txtar")
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

			first, err := parser.New(name, []byte(src)).Parse()
			test.Ok(t, err)

			second, err := parser.New(name, []byte(first.String())).Parse()
			test.Ok(t, err)

			test.Diff(t, second.String(), first.String())
		})
	}
}

func FuzzParser(f *testing.F) {
	pattern := filepath.Join("testdata", "valid", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(f, err)

	for _, file := range files {
		archive, err := txtar.ParseFile(file)
		test.Ok(f, err)

		src, ok := archive.Read("src.jot")
		test.True(f, ok, test.Context("%s missing src.jot", file))

		f.Add(src)
	}

	// Property: the parser never panics or leaks, and anything it
	// accepts renders to source it will accept again
	f.Fuzz(func(t *testing.T, src string) {
		program, err := parser.New("fuzz", []byte(src)).Parse()
		if err != nil {
			return
		}

		rendered := program.String()

		again, err := parser.New("fuzz", []byte(rendered)).Parse()
		if err != nil {
			t.Fatalf("accepted program failed to re-parse:\n%s", rendered)
		}

		if got := again.String(); got != rendered {
			t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", got, rendered)
		}
	})
}

func BenchmarkParse(b *testing.B) {
	file := filepath.Join("testdata", "valid", "counter.txtar")
	archive, err := txtar.ParseFile(file)
	test.Ok(b, err)

	src, ok := archive.Read("src.jot")
	test.True(b, ok, test.Context("%s missing src.jot", file))

	for b.Loop() {
		program, err := parser.New("bench", []byte(src)).Parse()
		if err != nil {
			b.Fatal(err)
		}

		if program.Kind() != ast.KindProgram {
			b.Fatal("not a program")
		}
	}
}
