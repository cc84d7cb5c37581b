package syntax_test

import (
	"testing"

	"go.followtheprocess.codes/jot/internal/syntax"
	"go.followtheprocess.codes/test"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string          // Name of the test case
		want string          // Expected return value
		pos  syntax.Position // Position under test
	}{
		{
			name: "empty",
			pos:  syntax.Position{},
			want: `BadPosition: {Name: "", Line: 0, StartCol: 0, EndCol: 0}`,
		},
		{
			name: "missing name",
			pos:  syntax.Position{Line: 12, StartCol: 2, EndCol: 6},
			want: `BadPosition: {Name: "", Line: 12, StartCol: 2, EndCol: 6}`,
		},
		{
			name: "zero line",
			pos:  syntax.Position{Name: "file.jot", Line: 0, StartCol: 12, EndCol: 19},
			want: `BadPosition: {Name: "file.jot", Line: 0, StartCol: 12, EndCol: 19}`,
		},
		{
			name: "zero start column",
			pos:  syntax.Position{Name: "file.jot", Line: 4, StartCol: 0, EndCol: 19},
			want: `BadPosition: {Name: "file.jot", Line: 4, StartCol: 0, EndCol: 19}`,
		},
		{
			name: "zero end column",
			pos:  syntax.Position{Name: "file.jot", Line: 4, StartCol: 1, EndCol: 0},
			want: `BadPosition: {Name: "file.jot", Line: 4, StartCol: 1, EndCol: 0}`,
		},
		{
			name: "end less than start",
			pos:  syntax.Position{Name: "test.jot", Line: 1, StartCol: 6, EndCol: 4},
			want: `BadPosition: {Name: "test.jot", Line: 1, StartCol: 6, EndCol: 4}`,
		},
		{
			name: "valid single column",
			pos:  syntax.Position{Name: "demo.jot", Line: 1, StartCol: 6, EndCol: 6},
			want: "demo.jot:1:6",
		},
		{
			name: "valid column range",
			pos:  syntax.Position{Name: "demo.jot", Line: 17, StartCol: 20, EndCol: 26},
			want: "demo.jot:17:20-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.pos.String(), tt.want)
		})
	}
}

func TestComparePosition(t *testing.T) {
	tests := []struct {
		name string          // Name of the test case
		x    syntax.Position // First position
		y    syntax.Position // Second position
		want int             // Expected comparison result
	}{
		{
			name: "equal",
			x:    syntax.Position{Name: "a.jot", Offset: 4, Line: 1, StartCol: 5, EndCol: 5},
			y:    syntax.Position{Name: "a.jot", Offset: 4, Line: 1, StartCol: 5, EndCol: 5},
			want: 0,
		},
		{
			name: "same file earlier offset",
			x:    syntax.Position{Name: "a.jot", Offset: 2},
			y:    syntax.Position{Name: "a.jot", Offset: 10},
			want: -1,
		},
		{
			name: "same file later offset",
			x:    syntax.Position{Name: "a.jot", Offset: 10},
			y:    syntax.Position{Name: "a.jot", Offset: 2},
			want: 1,
		},
		{
			name: "different files",
			x:    syntax.Position{Name: "a.jot", Offset: 100},
			y:    syntax.Position{Name: "b.jot", Offset: 2},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, syntax.ComparePosition(tt.x, tt.y), tt.want)
		})
	}
}

func TestDiagnosticString(t *testing.T) {
	diagnostic := syntax.Diagnostic{
		Msg: "unexpected character: '?'",
		Position: syntax.Position{
			Name:     "demo.jot",
			Offset:   9,
			Line:     1,
			StartCol: 10,
			EndCol:   10,
		},
	}

	test.Equal(t, diagnostic.String(), "demo.jot:1:10: unexpected character: '?'\n")
}
