package generator_test

import (
	"math"
	"testing"

	"github.com/decipher3114/go-resl/ast"
	"github.com/decipher3114/go-resl/generator"
	"github.com/decipher3114/go-resl/parser"
	"github.com/decipher3114/go-resl/value"
)

// format parses src and renders it back in the requested mode.
func format(t *testing.T, src string, pretty bool) string {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", src, err)
	}
	return generator.Generate(expr, pretty)
}

func assertCompact(t *testing.T, src, want string) {
	t.Helper()
	if got := format(t, src, false); got != want {
		t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", src, got, want)
	}
}

// ---------------------------------------------------------------------------
// Compact mode
// ---------------------------------------------------------------------------

func TestCompactScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"null", "null", "null"},
		{"true", "true", "true"},
		{"integer", "42", "42"},
		{"negative integer", "-7", "-7"},
		{"float keeps a point", "3.0", "3.0"},
		{"float shortest form", "2.50", "2.5"},
		{"float exponent", "1e100", "1e+100"},
		{"small float", "0.0001", "0.0001"},
		{"string", `"hi"`, `"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCompact(t, tt.input, tt.want)
		})
	}
}

func TestCompactAggregates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty list", "[ ]", "[]"},
		{"empty map", "{ }", "{}"},
		{"list", "[1, 2, 3,]", "[1,2,3]"},
		{"nested list", "[[1], []]", "[[1],[]]"},
		{"map", `{ a: 1, "b c": 2 }`, `{"a":1,"b c":2}`},
		{"nested map", "{a: {b: [1]}}", `{"a":{"b":[1]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCompact(t, tt.input, tt.want)
		})
	}
}

func TestStringReescaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"solidus unescaped", `"\/"`, `"/"`},
		{"unicode escape resolved", `"\u0041"`, `"A"`},
		{"newline re-escaped", `"\n"`, `"\n"`},
		{"control char as unicode escape", `"\u0001"`, `"\u0001"`},
		{"nul byte", `"\u0000"`, `"\u0000"`},
		{"quote and backslash", `"\"\\"`, `"\"\\"`},
		{"utf8 passthrough", "\"h\u00e9llo\"", "\"h\u00e9llo\""},
		{"surrogate pair to rune", `"\ud83d\ude00"`, "\"\U0001f600\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCompact(t, tt.input, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Operators and parenthesization
// ---------------------------------------------------------------------------

func TestMinimalParentheses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"redundant parens dropped", "((1)) + (2)", "1 + 2"},
		{"precedence needs no parens", "1 + 2 * 3", "1 + 2 * 3"},
		{"grouping kept when it binds looser", "(1 + 2) * 3", "(1 + 2) * 3"},
		{"left assoc needs no parens", "1 - 2 - 3", "1 - 2 - 3"},
		{"right grouping at equal precedence kept", "1 - (2 - 3)", "1 - (2 - 3)"},
		{"right grouping division kept", "8 / (4 / 2)", "8 / (4 / 2)"},
		{"mixed logical", "(true || false) && true", "(true || false) && true"},
		{"comparison under equality", "1 < 2 == true", "1 < 2 == true"},
		{"equality grouped under comparison", "true == (1 < 2)", "true == 1 < 2"},
		{"unary literal", "-5", "-5"},
		{"unary grouped operand", "-(1 + 2)", "-(1 + 2)"},
		{"unary in binary", "-2 + 3", "-2 + 3"},
		{"not with comparison", "!(1 == 2)", "!(1 == 2)"},
		{"nested unary", "-(-5)", "-(-5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCompact(t, tt.input, tt.want)
		})
	}
}

// Grouping on the left at equal precedence matches the default
// associativity, so the parens drop.
func TestEqualPrecedenceLeftChain(t *testing.T) {
	assertCompact(t, "(1 - 2) - 3", "1 - 2 - 3")
	assertCompact(t, "(8 / 4) / 2", "8 / 4 / 2")
}

// ---------------------------------------------------------------------------
// Pretty mode
// ---------------------------------------------------------------------------

func TestPrettyLayout(t *testing.T) {
	got := format(t, `{server: {host: "localhost", ports: [80, 443]}, debug: false}`, true)
	want := `{
    "server": {
        "host": "localhost",
        "ports": [
            80,
            443
        ]
    },
    "debug": false
}
`
	if got != want {
		t.Errorf("pretty output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyScalarsStayOnOneLine(t *testing.T) {
	if got := format(t, "1 + 2", true); got != "1 + 2\n" {
		t.Errorf("got %q; want %q", got, "1 + 2\n")
	}
	if got := format(t, "[]", true); got != "[]\n" {
		t.Errorf("got %q; want %q", got, "[]\n")
	}
}

func TestPrettyExpressionsInsideAggregates(t *testing.T) {
	got := format(t, "[1 + 2 * 3]", true)
	want := "[\n    1 + 2 * 3\n]\n"
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Round trips
// ---------------------------------------------------------------------------

func TestFormatRoundTripPreservesStructure(t *testing.T) {
	sources := []string{
		"null",
		"-7",
		"3.0",
		`"a\nb"`,
		"[1, [2, [3]]]",
		`{a: 1, "b": [true, null]}`,
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"1 - (2 - 3)",
		"-(1 + 2)",
		"!(true && false)",
		`{cond: 1 < 2 == true}`,
	}
	for _, src := range sources {
		for _, pretty := range []bool{false, true} {
			original, err := parser.Parse(src)
			if err != nil {
				t.Fatalf("Failed to parse %q: %v", src, err)
			}
			rendered := generator.Generate(original, pretty)
			reparsed, err := parser.Parse(rendered)
			if err != nil {
				t.Fatalf("Rendering of %q does not re-parse: %q: %v", src, rendered, err)
			}
			if !ast.Equal(original, reparsed) {
				t.Errorf("round trip of %q changed structure: %q", src, rendered)
			}
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	sources := []string{"[ 1 ,2, 3 , ]", "{ a:1,b : 2 }", "((1+2))*3", `"A\/"`}
	for _, src := range sources {
		for _, pretty := range []bool{false, true} {
			once := format(t, src, pretty)
			twice := format(t, once, pretty)
			if once != twice {
				t.Errorf("formatting %q not idempotent:\n first: %q\nsecond: %q", src, once, twice)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Value rendering
// ---------------------------------------------------------------------------

func TestGenerateValue(t *testing.T) {
	m := value.Map(3)
	m.Set("name", value.Str("resl"))
	m.Set("sizes", value.List([]*value.Value{value.Int(1), value.Float(2.5)}))
	m.Set("flag", value.Bool(true))
	defer m.Release()

	got := generator.GenerateValue(m, false)
	want := `{"name":"resl","sizes":[1,2.5],"flag":true}`
	if got != want {
		t.Errorf("compact value:\n  got:  %s\n  want: %s", got, want)
	}

	pretty := generator.GenerateValue(m, true)
	wantPretty := `{
    "name": "resl",
    "sizes": [
        1,
        2.5
    ],
    "flag": true
}
`
	if pretty != wantPretty {
		t.Errorf("pretty value:\n%s\nwant:\n%s", pretty, wantPretty)
	}
}

func TestGenerateValueNonFinite(t *testing.T) {
	list := value.List([]*value.Value{
		value.Float(math.Inf(1)),
		value.Float(math.Inf(-1)),
		value.Float(math.NaN()),
	})
	defer list.Release()

	if got := generator.GenerateValue(list, false); got != "[inf,-inf,nan]" {
		t.Errorf("got %s; want [inf,-inf,nan]", got)
	}
}

func TestGenerateValueEmptyAggregates(t *testing.T) {
	list := value.List(nil)
	defer list.Release()
	if got := generator.GenerateValue(list, true); got != "[]\n" {
		t.Errorf("got %q; want %q", got, "[]\n")
	}

	m := value.Map(0)
	defer m.Release()
	if got := generator.GenerateValue(m, false); got != "{}" {
		t.Errorf("got %q; want %q", got, "{}")
	}
}
