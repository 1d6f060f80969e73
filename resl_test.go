package resl_test

import (
	"errors"
	"testing"

	resl "github.com/decipher3114/go-resl"
	"github.com/decipher3114/go-resl/evaluator"
	"github.com/decipher3114/go-resl/parser"
	"github.com/decipher3114/go-resl/value"
)

func TestFormat(t *testing.T) {
	got, err := resl.Format("{ a:1, b : [ 2,3 , ] }", false)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := `{"a":1,"b":[2,3]}`; got != want {
		t.Errorf("Format = %q; want %q", got, want)
	}
}

func TestFormatDoesNotEvaluate(t *testing.T) {
	// Division by zero is an evaluation error; formatting leaves it alone.
	got, err := resl.Format("1 / 0", false)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "1 / 0"; got != want {
		t.Errorf("Format = %q; want %q", got, want)
	}
}

func TestEvaluate(t *testing.T) {
	val, err := resl.Evaluate(`{total: 2 + 3 * 4, tags: ["a" + "b"]}`)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	defer val.Release()

	total, ok := val.Get("total")
	if !ok || total.Int != 14 {
		t.Errorf("total = %v; want 14", total)
	}
	tags, _ := val.Get("tags")
	if tags.Tag != value.TagList || tags.Items[0].Str != "ab" {
		t.Errorf("tags = %v; want [\"ab\"]", tags)
	}
}

func TestEvaluateAndFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pretty bool
		want   string
	}{
		{"arithmetic folds", "2 + 3 * 4", false, "14"},
		{"integer division truncates", "10 / 4", false, "2"},
		{"promotion to float", "10.0 / 4", false, "2.5"},
		{"comparison folds", "1 < 2", false, "true"},
		{"duplicate keys merge", "{a: 1, b: 2, a: 3}", false, `{"a":3,"b":2}`},
		{"map order preserved", "{z: 1, a: 2, m: 3}", false, `{"z":1,"a":2,"m":3}`},
		{"nested expressions fold", "[1 + 1, {k: 2 * 2}]", false, `[2,{"k":4}]`},
		{"float division renders inf", "1.0 / 0.0", false, "inf"},
		{"pretty list", "[1, 2]", true, "[\n    1,\n    2\n]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resl.EvaluateAndFormat(tt.source, tt.pretty)
			if err != nil {
				t.Fatalf("EvaluateAndFormat(%q): %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("EvaluateAndFormat(%q) = %q; want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestTypedErrors(t *testing.T) {
	var pe *parser.Error
	if _, err := resl.Format("[1,", false); !errors.As(err, &pe) {
		t.Errorf("Format error type = %T; want *parser.Error", err)
	}

	var ee *evaluator.Error
	if _, err := resl.EvaluateAndFormat("1 + null", false); !errors.As(err, &ee) {
		t.Errorf("EvaluateAndFormat error type = %T; want *evaluator.Error", err)
	}

	// Parse errors surface before evaluation errors.
	if _, err := resl.EvaluateAndFormat("1 + null]", false); !errors.As(err, &pe) {
		t.Errorf("error type = %T; want *parser.Error", err)
	}
}

func TestFailedOperationsReturnNoResult(t *testing.T) {
	if out, err := resl.Format("@", false); err == nil || out != "" {
		t.Errorf("Format = %q, %v; want empty result and error", out, err)
	}
	if val, err := resl.Evaluate("1 / 0"); err == nil || val != nil {
		t.Errorf("Evaluate = %v, %v; want nil result and error", val, err)
	}
}

func TestDeterminism(t *testing.T) {
	source := `{config: {retries: 3 * 2, hosts: ["a", "b"]}, ok: 1 < 2 && true}`
	first, err := resl.EvaluateAndFormat(source, true)
	if err != nil {
		t.Fatalf("EvaluateAndFormat: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := resl.EvaluateAndFormat(source, true)
		if err != nil {
			t.Fatalf("EvaluateAndFormat: %v", err)
		}
		if again != first {
			t.Fatalf("iteration %d differs:\n%s\nvs\n%s", i, first, again)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	source := `{n: 6 * 7, s: "a" + "b"}`
	want := `{"n":42,"s":"ab"}`

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, err := resl.EvaluateAndFormat(source, false)
				if err != nil {
					done <- err
					return
				}
				if got != want {
					done <- errors.New("unexpected output: " + got)
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestValueOwnership(t *testing.T) {
	// Two evaluations of the same source own disjoint trees; releasing one
	// leaves the other intact.
	a, err := resl.Evaluate(`{k: [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := resl.Evaluate(`{k: [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}

	a.Release()

	list, ok := b.Get("k")
	if !ok || len(list.Items) != 2 || list.Items[1].Int != 2 {
		t.Errorf("second tree corrupted after releasing the first: %v", b)
	}
	b.Release()
}
