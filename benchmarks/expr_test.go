package benchmarks

import (
	"strings"
	"testing"

	"github.com/randalmurphal/equation/pkg/equation/expr"
)

// longSum returns "a + b + ..." over n operands cycling through the alphabet.
func longSum(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteByte(byte('a' + i%26))
	}
	return sb.String()
}

func alphabet() expr.Bindings {
	b := make(expr.Bindings, 26)
	for i := 0; i < 26; i++ {
		b[string(rune('a'+i))] = float64(i + 1)
	}
	return b
}

// BenchmarkParse_Short parses a small mixed-precedence expression.
func BenchmarkParse_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse("a / b + (a / b) * c")
	}
}

// BenchmarkParse_Nested parses deeply nested parentheses.
func BenchmarkParse_Nested(b *testing.B) {
	text := strings.Repeat("(", 50) + "a" + strings.Repeat("+b)", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse(text)
	}
}

// BenchmarkParse_Long_100 parses a 100-operand sum.
func BenchmarkParse_Long_100(b *testing.B) {
	text := longSum(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.Parse(text)
	}
}

// BenchmarkEvaluate_Short evaluates a pre-parsed small expression.
func BenchmarkEvaluate_Short(b *testing.B) {
	e := expr.MustParse("x^y+z+c")
	vars := expr.Bindings{"x": 10, "y": 2, "z": 3, "c": 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Evaluate(vars)
	}
}

// BenchmarkEvaluate_Long_100 evaluates a pre-parsed 100-operand sum.
func BenchmarkEvaluate_Long_100(b *testing.B) {
	e := expr.MustParse(longSum(100))
	vars := alphabet()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Evaluate(vars)
	}
}
