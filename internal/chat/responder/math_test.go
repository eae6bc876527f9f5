package responder

import (
	"context"
	"testing"
)

func TestMathRespond(t *testing.T) {
	m := NewMath()
	tests := []struct {
		name    string
		message string
		want    string // "" means the responder passes
	}{
		{
			name:    "percent of",
			message: "What is 15% of 80",
			want:    "15% of 80 = 0.15 × 80 = 12. So the answer is 12.",
		},
		{
			name:    "percent spelled out",
			message: "what is 20 percent of 80",
			want:    "20% of 80 = 0.2 × 80 = 16. So the answer is 16.",
		},
		{
			name:    "inverse percentage",
			message: "80 is 20% of what",
			want:    "If 80 is 20% of a number, then that number = 80 ÷ (20/100) = 80 ÷ 0.2 = 400.",
		},
		{
			name:    "percent share",
			message: "what percent of 80 is 20",
			want:    "20 ÷ 80 × 100 = 25%. So the answer is 25%.",
		},
		{
			name:    "monic quadratic",
			message: "solve x^2 + 5x + 6 = 0",
			want:    "Using the quadratic formula: x = (-b ± √(b²-4ac)) / (2a). Here a=1, b=5, c=6. Discriminant = 1. So x = -2 or x = -3.",
		},
		{
			name:    "general quadratic",
			message: "solve 2x^2 - 4x - 6 = 0",
			want:    "Using the quadratic formula: x = (-b ± √(b²-4ac)) / (2a). Here a=2, b=-4, c=-6. Discriminant = 64. So x = 3 or x = -1.",
		},
		{
			name:    "negative discriminant",
			message: "solve x^2 + 2x + 5 = 0",
			want:    "The discriminant is negative, so there are no real solutions (only complex ones).",
		},
		{
			name:    "two step equation",
			message: "2x + 5 = 15",
			want:    "First subtract 5: 2x = 10. Then divide by 2: x = 10/2 = 5. So x = 5.",
		},
		{
			name:    "addition equation",
			message: "x + 5 = 15",
			want:    "Subtract 5 from both sides: x = 15 - 5 = 10. So x = 10.",
		},
		{
			name:    "scale equation",
			message: "3x = 12",
			want:    "Divide both sides by 3: x = 12/3 = 4. So x = 4.",
		},
		{
			name:    "circle area",
			message: "area of a circle with radius 5",
			want:    "Area of a circle = πr² = π × 5² = 78.5398 (using π ≈ 3.14159).",
		},
		{
			name:    "circle circumference",
			message: "circumference of a circle with radius 5",
			want:    "Circumference = 2πr = 2 × π × 5 = 31.4159.",
		},
		{
			name:    "sphere volume",
			message: "volume of a sphere with radius 3",
			want:    "Volume of a sphere = (4/3)πr³ = (4/3) × π × 3³ = 113.0973.",
		},
		{
			name:    "whole square root",
			message: "what is the square root of 16",
			want:    "The square root of 16 is 4.",
		},
		{
			name:    "irrational square root",
			message: "square root of 2",
			want:    "The square root of 2 is about 1.4142.",
		},
		{
			name:    "negative square root",
			message: "square root of -9",
			want:    "Negative numbers don't have real square roots.",
		},
		{
			name:    "arithmetic with prefix",
			message: "what is 12 * 7",
			want:    "The result is 84.",
		},
		{
			name:    "spelled out operator",
			message: "what is 12 times 7",
			want:    "The result is 84.",
		},
		{
			name:    "precedence",
			message: "what is 3 + 5 * 2",
			want:    "The result is 13.",
		},
		{
			name:    "bare expression with parens",
			message: "(3 + 5) * 2",
			want:    "The result is 16.",
		},
		{
			name:    "power spelled out",
			message: "what is 2 to the power of 8",
			want:    "The result is 256.",
		},
		{
			name:    "squared",
			message: "5 squared",
			want:    "The result is 25.",
		},
		{
			name:    "division",
			message: "what is 10 / 4",
			want:    "The result is 2.5.",
		},
		{
			name:    "unary minus binds below power",
			message: "what is -2^2",
			want:    "The result is -4.",
		},
		{
			name:    "trailing question mark",
			message: "what is 2 + 2?",
			want:    "The result is 4.",
		},
		{
			name:    "pi concept",
			message: "what is pi",
			want:    "Pi (π) is the ratio of a circle's circumference to its diameter. It's approximately 3.14159 and is used in formulas for circles and spheres. It has infinitely many decimal places.",
		},
		{
			name:    "plural concept key",
			message: "explain percentages again",
			want:    "To find X% of Y, multiply Y by X/100. For example, 20% of 80 = 0.20 × 80 = 16. To find what percent X is of Y, do (X/Y) × 100.",
		},
		{
			name:    "pizza is not pi",
			message: "i like pizza",
			want:    "",
		},
		{
			name:    "division by zero passes",
			message: "what is 1 / 0",
			want:    "",
		},
		{
			name:    "plain chat passes",
			message: "hello there",
			want:    "",
		},
		{
			name:    "knowledge question passes",
			message: "what is a black hole",
			want:    "",
		},
		{
			name:    "single rune passes",
			message: "x",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, ok := m.Respond(context.Background(), Request{Message: tt.message})
			if tt.want == "" {
				if ok {
					t.Fatalf("Respond(%q) claimed with %q, want pass", tt.message, resp.Reply)
				}
				return
			}
			if !ok {
				t.Fatalf("Respond(%q) did not claim", tt.message)
			}
			if resp.Reply != tt.want {
				t.Errorf("Respond(%q)\n got %q\nwant %q", tt.message, resp.Reply, tt.want)
			}
			if resp.Source != SourceMath {
				t.Errorf("source = %q, want %q", resp.Source, SourceMath)
			}
		})
	}
}

func TestMathSuggestions(t *testing.T) {
	m := NewMath()

	resp, ok := m.Respond(context.Background(), Request{Message: "what is 12 times 7"})
	if !ok {
		t.Fatal("calculation not claimed")
	}
	if len(resp.Suggestions) != len(mathSuggestions) || resp.Suggestions[0] != mathSuggestions[0] {
		t.Errorf("solved calculation suggestions = %v", resp.Suggestions)
	}

	resp, ok = m.Respond(context.Background(), Request{Message: "what is pi"})
	if !ok {
		t.Fatal("concept not claimed")
	}
	if len(resp.Suggestions) != len(conceptSuggestions) || resp.Suggestions[0] != conceptSuggestions[0] {
		t.Errorf("concept suggestions = %v", resp.Suggestions)
	}
}

func TestRewriteWordOps(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12 times 7", "12 * 7"},
		{"10 divided by 2", "10 / 2"},
		{"2 to the power of 8", "2 ^ 8"},
		{"5 squared", "5 ^2"},
		{"3 cubed", "3 ^3"},
		{"7 plus 2 minus 1", "7 + 2 - 1"},
	}
	for _, tt := range tests {
		if got := rewriteWordOps(tt.in); got != tt.want {
			t.Errorf("rewriteWordOps(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEvalExpr(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "2 + 3 * 4", want: 14},
		{in: "(2 + 3) * 4", want: 20},
		{in: "10 / 4", want: 2.5},
		{in: "2 ^ 10", want: 1024},
		{in: "2 ^ 3 ^ 2", want: 512}, // right associative
		{in: "-2^2", want: -4},
		{in: "10 % 3", want: 1},
		{in: "--5", want: 5},
		{in: "3.5 + 1.5", want: 5},
		{in: "  7  ", want: 7},
		{in: "2 * (3 + 4)", want: 14},
		{in: "1 / 0", wantErr: true},
		{in: "5 % 0", wantErr: true},
		{in: "2 +", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "(2", wantErr: true},
		{in: "2 ^ 100", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := evalExpr(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("evalExpr(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("evalExpr(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("evalExpr(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
