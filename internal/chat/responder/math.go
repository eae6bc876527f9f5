package responder

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// mathSuggestions follow a solved calculation.
var mathSuggestions = []string{
	"How do I solve a quadratic equation?",
	"What is the Pythagorean theorem?",
	"Explain percentages again",
}

// conceptSuggestions follow a concept explanation, nudging toward a
// worked example.
var conceptSuggestions = []string{
	"Solve 2x + 5 = 15",
	"What is 20% of 80?",
	"Area of a circle with radius 5",
}

// Math answers arithmetic, percentages, simple and quadratic equations,
// circle and sphere geometry, square roots, and math concept questions.
// It claims only what it can actually solve or explain; everything else
// flows on to the engine.
type Math struct{}

// NewMath builds the math responder. It is stateless and safe for
// concurrent use.
func NewMath() *Math { return &Math{} }

func (m *Math) Respond(ctx context.Context, req Request) (*Response, bool) {
	text := strings.ToLower(strings.TrimSpace(req.Message))
	if len(text) < 2 {
		return nil, false
	}
	if reply, ok := solveMath(text); ok {
		return &Response{
			Reply:       reply,
			Suggestions: append([]string(nil), mathSuggestions...),
			Source:      SourceMath,
		}, true
	}
	if reply, ok := mathConcept(text); ok {
		return &Response{
			Reply:       reply,
			Suggestions: append([]string(nil), conceptSuggestions...),
			Source:      SourceMath,
		}, true
	}
	return nil, false
}

// solveMath tries each solver in order of specificity. Percentages come
// first ("%" text would otherwise read as modulo), bare arithmetic last.
func solveMath(text string) (string, bool) {
	if reply, ok := solvePercentage(text); ok {
		return reply, true
	}
	if reply, ok := solveQuadratic(text); ok {
		return reply, true
	}
	if reply, ok := solveAlgebra(text); ok {
		return reply, true
	}
	if reply, ok := solveGeometry(text); ok {
		return reply, true
	}
	if reply, ok := solveSquareRoot(text); ok {
		return reply, true
	}
	if reply, ok := solveArithmetic(text); ok {
		return reply, true
	}
	return "", false
}

var (
	percentOfRe      = regexp.MustCompile(`(?:what\s+is\s+)?(\d+(?:\.\d+)?)\s*%\s*(?:of\s+)?(\d+(?:\.\d+)?)`)
	percentWordRe    = regexp.MustCompile(`(?:what\s+is\s+)?(\d+(?:\.\d+)?)\s*percent\s+of\s+(\d+(?:\.\d+)?)`)
	percentInverseRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+is\s+(\d+(?:\.\d+)?)\s*%\s+of\s+what`)
	percentShareRe   = regexp.MustCompile(`what\s+percent\s+of\s+(\d+(?:\.\d+)?)\s+is\s+(\d+(?:\.\d+)?)`)
	numberRe         = regexp.MustCompile(`-?\d+\.?\d*`)
)

func solvePercentage(text string) (string, bool) {
	if m := percentOfRe.FindStringSubmatch(text); m != nil {
		p, whole := parseNum(m[1]), parseNum(m[2])
		result := p / 100 * whole
		return fmt.Sprintf("%s%% of %s = %s × %s = %s. So the answer is %s.",
			fnum(p), fnum(whole), fnum(p/100), fnum(whole), fnum(result), fnum(result)), true
	}
	if m := percentWordRe.FindStringSubmatch(text); m != nil {
		p, whole := parseNum(m[1]), parseNum(m[2])
		result := p / 100 * whole
		return fmt.Sprintf("%s%% of %s = %s × %s = %s. So the answer is %s.",
			fnum(p), fnum(whole), fnum(p/100), fnum(whole), fnum(result), fnum(result)), true
	}
	if m := percentInverseRe.FindStringSubmatch(text); m != nil {
		part, p := parseNum(m[1]), parseNum(m[2])
		if p != 0 {
			whole := part / (p / 100)
			return fmt.Sprintf("If %s is %s%% of a number, then that number = %s ÷ (%s/100) = %s ÷ %s = %s.",
				fnum(part), fnum(p), fnum(part), fnum(p), fnum(part), fnum(p/100), fnum(whole)), true
		}
	}
	if m := percentShareRe.FindStringSubmatch(text); m != nil {
		whole, part := parseNum(m[1]), parseNum(m[2])
		if whole != 0 {
			p := part / whole * 100
			return fmt.Sprintf("%s ÷ %s × 100 = %s%%. So the answer is %s%%.",
				fnum(part), fnum(whole), fnum(p), fnum(p)), true
		}
	}
	// Loose "X% of Y" with words in between: last number before the "%",
	// first number after it.
	if idx := strings.Index(text, "%"); idx >= 0 && len(extractNumbers(text)) >= 2 {
		before := extractNumbers(text[:idx])
		after := extractNumbers(text[idx:])
		if len(before) > 0 && len(after) > 0 {
			p, whole := before[len(before)-1], after[0]
			result := p / 100 * whole
			return fmt.Sprintf("%s%% of %s = %s.", fnum(p), fnum(whole), fnum(result)), true
		}
	}
	return "", false
}

var (
	quadMonicRe   = regexp.MustCompile(`x\^2\+(\d+(?:\.\d+)?)x\+(\d+(?:\.\d+)?)=0`)
	quadGeneralRe = regexp.MustCompile(`(\d+(?:\.\d+)?)x\^2([+-])(\d+(?:\.\d+)?)x([+-])(\d+(?:\.\d+)?)=0`)
)

func solveQuadratic(text string) (string, bool) {
	compact := strings.ReplaceAll(text, " ", "")
	var a, b, c float64
	if m := quadMonicRe.FindStringSubmatch(compact); m != nil {
		a, b, c = 1, parseNum(m[1]), parseNum(m[2])
	} else if m := quadGeneralRe.FindStringSubmatch(compact); m != nil {
		a = parseNum(m[1])
		b = signed(m[2], parseNum(m[3]))
		c = signed(m[4], parseNum(m[5]))
	} else {
		return "", false
	}
	if a == 0 {
		return "", false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return "The discriminant is negative, so there are no real solutions (only complex ones).", true
	}
	sqrtD := math.Sqrt(disc)
	x1 := (-b + sqrtD) / (2 * a)
	x2 := (-b - sqrtD) / (2 * a)
	return fmt.Sprintf("Using the quadratic formula: x = (-b ± √(b²-4ac)) / (2a). Here a=%s, b=%s, c=%s. Discriminant = %s. So x = %s or x = %s.",
		fnum(a), fnum(b), fnum(c), fnum(disc), fnum(x1), fnum(x2)), true
}

// The two-step form is checked first: "2x+5=15" contains "x+5=15", and
// matching the shorter pattern first would answer the wrong equation.
var (
	algebraTwoStepRe = regexp.MustCompile(`(\d+(?:\.\d+)?)x\+(\d+(?:\.\d+)?)=(\d+(?:\.\d+)?)`)
	algebraAddRe     = regexp.MustCompile(`x\+(\d+(?:\.\d+)?)=(\d+(?:\.\d+)?)`)
	algebraScaleRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)x=(\d+(?:\.\d+)?)`)
)

func solveAlgebra(text string) (string, bool) {
	compact := strings.ReplaceAll(text, " ", "")
	if m := algebraTwoStepRe.FindStringSubmatch(compact); m != nil {
		a, c, b := parseNum(m[1]), parseNum(m[2]), parseNum(m[3])
		if a == 0 {
			return "", false
		}
		x := (b - c) / a
		return fmt.Sprintf("First subtract %s: %sx = %s. Then divide by %s: x = %s/%s = %s. So x = %s.",
			fnum(c), fnum(a), fnum(b-c), fnum(a), fnum(b-c), fnum(a), fnum(x), fnum(x)), true
	}
	if m := algebraAddRe.FindStringSubmatch(compact); m != nil {
		c, b := parseNum(m[1]), parseNum(m[2])
		x := b - c
		return fmt.Sprintf("Subtract %s from both sides: x = %s - %s = %s. So x = %s.",
			fnum(c), fnum(b), fnum(c), fnum(x), fnum(x)), true
	}
	if m := algebraScaleRe.FindStringSubmatch(compact); m != nil {
		a, b := parseNum(m[1]), parseNum(m[2])
		if a == 0 {
			return "", false
		}
		x := b / a
		return fmt.Sprintf("Divide both sides by %s: x = %s/%s = %s. So x = %s.",
			fnum(a), fnum(b), fnum(a), fnum(x), fnum(x)), true
	}
	return "", false
}

var (
	circleAreaRe   = regexp.MustCompile(`area\s+of\s+(?:a\s+)?circle\s+(?:with\s+)?radius\s+(\d+(?:\.\d+)?)`)
	circleCircumRe = regexp.MustCompile(`circumference\s+of\s+(?:a\s+)?circle\s+(?:with\s+)?radius\s+(\d+(?:\.\d+)?)`)
	sphereVolumeRe = regexp.MustCompile(`volume\s+of\s+(?:a\s+)?sphere\s+(?:with\s+)?radius\s+(\d+(?:\.\d+)?)`)
)

func solveGeometry(text string) (string, bool) {
	if m := circleAreaRe.FindStringSubmatch(text); m != nil {
		r := parseNum(m[1])
		return fmt.Sprintf("Area of a circle = πr² = π × %s² = %.4f (using π ≈ 3.14159).", fnum(r), math.Pi*r*r), true
	}
	if m := circleCircumRe.FindStringSubmatch(text); m != nil {
		r := parseNum(m[1])
		return fmt.Sprintf("Circumference = 2πr = 2 × π × %s = %.4f.", fnum(r), 2*math.Pi*r), true
	}
	if m := sphereVolumeRe.FindStringSubmatch(text); m != nil {
		r := parseNum(m[1])
		return fmt.Sprintf("Volume of a sphere = (4/3)πr³ = (4/3) × π × %s³ = %.4f.", fnum(r), 4.0/3.0*math.Pi*r*r*r), true
	}
	return "", false
}

var squareRootRe = regexp.MustCompile(`square\s+roots?\s+of\s+(-?\d+(?:\.\d+)?)`)

func solveSquareRoot(text string) (string, bool) {
	m := squareRootRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	n := parseNum(m[1])
	if n < 0 {
		return "Negative numbers don't have real square roots.", true
	}
	root := math.Sqrt(n)
	if root == math.Trunc(root) {
		return fmt.Sprintf("The square root of %s is %s.", fnum(n), fnum(root)), true
	}
	return fmt.Sprintf("The square root of %s is about %.4f.", fnum(n), root), true
}

var (
	exprPrefixRe = regexp.MustCompile(`(?:what\s+is|calculate|compute|solve)\s+([\d\s+*/().^%-]+)`)
	bareExprRe   = regexp.MustCompile(`^[\d\s+*/().^%-]+$`)
	wordOpRe     = regexp.MustCompile(`\b(?:divided\s+by|to\s+the\s+power\s+of|times|plus|minus|squared|cubed)\b`)
)

var wordOps = map[string]string{
	"divided by":      "/",
	"to the power of": "^",
	"times":           "*",
	"plus":            "+",
	"minus":           "-",
	"squared":         "^2",
	"cubed":           "^3",
}

// rewriteWordOps turns spelled-out operators into symbols so "12 times 7"
// and "5 squared" reach the evaluator.
func rewriteWordOps(text string) string {
	return wordOpRe.ReplaceAllStringFunc(text, func(m string) string {
		return wordOps[strings.Join(strings.Fields(m), " ")]
	})
}

func solveArithmetic(text string) (string, bool) {
	rewritten := rewriteWordOps(text)
	if m := exprPrefixRe.FindStringSubmatch(rewritten); m != nil {
		if v, err := evalExpr(m[1]); err == nil {
			return fmt.Sprintf("The result is %s.", fnum(v)), true
		}
	}
	if bareExprRe.MatchString(rewritten) {
		if v, err := evalExpr(rewritten); err == nil {
			return fmt.Sprintf("The result is %s.", fnum(v)), true
		}
	}
	return "", false
}

func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	return v
}

func extractNumbers(text string) []float64 {
	var out []float64
	for _, m := range numberRe.FindAllString(text, -1) {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func signed(sign string, v float64) float64 {
	if sign == "-" {
		return -v
	}
	return v
}
