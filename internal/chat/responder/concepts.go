package responder

import "regexp"

// mathConcepts explain common topics when there is nothing to compute.
// Checked in order. Keys match on word boundaries with an optional plural
// "s", so "percentages" finds "percentage" but "pizza" never finds "pi".
var mathConcepts = []struct {
	re    *regexp.Regexp
	reply string
}{
	{conceptRe("quadratic formula"), "The quadratic formula solves ax² + bx + c = 0. It is x = (-b ± √(b²-4ac)) / (2a). The part under the square root, b²-4ac, is called the discriminant. If it's positive, there are two real solutions; if zero, one; if negative, no real solutions."},
	{conceptRe("pythagorean theorem"), "The Pythagorean theorem says that in a right triangle, the square of the hypotenuse (the side opposite the right angle) equals the sum of the squares of the other two sides: a² + b² = c². You can use it to find any side if you know the other two."},
	{conceptRe("area of circle"), "The area of a circle is πr², where r is the radius. So if the radius is 5, the area is π × 25 ≈ 78.54 square units."},
	{conceptRe("circumference of circle"), "The circumference (distance around) a circle is 2πr, where r is the radius. So for radius 5, circumference = 2 × π × 5 ≈ 31.42."},
	{conceptRe("volume of sphere"), "The volume of a sphere is (4/3)πr³. So for radius 3, volume = (4/3) × π × 27 ≈ 113.1 cubic units."},
	{conceptRe("percentage"), "To find X% of Y, multiply Y by X/100. For example, 20% of 80 = 0.20 × 80 = 16. To find what percent X is of Y, do (X/Y) × 100."},
	{conceptRe("fraction"), "A fraction is a part of a whole, written as a/b. You can add fractions with a common denominator, multiply by multiplying numerators and denominators, and divide by multiplying by the reciprocal."},
	{conceptRe("decimal"), "Decimals are a way to write numbers with a fractional part using a decimal point. The first place after the point is tenths, then hundredths, and so on."},
	{conceptRe("square root"), "The square root of a number n is a number that when multiplied by itself gives n. For example, √9 = 3 because 3×3 = 9. Negative numbers don't have real square roots."},
	{conceptRe("exponent"), "An exponent means repeated multiplication. For example, 2³ = 2×2×2 = 8. Rules: aⁿ × aᵐ = aⁿ⁺ᵐ, aⁿ ÷ aᵐ = aⁿ⁻ᵐ, (aⁿ)ᵐ = aⁿᵐ."},
	{conceptRe("algebra"), "Algebra uses letters (like x) to stand for unknown numbers. You solve equations by doing the same thing to both sides until the unknown is alone. For example, 2x + 3 = 9 → subtract 3 → 2x = 6 → divide by 2 → x = 3."},
	{conceptRe("geometry"), "Geometry is the study of shapes, angles, and space. Key ideas include area (for 2D shapes), volume (for 3D shapes), and the Pythagorean theorem for right triangles."},
	{conceptRe("pi"), "Pi (π) is the ratio of a circle's circumference to its diameter. It's approximately 3.14159 and is used in formulas for circles and spheres. It has infinitely many decimal places."},
	{conceptRe("mean average"), "The mean (average) of a set of numbers is the sum of all the numbers divided by how many there are. For example, the mean of 4, 8, and 12 is (4+8+12)/3 = 8."},
	{conceptRe("median"), "The median is the middle value when numbers are arranged in order. If there's an even count, it's the average of the two middle values."},
	{conceptRe("mode"), "The mode is the value that appears most often in a set of numbers. A set can have one mode, more than one, or no mode."},
}

func conceptRe(key string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `s?\b`)
}

func mathConcept(text string) (string, bool) {
	for _, c := range mathConcepts {
		if c.re.MatchString(text) {
			return c.reply, true
		}
	}
	return "", false
}
