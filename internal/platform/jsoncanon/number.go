package jsoncanon

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a number literal the way a float/int round trip
// prints it. Integer literals are exact and only lose the sign of zero.
// Anything with a fraction or exponent becomes a float64 in shortest
// round-trip form: plain notation with a trailing ".0" for decimal exponents
// in [-4, 16), scientific notation otherwise.
func formatNumber(literal string) string {
	if !strings.ContainsAny(literal, ".eE") {
		if literal == "-0" {
			return "0"
		}
		return literal
	}
	// ParseFloat returns ±Inf with ErrRange on overflow, which is the value
	// we want to print.
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !math.IsInf(f, 0) {
		return literal
	}
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if exp < -4 || exp >= 16 {
		return sci
	}
	plain := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(plain, ".") {
		plain += ".0"
	}
	return plain
}
