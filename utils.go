package lox

import (
	"math"
	"strconv"
	"strings"
)

func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func IsAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func IsAlphaNumeric(c rune) bool {
	return IsAlpha(c) || IsDigit(c)
}

// Stringify renders a runtime value the way print shows it.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	default:
		panic("Unreachable.")
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	text := strconv.FormatFloat(n, 'f', -1, 64)
	return strings.TrimSuffix(text, ".0")
}

// IsTruthy: nil and false are falsy, everything else is truthy.
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// IsEqual compares by value; values of different kinds are never equal.
func IsEqual(lhs, rhs any) bool {
	if !SameType(lhs, rhs) {
		return false
	}
	return lhs == rhs
}

func SameType(lhs, rhs any) bool {
	switch lhs.(type) {
	case string:
		_, ok := rhs.(string)
		return ok
	case float64:
		_, ok := rhs.(float64)
		return ok
	case bool:
		_, ok := rhs.(bool)
		return ok
	case nil:
		return rhs == nil
	default:
		panic("Unreachable.")
	}
}
