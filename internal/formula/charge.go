package formula

import (
	"strconv"
	"strings"
)

var (
	subscriptDigits   = []rune("₀₁₂₃₄₅₆₇₈₉")
	superscriptDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")
)

const (
	superscriptPlus  = '⁺'
	superscriptMinus = '⁻'
)

// TextCharge formats a charge like "2-", "+" or "3+". Zero yields "".
func TextCharge(charge int) string {
	if charge == 0 {
		return ""
	}
	mag, sign := chargeParts(charge)
	if mag == 1 {
		return string(sign)
	}
	return strconv.FormatUint(mag, 10) + string(sign)
}

// UnicodeCharge formats a charge with superscript characters, e.g. "²⁻"
func UnicodeCharge(charge int) string {
	if charge == 0 {
		return ""
	}
	mag, sign := chargeParts(charge)

	var sb strings.Builder
	if mag != 1 {
		sb.WriteString(mapDigits(strconv.FormatUint(mag, 10), superscriptDigits))
	}
	if sign == '+' {
		sb.WriteRune(superscriptPlus)
	} else {
		sb.WriteRune(superscriptMinus)
	}
	return sb.String()
}

// latexCharge formats a charge in mhchem syntax, e.g. "^{2-}"
func latexCharge(charge int) string {
	if charge == 0 {
		return ""
	}
	return "^{" + TextCharge(charge) + "}"
}

func chargeParts(charge int) (uint64, byte) {
	if charge > 0 {
		return uint64(charge), '+'
	}
	// avoids overflow for the most negative int
	return uint64(-(charge + 1)) + 1, '-'
}

// mapDigits replaces ASCII digits in s using table
func mapDigits(s string, table []rune) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(table[r-'0'])
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
