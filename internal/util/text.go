package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSpaces       = regexp.MustCompile(`\s+`)
	reThousandDots = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reThousandComs = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)
)

// CollapseSpaces replaces runs of whitespace with a single space and trims
// the ends.
func CollapseSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// NormalizeLabel produces the canonical form of a header cell: trimmed and
// lower-cased. Inner spacing is preserved so multi-word synonyms still match.
func NormalizeLabel(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// NormalizeCode cleans a product code cell. Codes that were numeric in the
// source sheet arrive as floating-point text, so a trailing ".0" is stripped.
func NormalizeCode(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// ParsePrice coerces a price cell to a number. Currency prefixes, thousand
// separators and decimal commas are tolerated; anything else yields nil
// rather than an error.
func ParsePrice(input string) *float64 {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "S/")
	s = strings.TrimPrefix(s, "$")
	s = normalizeNumericToken(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FloatPtr(parsed)
}

// FormatPrice renders a price with exactly two decimals, treating an absent
// price as zero.
func FormatPrice(price *float64) string {
	value := 0.0
	if price != nil {
		value = *price
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func normalizeNumericToken(token string) string {
	compact := strings.ReplaceAll(token, " ", "")
	compact = strings.ReplaceAll(compact, " ", "")
	if reThousandDots.MatchString(compact) {
		return strings.ReplaceAll(compact, ".", "")
	}
	if reThousandComs.MatchString(compact) {
		return strings.ReplaceAll(compact, ",", "")
	}
	if strings.Contains(compact, ",") && !strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", ".")
	}
	return compact
}

func FloatPtr(v float64) *float64 { return &v }
