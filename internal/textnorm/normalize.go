package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxHashLen bounds comparison keys so near-identical long prompts still collide.
const maxHashLen = 100

// deaccent decomposes to NFD, drops combining marks, recomposes.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// syntheticTags are appended to secret words by lower fallback tiers to keep
// decorated words visually distinct. They never count toward uniqueness.
var syntheticTags = []string{
	"-emergency", "_emergency",
	"-fallback", "_fallback",
	"-gemini", "_gemini",
}

// sessionSuffix matches trailing disambiguators like "_t1" or "-a3f" (any
// separator-led run that contains at least one digit).
var sessionSuffix = regexp.MustCompile(`[_-][a-z0-9]*[0-9][a-z0-9]*$`)

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// StripDiacritics removes accent marks ("circulação" -> "circulacao").
func StripDiacritics(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// ContentHash produces the duplicate-comparison key for question text:
// deaccented, lowercased, alphanumerics only, truncated to a bounded length.
// An empty hash never satisfies uniqueness checks.
func ContentHash(text string) string {
	s := strings.ToLower(StripDiacritics(text))
	var b strings.Builder
	for _, r := range s {
		if b.Len() >= maxHashLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeWord reduces a secret word to its undecorated comparison form:
// deaccented, lowercased, synthetic suffixes removed, letters only. A word
// decorated for display ("circulação_t1") and its plain form normalize to the
// same key, so uniqueness is always judged on the undecorated word.
// NormalizeWord is idempotent.
func NormalizeWord(word string) string {
	s := strings.ToLower(StripDiacritics(strings.TrimSpace(word)))
	for _, tag := range syntheticTags {
		if i := strings.Index(s, tag); i >= 0 {
			s = s[:i]
		}
	}
	s = sessionSuffix.ReplaceAllString(s, "")
	s = trailingDigits.ReplaceAllString(s, "")
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EqualFold compares two strings ignoring case and diacritics.
func EqualFold(a, b string) bool {
	return strings.EqualFold(StripDiacritics(a), StripDiacritics(b))
}
