package transform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"textforge/pkg/errors"
)

// ReverseText reverses the input rune by rune.
func ReverseText(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// CountCharacters returns the number of characters (runes) in the input.
func CountCharacters(s string) string {
	return fmt.Sprintf("%d", len([]rune(s)))
}

// CountWords returns the number of whitespace-separated words.
func CountWords(s string) string {
	return fmt.Sprintf("%d", len(strings.Fields(s)))
}

// CountLines returns the number of lines. Empty input counts as zero lines.
func CountLines(s string) string {
	if s == "" {
		return "0"
	}
	return fmt.Sprintf("%d", strings.Count(s, "\n")+1)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases input, folds accents, and joins the remaining
// alphanumeric runs with hyphens.
func Slugify(s string) string {
	folded := RemoveAccents(strings.ToLower(s))
	slug := slugStrip.ReplaceAllString(folded, "-")
	return strings.Trim(slug, "-")
}

// TruncateText cuts input to at most maxLen runes, appending an ellipsis
// when anything was removed.
func TruncateText(s string, maxLen int) (string, error) {
	if maxLen < 1 {
		return "", errors.NewTransformErrorf("length must be at least 1, got %d", maxLen)
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s, nil
	}
	return string(r[:maxLen]) + "...", nil
}

// RepeatText repeats the input the given number of times.
func RepeatText(s string, times int) (string, error) {
	if times < 1 || times > 1000 {
		return "", errors.NewTransformErrorf("repeat count must be between 1 and 1000, got %d", times)
	}
	return strings.Repeat(s, times), nil
}

// ExtractNumbers keeps only digit characters.
func ExtractNumbers(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ExtractLetters keeps only letter characters.
func ExtractLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// RemoveAccents strips combining marks from the input (é -> e, ü -> u).
func RemoveAccents(s string) string {
	t := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := xtransform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
