package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// splitWords breaks input into words on whitespace, punctuation separators
// and camelCase boundaries, so any of "hello world", "hello_world" and
// "helloWorld" yield the same word list.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r), r == '_', r == '-', r == '.', r == '/':
			flush()
		case unicode.IsUpper(r):
			// camelCase boundary: lower followed by upper, or upper followed
			// by lower within an acronym run (HTTPServer -> HTTP Server).
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// ToCamelCase converts input to camelCase.
func ToCamelCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascalCase converts input to PascalCase.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToSnakeCase converts input to snake_case.
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToKebabCase converts input to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}

// ToConstantCase converts input to CONSTANT_CASE.
func ToConstantCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

// ToTitleCase converts input to Title Case using Unicode casing rules.
func ToTitleCase(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// ToSentenceCase lowercases input and capitalizes the first letter of each
// sentence.
func ToSentenceCase(s string) string {
	runes := []rune(strings.ToLower(s))
	capitalizeNext := true
	for i, r := range runes {
		if capitalizeNext && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			capitalizeNext = false
		}
		if r == '.' || r == '!' || r == '?' {
			capitalizeNext = true
		}
	}
	return string(runes)
}

// ToUpperCase converts input to upper case.
func ToUpperCase(s string) string {
	return strings.ToUpper(s)
}

// ToLowerCase converts input to lower case.
func ToLowerCase(s string) string {
	return strings.ToLower(s)
}

// ToAlternatingCase alternates letter casing, starting lower: aLtErNaTiNg.
func ToAlternatingCase(s string) string {
	runes := []rune(s)
	upper := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if upper {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
		upper = !upper
	}
	return string(runes)
}

// ToInverseCase swaps the case of every letter.
func ToInverseCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func joinLower(s, sep string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
