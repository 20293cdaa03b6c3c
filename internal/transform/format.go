package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"textforge/pkg/errors"
)

// FormatJSON pretty-prints JSON input with the given indent width in spaces.
func FormatJSON(s string, indent int) (string, error) {
	if indent < 1 {
		indent = 2
	}
	if indent > 8 {
		indent = 8
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(s)), "", strings.Repeat(" ", indent)); err != nil {
		return "", errors.NewTransformError("invalid JSON input")
	}
	return buf.String(), nil
}

// MinifyJSON removes insignificant whitespace from JSON input.
func MinifyJSON(s string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(strings.TrimSpace(s))); err != nil {
		return "", errors.NewTransformError("invalid JSON input")
	}
	return buf.String(), nil
}

// SortLines sorts input lines lexicographically. order is "asc" or "desc".
func SortLines(s, order string) string {
	lines := strings.Split(s, "\n")
	sort.Strings(lines)
	if order == "desc" {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// UniqueLines removes duplicate lines, keeping the first occurrence in order.
func UniqueLines(s string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// ReverseLines reverses the order of input lines.
func ReverseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

// RemoveExtraWhitespace trims the input and collapses runs of spaces and
// tabs within each line to a single space.
func RemoveExtraWhitespace(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// NumberLines prefixes each line with its 1-based line number.
func NumberLines(s string) string {
	lines := strings.Split(s, "\n")
	width := len(fmt.Sprintf("%d", len(lines)))
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%*d  %s", width, i+1, line)
	}
	return strings.Join(lines, "\n")
}
