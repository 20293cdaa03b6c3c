package transform

import (
	"encoding/base64"
	"encoding/hex"
	"html"
	"net/url"
	"strconv"
	"strings"

	"textforge/pkg/errors"
)

// Base64Encode encodes input as standard base64.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard base64 input.
func Base64Decode(s string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", errors.NewTransformError("invalid base64 input")
	}
	return string(decoded), nil
}

// URLEncode percent-encodes input for use in a URL query component.
func URLEncode(s string) string {
	return url.QueryEscape(s)
}

// URLDecode reverses percent-encoding.
func URLDecode(s string) (string, error) {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return "", errors.NewTransformError("invalid URL-encoded input")
	}
	return decoded, nil
}

// HTMLEncode escapes HTML special characters as entities.
func HTMLEncode(s string) string {
	return html.EscapeString(s)
}

// HTMLDecode resolves HTML entities back to characters.
func HTMLDecode(s string) string {
	return html.UnescapeString(s)
}

// TextToHex renders each input byte as two lowercase hex digits.
func TextToHex(s string) string {
	return hex.EncodeToString([]byte(s))
}

// HexToText decodes a hex string back to text. Whitespace between byte pairs
// is tolerated.
func HexToText(s string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, s)
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", errors.NewTransformError("invalid hex input")
	}
	return string(decoded), nil
}

// TextToBinary renders each input byte as 8 binary digits, space separated.
func TextToBinary(s string) string {
	parts := make([]string, 0, len(s))
	for _, b := range []byte(s) {
		parts = append(parts, paddedBinary(b))
	}
	return strings.Join(parts, " ")
}

func paddedBinary(b byte) string {
	bits := strconv.FormatUint(uint64(b), 2)
	return strings.Repeat("0", 8-len(bits)) + bits
}

// BinaryToText decodes space-separated 8-bit binary groups back to text.
func BinaryToText(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", nil
	}
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 2, 8)
		if err != nil {
			return "", errors.NewTransformErrorf("invalid binary group %q", f)
		}
		out = append(out, byte(n))
	}
	return string(out), nil
}

var morseTable = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".", 'f': "..-.",
	'g': "--.", 'h': "....", 'i': "..", 'j': ".---", 'k': "-.-", 'l': ".-..",
	'm': "--", 'n': "-.", 'o': "---", 'p': ".--.", 'q': "--.-", 'r': ".-.",
	's': "...", 't': "-", 'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-",
	'y': "-.--", 'z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '/': "-..-.",
	'(': "-.--.", ')': "-.--.-", '&': ".-...", ':': "---...", ';': "-.-.-.",
	'=': "-...-", '+': ".-.-.", '-': "-....-", '"': ".-..-.", '@': ".--.-.",
	'\'': ".----.",
}

var morseReverse = func() map[string]rune {
	m := make(map[string]rune, len(morseTable))
	for r, code := range morseTable {
		m[code] = r
	}
	return m
}()

// MorseEncode converts text to morse code. Letters become dot/dash groups
// separated by spaces; words are separated by " / ". Characters without a
// morse representation are dropped.
func MorseEncode(s string) string {
	words := strings.Fields(strings.ToLower(s))
	encodedWords := make([]string, 0, len(words))
	for _, word := range words {
		var groups []string
		for _, r := range word {
			if code, ok := morseTable[r]; ok {
				groups = append(groups, code)
			}
		}
		if len(groups) > 0 {
			encodedWords = append(encodedWords, strings.Join(groups, " "))
		}
	}
	return strings.Join(encodedWords, " / ")
}

// MorseDecode converts morse code (space-separated groups, "/" between
// words) back to text.
func MorseDecode(s string) (string, error) {
	var b strings.Builder
	for i, word := range strings.Split(strings.TrimSpace(s), "/") {
		if i > 0 {
			b.WriteRune(' ')
		}
		for _, group := range strings.Fields(word) {
			r, ok := morseReverse[group]
			if !ok {
				return "", errors.NewTransformErrorf("unknown morse sequence %q", group)
			}
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
