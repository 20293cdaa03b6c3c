package transform

import (
	"strings"
	"unicode"

	"textforge/pkg/errors"
)

// Rot13 applies the ROT13 substitution to ASCII letters. Self-inverse.
func Rot13(s string) string {
	return Caesar(s, 13)
}

// Rot47 applies the ROT47 substitution over the printable ASCII range
// '!'..'~'. Self-inverse.
func Rot47(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '!' && r <= '~' {
			return '!' + (r-'!'+47)%94
		}
		return r
	}, s)
}

// Caesar shifts ASCII letters by the given amount, preserving case and
// leaving other characters untouched. Negative shifts decrypt.
func Caesar(s string, shift int) string {
	shift = ((shift % 26) + 26) % 26
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+rune(shift))%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+rune(shift))%26
		}
		return r
	}, s)
}

// CaesarDecrypt reverses Caesar for the same shift.
func CaesarDecrypt(s string, shift int) string {
	return Caesar(s, -shift)
}

// Atbash mirrors ASCII letters within their alphabet (a<->z). Self-inverse.
func Atbash(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'z' - (r - 'a')
		case r >= 'A' && r <= 'Z':
			return 'Z' - (r - 'A')
		}
		return r
	}, s)
}

// VigenereEncrypt encrypts ASCII letters with the Vigenère cipher. The key
// must contain at least one letter; non-letter key characters are ignored.
func VigenereEncrypt(s, key string) (string, error) {
	return vigenere(s, key, false)
}

// VigenereDecrypt reverses VigenereEncrypt for the same key.
func VigenereDecrypt(s, key string) (string, error) {
	return vigenere(s, key, true)
}

func vigenere(s, key string, decrypt bool) (string, error) {
	var shifts []int
	for _, r := range strings.ToLower(key) {
		if r >= 'a' && r <= 'z' {
			shifts = append(shifts, int(r-'a'))
		}
	}
	if len(shifts) == 0 {
		return "", errors.NewTransformError("a key containing at least one letter is required")
	}

	var b strings.Builder
	ki := 0
	for _, r := range s {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		shift := shifts[ki%len(shifts)]
		if decrypt {
			shift = -shift
		}
		shift = ((shift % 26) + 26) % 26
		if r >= 'a' && r <= 'z' {
			b.WriteRune('a' + (r-'a'+rune(shift))%26)
		} else {
			b.WriteRune('A' + (r-'A'+rune(shift))%26)
		}
		ki++
	}
	return b.String(), nil
}
