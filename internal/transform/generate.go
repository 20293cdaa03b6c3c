package transform

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"textforge/pkg/errors"
)

// GenerateUUIDv4 returns a random version 4 UUID.
func GenerateUUIDv4() string {
	return uuid.NewString()
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}<>?"

// GeneratePassword returns a random password of the given length drawn from
// letters, digits and punctuation.
func GeneratePassword(length int) (string, error) {
	if length < 4 || length > 256 {
		return "", errors.NewTransformErrorf("password length must be between 4 and 256, got %d", length)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		b.WriteByte(passwordAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

// GenerateRandomNumber returns a uniform random integer in [min, max].
func GenerateRandomNumber(min, max int) (string, error) {
	if min > max {
		return "", errors.NewTransformErrorf("min (%d) must not exceed max (%d)", min, max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)+1))
	if err != nil {
		return "", fmt.Errorf("reading random source: %w", err)
	}
	return fmt.Sprintf("%d", int64(min)+n.Int64()), nil
}

// GenerateHexColor returns a random "#rrggbb" color.
func GenerateHexColor() string {
	var bytes [3]byte
	_, _ = rand.Read(bytes[:])
	return fmt.Sprintf("#%02x%02x%02x", bytes[0], bytes[1], bytes[2])
}

var loremSentences = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	"Nisi ut aliquip ex ea commodo consequat.",
	"Duis aute irure dolor in reprehenderit in voluptate velit esse.",
	"Cillum dolore eu fugiat nulla pariatur.",
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa.",
	"Qui officia deserunt mollit anim id est laborum.",
}

// GenerateLoremIpsum returns the requested number of lorem ipsum sentences,
// cycling through the canonical passage.
func GenerateLoremIpsum(sentences int) (string, error) {
	if sentences < 1 || sentences > 100 {
		return "", errors.NewTransformErrorf("sentence count must be between 1 and 100, got %d", sentences)
	}
	parts := make([]string, sentences)
	for i := 0; i < sentences; i++ {
		parts[i] = loremSentences[i%len(loremSentences)]
	}
	return strings.Join(parts, " "), nil
}
