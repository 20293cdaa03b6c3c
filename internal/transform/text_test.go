package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseText(t *testing.T) {
	assert.Equal(t, "olleh", ReverseText("hello"))
	assert.Equal(t, "hello", ReverseText(ReverseText("hello")))
	// Multi-byte runes stay intact.
	assert.Equal(t, "éb", ReverseText("bé"))
}

func TestCounts(t *testing.T) {
	assert.Equal(t, "5", CountCharacters("hello"))
	assert.Equal(t, "2", CountCharacters("éa"))
	assert.Equal(t, "3", CountWords("one two  three"))
	assert.Equal(t, "0", CountLines(""))
	assert.Equal(t, "2", CountLines("a\nb"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-blog-post", Slugify("My Blog Post!"))
	assert.Equal(t, "creme-brulee", Slugify("Crème Brûlée"))
	assert.Equal(t, "a-b-c", Slugify("  a   b -- c  "))
}

func TestTruncateText(t *testing.T) {
	out, err := TruncateText("hello world", 5)
	require.NoError(t, err)
	assert.Equal(t, "hello...", out)

	out, err = TruncateText("short", 50)
	require.NoError(t, err)
	assert.Equal(t, "short", out)

	_, err = TruncateText("x", 0)
	assert.Error(t, err)
}

func TestRepeatText(t *testing.T) {
	out, err := RepeatText("ab", 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", out)

	_, err = RepeatText("ab", 0)
	assert.Error(t, err)
	_, err = RepeatText("ab", 1001)
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	assert.Equal(t, "123", ExtractNumbers("a1b2c3"))
	assert.Equal(t, "abc", ExtractLetters("a1b2c3"))
}

func TestRemoveAccents(t *testing.T) {
	assert.Equal(t, "creme brulee", RemoveAccents("crème brûlée"))
	assert.Equal(t, "uber", RemoveAccents("über"))
	assert.Equal(t, "plain", RemoveAccents("plain"))
}
