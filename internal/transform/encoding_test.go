package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", Base64Encode("hello"))

	decoded, err := Base64Decode("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)

	_, err = Base64Decode("not base64!!!")
	assert.Error(t, err)
}

func TestURLEncoding(t *testing.T) {
	assert.Equal(t, "a+b%26c", URLEncode("a b&c"))

	decoded, err := URLDecode("a+b%26c")
	require.NoError(t, err)
	assert.Equal(t, "a b&c", decoded)

	_, err = URLDecode("%zz")
	assert.Error(t, err)
}

func TestHTMLEncoding(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&lt;/b&gt;", HTMLEncode("<b>&</b>"))
	assert.Equal(t, "<b>&</b>", HTMLDecode("&lt;b&gt;&amp;&lt;/b&gt;"))
}

func TestHexRoundTrip(t *testing.T) {
	assert.Equal(t, "68656c6c6f", TextToHex("hello"))

	decoded, err := HexToText("68656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)

	// Whitespace between byte pairs is tolerated.
	decoded, err = HexToText("68 65 6c 6c 6f")
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)

	_, err = HexToText("zz")
	assert.Error(t, err)
}

func TestBinaryRoundTrip(t *testing.T) {
	assert.Equal(t, "01101000 01101001", TextToBinary("hi"))

	decoded, err := BinaryToText("01101000 01101001")
	require.NoError(t, err)
	assert.Equal(t, "hi", decoded)

	_, err = BinaryToText("01102000")
	assert.Error(t, err)
}

func TestMorse(t *testing.T) {
	assert.Equal(t, ".... . .-.. .-.. ---", MorseEncode("hello"))
	assert.Equal(t, ".... . .-.. .-.. --- / .-- --- .-. .-.. -..", MorseEncode("Hello World"))

	decoded, err := MorseDecode(".... . .-.. .-.. --- / .-- --- .-. .-.. -..")
	require.NoError(t, err)
	assert.Equal(t, "hello world", decoded)

	_, err = MorseDecode("...---...------")
	assert.Error(t, err)
}
