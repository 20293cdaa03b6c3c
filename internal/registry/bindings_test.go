package registry

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textforge/internal/transform"
)

// Every declared tool must have a resolvable implementation. This is the
// load-bearing invariant of the whole dispatch design.
func TestEveryToolFunctionIsRegistered(t *testing.T) {
	tools := NewDefaultToolRegistry()
	functions := NewDefaultFunctionRegistry()

	for _, tool := range tools.ListAllTools() {
		assert.True(t, functions.Has(tool.TransformFn),
			"tool %q declares unregistered transformFn %q", tool.ID, tool.TransformFn)
		if tool.ReverseFn != "" {
			assert.True(t, functions.Has(tool.ReverseFn),
				"tool %q declares unregistered reverseFn %q", tool.ID, tool.ReverseFn)
		}
	}
}

func TestCamelCaseRoundTrip(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("toCamelCase")
	require.True(t, ok)

	out, err := fn("hello world", nil)
	require.NoError(t, err)
	assert.Equal(t, "helloWorld", out)
}

func TestBase64RoundTrip(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	encode, ok := functions.Resolve("base64Encode")
	require.True(t, ok)
	decode, ok := functions.Resolve("base64Decode")
	require.True(t, ok)

	encoded, err := encode("hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", encoded)

	decoded, err := decode(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)
}

func TestRot13ThroughRegistryIsSelfInverse(t *testing.T) {
	tools := NewDefaultToolRegistry()
	functions := NewDefaultFunctionRegistry()

	tool, ok := tools.GetTool("ciphers", "rot13")
	require.True(t, ok)

	fn, ok := functions.Resolve(tool.TransformFn)
	require.True(t, ok)

	once, err := fn("Hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Uryyb", once)

	twice, err := fn(once, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", twice)
}

func TestGeneratorContract(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("generateUUIDv4")
	require.True(t, ok)

	out, err := fn("", nil)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`), out)
}

func TestCaesarShiftOption(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("caesarEncrypt")
	require.True(t, ok)

	// Default shift is 3.
	out, err := fn("abc", nil)
	require.NoError(t, err)
	assert.Equal(t, "def", out)

	out, err = fn("abc", transform.Options{"shift": 1})
	require.NoError(t, err)
	assert.Equal(t, "bcd", out)

	// JSON numbers arrive as float64.
	out, err = fn("abc", transform.Options{"shift": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, "cde", out)
}

func TestCaesarEncryptDecryptRoundTrip(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	encrypt, _ := functions.Resolve("caesarEncrypt")
	decrypt, _ := functions.Resolve("caesarDecrypt")

	opts := transform.Options{"shift": 7}
	ciphered, err := encrypt("Attack at dawn", opts)
	require.NoError(t, err)
	plain, err := decrypt(ciphered, opts)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn", plain)
}

func TestVigenereRequiresKey(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("vigenereEncrypt")
	require.True(t, ok)

	_, err := fn("hello", nil)
	assert.Error(t, err)

	out, err := fn("HELLO", transform.Options{"key": "key"})
	require.NoError(t, err)
	assert.Equal(t, "RIJVS", out)
}

func TestHMACRequiresSecret(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("hmacSHA256")
	require.True(t, ok)

	_, err := fn("message", nil)
	assert.Error(t, err)

	out, err := fn("message", transform.Options{"key": "secret"})
	require.NoError(t, err)
	assert.Len(t, out, 64)
}

func TestParseColorReturnsJSON(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("parseColor")
	require.True(t, ok)

	out, err := fn("#336699", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hex":"#336699","r":51,"g":102,"b":153,"h":210,"s":50,"l":40}`, out)
}

func TestSortLinesOrderOption(t *testing.T) {
	functions := NewDefaultFunctionRegistry()
	fn, ok := functions.Resolve("sortLines")
	require.True(t, ok)

	out, err := fn("b\na\nc", nil)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", out)

	out, err = fn("b\na\nc", transform.Options{"order": "desc"})
	require.NoError(t, err)
	assert.Equal(t, "c\nb\na", out)
}

func TestApplyOptionDefaults(t *testing.T) {
	tools := NewDefaultToolRegistry()
	tool, ok := tools.GetToolByID("caesar-encrypt")
	require.True(t, ok)

	opts := ApplyOptionDefaults(tool, nil)
	assert.Equal(t, 3, opts["shift"])

	opts = ApplyOptionDefaults(tool, transform.Options{"shift": 10})
	assert.Equal(t, 10, opts["shift"])

	// Undeclared keys pass through.
	opts = ApplyOptionDefaults(tool, transform.Options{"extra": "x"})
	assert.Equal(t, "x", opts["extra"])
}
