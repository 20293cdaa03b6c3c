package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello world", "helloWorld"},
		{"Hello World", "helloWorld"},
		{"hello_world", "helloWorld"},
		{"hello-world", "helloWorld"},
		{"helloWorld", "helloWorld"},
		{"HTTPServer example", "httpServerExample"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToCamelCase(tc.in), "input %q", tc.in)
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "HelloWorld", ToPascalCase("hello world"))
	assert.Equal(t, "HelloWorld", ToPascalCase("hello_world"))
}

func TestToSnakeCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello world", "hello_world"},
		{"helloWorld", "hello_world"},
		{"Hello-World", "hello_world"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToSnakeCase(tc.in), "input %q", tc.in)
	}
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "hello-world", ToKebabCase("Hello World"))
	assert.Equal(t, "hello-world", ToKebabCase("helloWorld"))
}

func TestToConstantCase(t *testing.T) {
	assert.Equal(t, "HELLO_WORLD", ToConstantCase("hello world"))
	assert.Equal(t, "MAX_RETRY_COUNT", ToConstantCase("maxRetryCount"))
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Hello World", ToTitleCase("hello world"))
	assert.Equal(t, "Hello World", ToTitleCase("HELLO WORLD"))
}

func TestToSentenceCase(t *testing.T) {
	assert.Equal(t, "Hello. World!", ToSentenceCase("hello. world!"))
	assert.Equal(t, "One. Two? Three", ToSentenceCase("ONE. TWO? THREE"))
}

func TestToAlternatingCase(t *testing.T) {
	assert.Equal(t, "hElLo", ToAlternatingCase("hello"))
	assert.Equal(t, "hElLo WoRlD", ToAlternatingCase("hello world"))
}

func TestToInverseCase(t *testing.T) {
	assert.Equal(t, "hELLO wORLD", ToInverseCase("Hello World"))
	// Self-inverse.
	assert.Equal(t, "Hello", ToInverseCase(ToInverseCase("Hello")))
}

func TestUpperLower(t *testing.T) {
	assert.Equal(t, "HELLO", ToUpperCase("Hello"))
	assert.Equal(t, "hello", ToLowerCase("Hello"))
}
