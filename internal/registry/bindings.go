package registry

import (
	"textforge/internal/transform"
)

// NewDefaultFunctionRegistry binds every transformFn name declared in the
// tool catalog to its implementation. The catalog references behavior purely
// by these string names; this table is the single place where data meets
// code. Completeness against the catalog is enforced by tests.
func NewDefaultFunctionRegistry() *FunctionRegistry {
	r := NewFunctionRegistry()

	// Text utilities
	r.Register("reverseText", Plain(transform.ReverseText))
	r.Register("countCharacters", Plain(transform.CountCharacters))
	r.Register("countWords", Plain(transform.CountWords))
	r.Register("countLines", Plain(transform.CountLines))
	r.Register("slugify", Plain(transform.Slugify))
	r.Register("truncateText", FallibleWithIntOption(transform.TruncateText, "length", 50))
	r.Register("repeatText", FallibleWithIntOption(transform.RepeatText, "times", 2))
	r.Register("extractNumbers", Plain(transform.ExtractNumbers))
	r.Register("extractLetters", Plain(transform.ExtractLetters))
	r.Register("removeAccents", Plain(transform.RemoveAccents))

	// Case conversion
	r.Register("toCamelCase", Plain(transform.ToCamelCase))
	r.Register("toPascalCase", Plain(transform.ToPascalCase))
	r.Register("toSnakeCase", Plain(transform.ToSnakeCase))
	r.Register("toKebabCase", Plain(transform.ToKebabCase))
	r.Register("toConstantCase", Plain(transform.ToConstantCase))
	r.Register("toTitleCase", Plain(transform.ToTitleCase))
	r.Register("toSentenceCase", Plain(transform.ToSentenceCase))
	r.Register("toUpperCase", Plain(transform.ToUpperCase))
	r.Register("toLowerCase", Plain(transform.ToLowerCase))
	r.Register("toAlternatingCase", Plain(transform.ToAlternatingCase))
	r.Register("toInverseCase", Plain(transform.ToInverseCase))

	// Encoding & decoding
	r.Register("base64Encode", Plain(transform.Base64Encode))
	r.Register("base64Decode", Fallible(transform.Base64Decode))
	r.Register("urlEncode", Plain(transform.URLEncode))
	r.Register("urlDecode", Fallible(transform.URLDecode))
	r.Register("htmlEncode", Plain(transform.HTMLEncode))
	r.Register("htmlDecode", Plain(transform.HTMLDecode))
	r.Register("textToHex", Plain(transform.TextToHex))
	r.Register("hexToText", Fallible(transform.HexToText))
	r.Register("textToBinary", Plain(transform.TextToBinary))
	r.Register("binaryToText", Fallible(transform.BinaryToText))
	r.Register("morseEncode", Plain(transform.MorseEncode))
	r.Register("morseDecode", Fallible(transform.MorseDecode))

	// Hashing
	r.Register("md5Hash", Plain(transform.MD5Hash))
	r.Register("sha1Hash", Plain(transform.SHA1Hash))
	r.Register("sha256Hash", Plain(transform.SHA256Hash))
	r.Register("sha512Hash", Plain(transform.SHA512Hash))
	r.Register("hmacSHA256", WithKeyOption(transform.HMACSHA256, "key"))
	r.Register("crc32Checksum", Plain(transform.CRC32Checksum))

	// Formatters
	r.Register("formatJSON", FallibleWithIntOption(transform.FormatJSON, "indent", 2))
	r.Register("minifyJSON", Fallible(transform.MinifyJSON))
	r.Register("sortLines", WithStringOption(transform.SortLines, "order", "asc"))
	r.Register("uniqueLines", Plain(transform.UniqueLines))
	r.Register("reverseLines", Plain(transform.ReverseLines))
	r.Register("removeExtraWhitespace", Plain(transform.RemoveExtraWhitespace))
	r.Register("numberLines", Plain(transform.NumberLines))

	// Color tools
	r.Register("hexToRGB", Fallible(transform.HexToRGB))
	r.Register("rgbToHex", Fallible(transform.RGBToHex))
	r.Register("hexToHSL", Fallible(transform.HexToHSL))
	r.Register("parseColor", Structured(transform.ParseColor))

	// Generators
	r.Register("generateUUIDv4", Generator(transform.GenerateUUIDv4))
	r.Register("generatePassword", GeneratorWithIntOption(transform.GeneratePassword, "length", 16))
	r.Register("generateRandomNumber", GeneratorWithRange(transform.GenerateRandomNumber, "min", 0, "max", 100))
	r.Register("generateLoremIpsum", GeneratorWithIntOption(transform.GenerateLoremIpsum, "sentences", 3))
	r.Register("generateHexColor", Generator(transform.GenerateHexColor))

	// Classical ciphers
	r.Register("rot13", Plain(transform.Rot13))
	r.Register("rot47", Plain(transform.Rot47))
	r.Register("caesarEncrypt", WithIntOption(transform.Caesar, "shift", 3))
	r.Register("caesarDecrypt", WithIntOption(transform.CaesarDecrypt, "shift", 3))
	r.Register("atbashCipher", Plain(transform.Atbash))
	r.Register("vigenereEncrypt", WithKeyOption(transform.VigenereEncrypt, "key"))
	r.Register("vigenereDecrypt", WithKeyOption(transform.VigenereDecrypt, "key"))

	return r
}
