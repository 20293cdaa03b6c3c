package catalog

// toolsBatch2 declares the hashing, formatter, color, generator and cipher
// tools.
var toolsBatch2 = []Tool{
	// Hashing
	{
		ID: "md5-hash", Name: "MD5 Hash", CategoryID: CategoryHashing, Slug: "md5-hash",
		Description: "Compute the MD5 digest of your text",
		TransformFn: "md5Hash", IsAsync: true,
		Keywords: []string{"md5", "hash", "digest", "checksum"},
	},
	{
		ID: "sha1-hash", Name: "SHA-1 Hash", CategoryID: CategoryHashing, Slug: "sha1-hash",
		Description: "Compute the SHA-1 digest of your text",
		TransformFn: "sha1Hash", IsAsync: true,
		Keywords: []string{"sha1", "sha", "hash", "digest"},
	},
	{
		ID: "sha256-hash", Name: "SHA-256 Hash", CategoryID: CategoryHashing, Slug: "sha256-hash",
		Description: "Compute the SHA-256 digest of your text",
		TransformFn: "sha256Hash", IsAsync: true,
		Keywords: []string{"sha256", "sha", "hash", "digest"},
	},
	{
		ID: "sha512-hash", Name: "SHA-512 Hash", CategoryID: CategoryHashing, Slug: "sha512-hash",
		Description: "Compute the SHA-512 digest of your text",
		TransformFn: "sha512Hash", IsAsync: true,
		Keywords: []string{"sha512", "sha", "hash", "digest"},
	},
	{
		ID: "hmac-sha256", Name: "HMAC-SHA256", CategoryID: CategoryHashing, Slug: "hmac-sha256",
		Description: "Compute an HMAC-SHA256 signature with a secret key",
		TransformFn: "hmacSHA256", IsAsync: true,
		Options: []OptionSpec{
			{Name: "key", Label: "Secret key", Kind: OptionText, Default: ""},
		},
		Keywords: []string{"hmac", "sha256", "signature", "secret"},
	},
	{
		ID: "crc32-checksum", Name: "CRC32 Checksum", CategoryID: CategoryHashing, Slug: "crc32-checksum",
		Description: "Compute the CRC-32 checksum of your text",
		TransformFn: "crc32Checksum",
		Keywords:    []string{"crc32", "checksum", "integrity"},
	},

	// Formatters
	{
		ID: "json-format", Name: "JSON Formatter", CategoryID: CategoryFormatters, Slug: "json-format",
		Description: "Pretty-print JSON with configurable indentation",
		TransformFn: "formatJSON",
		Options: []OptionSpec{
			{Name: "indent", Label: "Indent width", Kind: OptionNumber, Default: 2, Min: 1, Max: 8},
		},
		Keywords: []string{"json", "format", "pretty", "beautify"},
		InputPlaceholder: `{"name":"value"}`,
	},
	{
		ID: "json-minify", Name: "JSON Minifier", CategoryID: CategoryFormatters, Slug: "json-minify",
		Description: "Remove all insignificant whitespace from JSON",
		TransformFn: "minifyJSON",
		Keywords:    []string{"json", "minify", "compact", "compress"},
	},
	{
		ID: "sort-lines", Name: "Sort Lines", CategoryID: CategoryFormatters, Slug: "sort-lines",
		Description: "Sort the lines of your text alphabetically",
		TransformFn: "sortLines",
		Options: []OptionSpec{
			{Name: "order", Label: "Order", Kind: OptionSelect, Default: "asc", Choices: []string{"asc", "desc"}},
		},
		Keywords: []string{"sort", "lines", "alphabetical", "order"},
	},
	{
		ID: "unique-lines", Name: "Unique Lines", CategoryID: CategoryFormatters, Slug: "unique-lines",
		Description: "Remove duplicate lines, keeping first occurrences",
		TransformFn: "uniqueLines",
		Keywords:    []string{"unique", "lines", "deduplicate", "distinct"},
	},
	{
		ID: "reverse-lines", Name: "Reverse Lines", CategoryID: CategoryFormatters, Slug: "reverse-lines",
		Description: "Reverse the order of lines",
		TransformFn: "reverseLines", ReverseFn: "reverseLines",
		Keywords: []string{"reverse", "lines", "flip"},
	},
	{
		ID: "remove-extra-whitespace", Name: "Remove Extra Whitespace", CategoryID: CategoryFormatters, Slug: "remove-extra-whitespace",
		Description: "Collapse repeated spaces and trim the text",
		TransformFn: "removeExtraWhitespace",
		Keywords:    []string{"whitespace", "spaces", "trim", "clean"},
	},
	{
		ID: "number-lines", Name: "Number Lines", CategoryID: CategoryFormatters, Slug: "number-lines",
		Description: "Prefix each line with its line number",
		TransformFn: "numberLines",
		Keywords:    []string{"number", "lines", "enumerate"},
	},

	// Color Tools
	{
		ID: "hex-to-rgb", Name: "Hex to RGB", CategoryID: CategoryColors, Slug: "hex-to-rgb",
		Description: "Convert a hex color to rgb() notation",
		TransformFn: "hexToRGB", ReverseFn: "rgbToHex",
		Keywords: []string{"hex", "rgb", "color", "convert"},
		InputPlaceholder: "#336699",
	},
	{
		ID: "rgb-to-hex", Name: "RGB to Hex", CategoryID: CategoryColors, Slug: "rgb-to-hex",
		Description: "Convert an rgb() color to hex notation",
		TransformFn: "rgbToHex", ReverseFn: "hexToRGB",
		Keywords: []string{"rgb", "hex", "color", "convert"},
		InputPlaceholder: "rgb(51, 102, 153)",
	},
	{
		ID: "hex-to-hsl", Name: "Hex to HSL", CategoryID: CategoryColors, Slug: "hex-to-hsl",
		Description: "Convert a hex color to hsl() notation",
		TransformFn: "hexToHSL",
		Keywords:    []string{"hex", "hsl", "color", "convert"},
	},
	{
		ID: "parse-color", Name: "Color Parser", CategoryID: CategoryColors, Slug: "parse-color",
		Description: "Parse any hex or rgb() color into all representations",
		TransformFn: "parseColor",
		Keywords:    []string{"color", "parse", "inspect", "hsl", "rgb"},
		OutputPlaceholder: `{ "hex": "#336699", ... }`,
	},

	// Generators
	{
		ID: "uuid-v4", Name: "UUID v4", CategoryID: CategoryGenerators, Slug: "uuid-v4",
		Description: "Generate a random version 4 UUID",
		TransformFn: "generateUUIDv4", IsGenerator: true,
		Keywords: []string{"uuid", "guid", "identifier", "random"},
	},
	{
		ID: "random-password", Name: "Password Generator", CategoryID: CategoryGenerators, Slug: "random-password",
		Description: "Generate a strong random password",
		TransformFn: "generatePassword", IsGenerator: true,
		Options: []OptionSpec{
			{Name: "length", Label: "Length", Kind: OptionNumber, Default: 16, Min: 4, Max: 256},
		},
		Keywords: []string{"password", "random", "secure", "generator"},
	},
	{
		ID: "random-number", Name: "Random Number", CategoryID: CategoryGenerators, Slug: "random-number",
		Description: "Generate a random integer within a range",
		TransformFn: "generateRandomNumber", IsGenerator: true,
		Options: []OptionSpec{
			{Name: "min", Label: "Minimum", Kind: OptionNumber, Default: 0},
			{Name: "max", Label: "Maximum", Kind: OptionNumber, Default: 100},
		},
		Keywords: []string{"random", "number", "integer", "dice"},
	},
	{
		ID: "lorem-ipsum", Name: "Lorem Ipsum", CategoryID: CategoryGenerators, Slug: "lorem-ipsum",
		Description: "Generate lorem ipsum placeholder text",
		TransformFn: "generateLoremIpsum", IsGenerator: true,
		Options: []OptionSpec{
			{Name: "sentences", Label: "Sentences", Kind: OptionNumber, Default: 3, Min: 1, Max: 100},
		},
		Keywords: []string{"lorem", "ipsum", "placeholder", "filler"},
	},
	{
		ID: "random-hex-color", Name: "Random Color", CategoryID: CategoryGenerators, Slug: "random-hex-color",
		Description: "Generate a random hex color",
		TransformFn: "generateHexColor", IsGenerator: true,
		Keywords: []string{"random", "color", "hex", "generator"},
	},

	// Classical Ciphers
	{
		ID: "rot13", Name: "ROT13", CategoryID: CategoryCiphers, Slug: "rot13",
		Description: "Apply the self-inverse ROT13 letter substitution",
		TransformFn: "rot13", ReverseFn: "rot13",
		Keywords: []string{"rot13", "cipher", "substitution"},
		InputPlaceholder: "Hello",
	},
	{
		ID: "rot47", Name: "ROT47", CategoryID: CategoryCiphers, Slug: "rot47",
		Description: "Apply ROT47 over the printable ASCII range",
		TransformFn: "rot47", ReverseFn: "rot47",
		Keywords: []string{"rot47", "cipher", "substitution", "ascii"},
	},
	{
		ID: "caesar-encrypt", Name: "Caesar Encrypt", CategoryID: CategoryCiphers, Slug: "caesar-encrypt",
		Description: "Shift letters forward by a chosen amount",
		TransformFn: "caesarEncrypt", ReverseFn: "caesarDecrypt",
		Options: []OptionSpec{
			{Name: "shift", Label: "Shift", Kind: OptionNumber, Default: 3, Min: 1, Max: 25},
		},
		Keywords: []string{"caesar", "cipher", "shift", "encrypt"},
	},
	{
		ID: "caesar-decrypt", Name: "Caesar Decrypt", CategoryID: CategoryCiphers, Slug: "caesar-decrypt",
		Description: "Shift letters backward by a chosen amount",
		TransformFn: "caesarDecrypt", ReverseFn: "caesarEncrypt",
		Options: []OptionSpec{
			{Name: "shift", Label: "Shift", Kind: OptionNumber, Default: 3, Min: 1, Max: 25},
		},
		Keywords: []string{"caesar", "cipher", "shift", "decrypt"},
	},
	{
		ID: "atbash", Name: "Atbash", CategoryID: CategoryCiphers, Slug: "atbash",
		Description: "Mirror each letter within the alphabet (a becomes z)",
		TransformFn: "atbashCipher", ReverseFn: "atbashCipher",
		Keywords: []string{"atbash", "cipher", "mirror", "hebrew"},
	},
	{
		ID: "vigenere-encrypt", Name: "Vigenère Encrypt", CategoryID: CategoryCiphers, Slug: "vigenere-encrypt",
		Description: "Encrypt text with a repeating-key Vigenère cipher",
		TransformFn: "vigenereEncrypt", ReverseFn: "vigenereDecrypt",
		Options: []OptionSpec{
			{Name: "key", Label: "Key", Kind: OptionText, Default: ""},
		},
		Keywords: []string{"vigenere", "cipher", "key", "encrypt"},
	},
	{
		ID: "vigenere-decrypt", Name: "Vigenère Decrypt", CategoryID: CategoryCiphers, Slug: "vigenere-decrypt",
		Description: "Decrypt Vigenère-ciphered text with its key",
		TransformFn: "vigenereDecrypt", ReverseFn: "vigenereEncrypt",
		Options: []OptionSpec{
			{Name: "key", Label: "Key", Kind: OptionText, Default: ""},
		},
		Keywords: []string{"vigenere", "cipher", "key", "decrypt"},
	},
}
