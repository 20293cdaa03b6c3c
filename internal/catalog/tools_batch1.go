package catalog

// toolsBatch1 declares the text, case and encoding tools.
var toolsBatch1 = []Tool{
	// Text Utilities
	{
		ID: "reverse-text", Name: "Reverse Text", CategoryID: CategoryText, Slug: "reverse-text",
		Description: "Reverse the characters of your text",
		TransformFn: "reverseText", ReverseFn: "reverseText",
		Keywords: []string{"reverse", "mirror", "backwards"},
	},
	{
		ID: "count-characters", Name: "Character Count", CategoryID: CategoryText, Slug: "count-characters",
		Description: "Count the characters in your text",
		TransformFn: "countCharacters",
		Keywords:    []string{"count", "characters", "length"},
	},
	{
		ID: "count-words", Name: "Word Count", CategoryID: CategoryText, Slug: "count-words",
		Description: "Count the words in your text",
		TransformFn: "countWords",
		Keywords:    []string{"count", "words"},
	},
	{
		ID: "count-lines", Name: "Line Count", CategoryID: CategoryText, Slug: "count-lines",
		Description: "Count the lines in your text",
		TransformFn: "countLines",
		Keywords:    []string{"count", "lines", "rows"},
	},
	{
		ID: "slugify", Name: "Slugify", CategoryID: CategoryText, Slug: "slugify",
		Description: "Turn any text into a URL-safe slug",
		TransformFn: "slugify",
		Keywords:    []string{"slug", "url", "seo", "permalink"},
		InputPlaceholder: "My Blog Post Title!",
	},
	{
		ID: "truncate-text", Name: "Truncate Text", CategoryID: CategoryText, Slug: "truncate-text",
		Description: "Cut text to a maximum length with an ellipsis",
		TransformFn: "truncateText",
		Options: []OptionSpec{
			{Name: "length", Label: "Max length", Kind: OptionNumber, Default: 50, Min: 1, Max: 10000},
		},
		Keywords: []string{"truncate", "shorten", "ellipsis", "cut"},
	},
	{
		ID: "repeat-text", Name: "Repeat Text", CategoryID: CategoryText, Slug: "repeat-text",
		Description: "Repeat your text a chosen number of times",
		TransformFn: "repeatText",
		Options: []OptionSpec{
			{Name: "times", Label: "Repetitions", Kind: OptionNumber, Default: 2, Min: 1, Max: 1000},
		},
		Keywords: []string{"repeat", "duplicate", "multiply"},
	},
	{
		ID: "extract-numbers", Name: "Extract Numbers", CategoryID: CategoryText, Slug: "extract-numbers",
		Description: "Keep only the digits from your text",
		TransformFn: "extractNumbers",
		Keywords:    []string{"extract", "numbers", "digits", "filter"},
	},
	{
		ID: "extract-letters", Name: "Extract Letters", CategoryID: CategoryText, Slug: "extract-letters",
		Description: "Keep only the letters from your text",
		TransformFn: "extractLetters",
		Keywords:    []string{"extract", "letters", "alphabetic", "filter"},
	},
	{
		ID: "remove-accents", Name: "Remove Accents", CategoryID: CategoryText, Slug: "remove-accents",
		Description: "Strip accents and diacritics (é becomes e)",
		TransformFn: "removeAccents",
		Keywords:    []string{"accents", "diacritics", "normalize", "ascii"},
		InputPlaceholder: "Crème brûlée",
	},

	// Case Conversion
	{
		ID: "camel-case", Name: "camelCase", CategoryID: CategoryCase, Slug: "camel-case",
		Description: "Convert text to camelCase",
		TransformFn: "toCamelCase",
		Keywords:    []string{"camel", "case", "variable", "javascript"},
		InputPlaceholder: "hello world",
	},
	{
		ID: "pascal-case", Name: "PascalCase", CategoryID: CategoryCase, Slug: "pascal-case",
		Description: "Convert text to PascalCase",
		TransformFn: "toPascalCase",
		Keywords:    []string{"pascal", "case", "class"},
	},
	{
		ID: "snake-case", Name: "snake_case", CategoryID: CategoryCase, Slug: "snake-case",
		Description: "Convert text to snake_case",
		TransformFn: "toSnakeCase",
		Keywords:    []string{"snake", "case", "underscore", "python"},
	},
	{
		ID: "kebab-case", Name: "kebab-case", CategoryID: CategoryCase, Slug: "kebab-case",
		Description: "Convert text to kebab-case",
		TransformFn: "toKebabCase",
		Keywords:    []string{"kebab", "case", "hyphen", "css"},
	},
	{
		ID: "constant-case", Name: "CONSTANT_CASE", CategoryID: CategoryCase, Slug: "constant-case",
		Description: "Convert text to CONSTANT_CASE",
		TransformFn: "toConstantCase",
		Keywords:    []string{"constant", "case", "env", "macro"},
	},
	{
		ID: "title-case", Name: "Title Case", CategoryID: CategoryCase, Slug: "title-case",
		Description: "Capitalize Each Word Of Your Text",
		TransformFn: "toTitleCase",
		Keywords:    []string{"title", "case", "capitalize", "headline"},
	},
	{
		ID: "sentence-case", Name: "Sentence case", CategoryID: CategoryCase, Slug: "sentence-case",
		Description: "Capitalize the first letter of each sentence",
		TransformFn: "toSentenceCase",
		Keywords:    []string{"sentence", "case", "capitalize"},
	},
	{
		ID: "upper-case", Name: "UPPER CASE", CategoryID: CategoryCase, Slug: "upper-case",
		Description: "Convert text to upper case",
		TransformFn: "toUpperCase",
		Keywords:    []string{"upper", "case", "capitals", "shout"},
	},
	{
		ID: "lower-case", Name: "lower case", CategoryID: CategoryCase, Slug: "lower-case",
		Description: "Convert text to lower case",
		TransformFn: "toLowerCase",
		Keywords:    []string{"lower", "case", "small"},
	},
	{
		ID: "alternating-case", Name: "aLtErNaTiNg CaSe", CategoryID: CategoryCase, Slug: "alternating-case",
		Description: "Alternate the case of each letter",
		TransformFn: "toAlternatingCase",
		Keywords:    []string{"alternating", "case", "mocking", "spongebob"},
	},
	{
		ID: "inverse-case", Name: "iNVERSE cASE", CategoryID: CategoryCase, Slug: "inverse-case",
		Description: "Swap the case of every letter",
		TransformFn: "toInverseCase", ReverseFn: "toInverseCase",
		Keywords: []string{"inverse", "case", "swap", "toggle"},
	},

	// Encoding & Decoding
	{
		ID: "base64-encode", Name: "Base64 Encode", CategoryID: CategoryEncoding, Slug: "base64-encode",
		Description: "Encode text as Base64",
		TransformFn: "base64Encode", ReverseFn: "base64Decode",
		Keywords: []string{"base64", "encode", "binary"},
		InputPlaceholder: "hello",
	},
	{
		ID: "base64-decode", Name: "Base64 Decode", CategoryID: CategoryEncoding, Slug: "base64-decode",
		Description: "Decode Base64 back to text",
		TransformFn: "base64Decode", ReverseFn: "base64Encode",
		Keywords: []string{"base64", "decode"},
		InputPlaceholder: "aGVsbG8=",
	},
	{
		ID: "url-encode", Name: "URL Encode", CategoryID: CategoryEncoding, Slug: "url-encode",
		Description: "Percent-encode text for use in URLs",
		TransformFn: "urlEncode", ReverseFn: "urlDecode",
		Keywords: []string{"url", "encode", "percent", "escape"},
	},
	{
		ID: "url-decode", Name: "URL Decode", CategoryID: CategoryEncoding, Slug: "url-decode",
		Description: "Decode percent-encoded URLs",
		TransformFn: "urlDecode", ReverseFn: "urlEncode",
		Keywords: []string{"url", "decode", "percent", "unescape"},
	},
	{
		ID: "html-encode", Name: "HTML Encode", CategoryID: CategoryEncoding, Slug: "html-encode",
		Description: "Escape HTML special characters as entities",
		TransformFn: "htmlEncode", ReverseFn: "htmlDecode",
		Keywords: []string{"html", "encode", "entities", "escape"},
	},
	{
		ID: "html-decode", Name: "HTML Decode", CategoryID: CategoryEncoding, Slug: "html-decode",
		Description: "Resolve HTML entities back to characters",
		TransformFn: "htmlDecode", ReverseFn: "htmlEncode",
		Keywords: []string{"html", "decode", "entities", "unescape"},
	},
	{
		ID: "text-to-hex", Name: "Text to Hex", CategoryID: CategoryEncoding, Slug: "text-to-hex",
		Description: "Convert text to hexadecimal bytes",
		TransformFn: "textToHex", ReverseFn: "hexToText",
		Keywords: []string{"hex", "hexadecimal", "encode", "bytes"},
	},
	{
		ID: "hex-to-text", Name: "Hex to Text", CategoryID: CategoryEncoding, Slug: "hex-to-text",
		Description: "Convert hexadecimal bytes back to text",
		TransformFn: "hexToText", ReverseFn: "textToHex",
		Keywords: []string{"hex", "hexadecimal", "decode"},
	},
	{
		ID: "text-to-binary", Name: "Text to Binary", CategoryID: CategoryEncoding, Slug: "text-to-binary",
		Description: "Convert text to 8-bit binary groups",
		TransformFn: "textToBinary", ReverseFn: "binaryToText",
		Keywords: []string{"binary", "bits", "encode"},
	},
	{
		ID: "binary-to-text", Name: "Binary to Text", CategoryID: CategoryEncoding, Slug: "binary-to-text",
		Description: "Convert 8-bit binary groups back to text",
		TransformFn: "binaryToText", ReverseFn: "textToBinary",
		Keywords: []string{"binary", "bits", "decode"},
	},
	{
		ID: "morse-encode", Name: "Morse Encode", CategoryID: CategoryEncoding, Slug: "morse-encode",
		Description: "Convert text to morse code",
		TransformFn: "morseEncode", ReverseFn: "morseDecode",
		Keywords: []string{"morse", "code", "encode", "telegraph"},
	},
	{
		ID: "morse-decode", Name: "Morse Decode", CategoryID: CategoryEncoding, Slug: "morse-decode",
		Description: "Convert morse code back to text",
		TransformFn: "morseDecode", ReverseFn: "morseEncode",
		Keywords: []string{"morse", "code", "decode", "telegraph"},
		InputPlaceholder: ".... . .-.. .-.. ---",
	},
}
