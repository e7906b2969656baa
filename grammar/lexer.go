package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CircuitLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Gate names and keywords
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Wire indices and gate parameters (parameters may be signed)
		{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`, Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[(),;]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
