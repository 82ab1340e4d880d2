package gedcom

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// lineGrammar is the participle grammar for one GEDCOM line.
// Examples: "0 HEAD", "0 @I1@ INDI", "1 NAME John /Smith/", "2 CONT"
//
//nolint:govet // participle grammar tags are not standard struct tags
type lineGrammar struct {
	Level int     `@Level`
	XRef  string  `@XRef?`
	Tag   string  `@Tag`
	Value *string `( Sep @Text? )?`
}

// lineLexer tokenizes a single line. After the tag it switches to the
// Value state, where everything past the one separator space is kept
// verbatim, spaces and '@' included.
var lineLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Level", Pattern: `[0-9]+`, Action: lexer.Push("Head")},
	},
	"Head": {
		{Name: "Space", Pattern: `[ \t]+`},
		{Name: "XRef", Pattern: `@[^@\s]+@`},
		{Name: "Tag", Pattern: `_?[A-Za-z0-9_]+`, Action: lexer.Push("Value")},
	},
	"Value": {
		{Name: "Sep", Pattern: ` `},
		{Name: "Text", Pattern: `[^\r\n]+`},
	},
})

// lineParser is the participle parser for GEDCOM lines.
var lineParser = participle.MustBuild[lineGrammar](
	participle.Lexer(lineLexer),
	participle.Elide("Space"),
)
