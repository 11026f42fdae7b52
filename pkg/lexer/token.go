package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindIllegal

	// Literals
	KindIdent
	KindInt
	KindString

	// Operators
	KindAssign   // =
	KindPlus     // +
	KindMinus    // -
	KindBang     // !
	KindAsterisk // *
	KindSlash    // /
	KindLt       // <
	KindGt       // >
	KindEq       // ==
	KindNotEq    // !=

	// Delimiters
	KindComma     // ,
	KindSemicolon // ;
	KindColon     // :
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }
	KindLBracket  // [
	KindRBracket  // ]

	// Keywords
	KindAtom
	KindMolecule
	KindReaction
	KindTrue
	KindFalse
	KindIf
	KindElse
	KindProduce

	// Malformed literals. Emitted as ordinary tokens so the scan
	// continues past them.
	KindBadString // unterminated string literal
	KindBadInt    // integer literal out of range
)

var kindNames = [...]string{
	KindEOF:       "EOF",
	KindIllegal:   "Illegal",
	KindIdent:     "Ident",
	KindInt:       "Int",
	KindString:    "String",
	KindAssign:    "Assign",
	KindPlus:      "Plus",
	KindMinus:     "Minus",
	KindBang:      "Bang",
	KindAsterisk:  "Asterisk",
	KindSlash:     "Slash",
	KindLt:        "Lt",
	KindGt:        "Gt",
	KindEq:        "Eq",
	KindNotEq:     "NotEq",
	KindComma:     "Comma",
	KindSemicolon: "Semicolon",
	KindColon:     "Colon",
	KindLParen:    "LParen",
	KindRParen:    "RParen",
	KindLBrace:    "LBrace",
	KindRBrace:    "RBrace",
	KindLBracket:  "LBracket",
	KindRBracket:  "RBracket",
	KindAtom:      "Atom",
	KindMolecule:  "Molecule",
	KindReaction:  "Reaction",
	KindTrue:      "True",
	KindFalse:     "False",
	KindIf:        "If",
	KindElse:      "Else",
	KindProduce:   "Produce",
	KindBadString: "BadString",
	KindBadInt:    "BadInt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token represents one lexical unit. Literal holds the source text for
// identifiers, strings and integer runs; Int holds the decoded value and
// is only meaningful when Kind is KindInt.
type Token struct {
	Kind    Kind
	Literal string
	Int     int64
}

func (t Token) String() string {
	switch t.Kind {
	case KindIdent:
		return fmt.Sprintf("Ident(%q)", t.Literal)
	case KindInt:
		return fmt.Sprintf("Int(%d)", t.Int)
	case KindString:
		return fmt.Sprintf("String(%q)", t.Literal)
	case KindBadString:
		return fmt.Sprintf("BadString(%q)", t.Literal)
	case KindBadInt:
		return fmt.Sprintf("BadInt(%q)", t.Literal)
	}
	return t.Kind.String()
}

var keywords = map[string]Kind{
	"atom":     KindAtom,
	"molecule": KindMolecule,
	"reaction": KindReaction,
	"true":     KindTrue,
	"false":    KindFalse,
	"if":       KindIf,
	"else":     KindElse,
	"produce":  KindProduce,
}

// LookupIdent classifies an identifier run as a keyword or a plain
// identifier. Keywords match by exact spelling only: "atoms" is an
// identifier, never Atom followed by "s".
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdent
}
