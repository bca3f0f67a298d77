// Package token defines the lexical token kinds and the Token value the
// lexer produces and the parser consumes.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// data-type tags
	VOID
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	STRING
	CHARACTER

	// literal tags
	NUM
	FLT
	STR
	CHAR

	IDENTIFIER

	// punctuation
	ASSIGN
	OPEN_PAREN
	CLOSE_PAREN
	COMMA
	SEMICOLON
	OPEN_BRACE
	CLOSE_BRACE
	DOT
	COLON

	// operators
	PLUS
	MINUS
	MULT
	DIV
	MOD

	// comparisons
	EQ
	NEQ
	GT
	GTE
	LT
	LTE

	// keywords
	IF
	ELSE
	WHILE
	RETURN
	IMPORT
	URCL_BLOCK
)

var kindNames = map[Kind]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	VOID:        "VOID",
	INT8:        "INT8",
	INT16:       "INT16",
	INT32:       "INT32",
	INT64:       "INT64",
	UINT8:       "UINT8",
	UINT16:      "UINT16",
	UINT32:      "UINT32",
	UINT64:      "UINT64",
	FLOAT32:     "FLOAT32",
	FLOAT64:     "FLOAT64",
	STRING:      "STRING",
	CHARACTER:   "CHARACTER",
	NUM:         "NUM",
	FLT:         "FLT",
	STR:         "STR",
	CHAR:        "CHAR",
	IDENTIFIER:  "IDENTIFIER",
	ASSIGN:      "ASSIGN",
	OPEN_PAREN:  "OPEN_PAREN",
	CLOSE_PAREN: "CLOSE_PAREN",
	COMMA:       "COMMA",
	SEMICOLON:   "SEMICOLON",
	OPEN_BRACE:  "OPEN_BRACE",
	CLOSE_BRACE: "CLOSE_BRACE",
	DOT:         "DOT",
	COLON:       "COLON",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	MULT:        "MULT",
	DIV:         "DIV",
	MOD:         "MOD",
	EQ:          "EQ",
	NEQ:         "NEQ",
	GT:          "GT",
	GTE:         "GTE",
	LT:          "LT",
	LTE:         "LTE",
	IF:          "IF",
	ELSE:        "ELSE",
	WHILE:       "WHILE",
	RETURN:      "RETURN",
	IMPORT:      "IMPORT",
	URCL_BLOCK:  "URCL_BLOCK",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved spellings (including data-type keywords) to their
// Kind. Anything not present here that matches an identifier pattern lexes
// as IDENTIFIER.
var keywords = map[string]Kind{
	"void":    VOID,
	"int8":    INT8,
	"int16":   INT16,
	"int32":   INT32,
	"int64":   INT64,
	"uint8":   UINT8,
	"uint16":  UINT16,
	"uint32":  UINT32,
	"uint64":  UINT64,
	"float32": FLOAT32,
	"float64": FLOAT64,
	"string":  STRING,
	"char":    CHARACTER,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"return":  RETURN,
	"import":  IMPORT,
	"urcl":    URCL_BLOCK,
}

// LookupIdentifier returns the keyword Kind for text if it is reserved,
// otherwise IDENTIFIER.
func LookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return IDENTIFIER
}

// IsTypeKeyword reports whether kind names a base type usable in a `type`
// production (the data-type tags of §3, including VOID).
func IsTypeKeyword(kind Kind) bool {
	switch kind {
	case VOID, INT8, INT16, INT32, INT64, UINT8, UINT16, UINT32, UINT64,
		FLOAT32, FLOAT64, STRING, CHARACTER:
		return true
	default:
		return false
	}
}

// Token is a single lexical unit: its kind, literal text, source line, and
// the byte-offset span of that text within its line.
type Token struct {
	Line  int
	Kind  Kind
	Text  string
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d-%d", t.Kind, t.Text, t.Line, t.Start, t.End)
}
