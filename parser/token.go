package parser

import "fmt"

type Kind int

const (
	KindEOL Kind = iota
	KindError
	KindIdent
	KindInt
	KindString

	// keywords
	KindLet
	KindPrint
	KindInput
	KindFor
	KindTo
	KindNext
	KindIf
	KindThen
	KindGoto
	KindGosub
	KindReturn
	KindEnd

	// symbols
	KindEq
	KindComma
	KindSemicolon
	KindColon
	KindPlus
	KindMinus
	KindTimes
	KindDiv
	KindLt
	KindGt
	KindLParen
	KindRParen
)

var kindNames = [...]string{
	KindEOL:       "EOL",
	KindError:     "ERROR",
	KindIdent:     "IDENTIFIER",
	KindInt:       "INTEGER_LITERAL",
	KindString:    "STRING_LITERAL",
	KindLet:       "LET",
	KindPrint:     "PRINT",
	KindInput:     "INPUT",
	KindFor:       "FOR",
	KindTo:        "TO",
	KindNext:      "NEXT",
	KindIf:        "IF",
	KindThen:      "THEN",
	KindGoto:      "GOTO",
	KindGosub:     "GOSUB",
	KindReturn:    "RETURN",
	KindEnd:       "END",
	KindEq:        "EQ",
	KindComma:     "COMMA",
	KindSemicolon: "SEMICOLON",
	KindColon:     "COLON",
	KindPlus:      "PLUS",
	KindMinus:     "MINUS",
	KindTimes:     "TIMES",
	KindDiv:       "DIV",
	KindLt:        "LT",
	KindGt:        "GT",
	KindLParen:    "L_PAREN",
	KindRParen:    "R_PAREN",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords are matched case-sensitively.
var keywords = map[string]Kind{
	"let":    KindLet,
	"print":  KindPrint,
	"input":  KindInput,
	"for":    KindFor,
	"to":     KindTo,
	"next":   KindNext,
	"if":     KindIf,
	"then":   KindThen,
	"goto":   KindGoto,
	"gosub":  KindGosub,
	"return": KindReturn,
	"end":    KindEnd,
}

var symbols = map[rune]Kind{
	'=': KindEq,
	',': KindComma,
	';': KindSemicolon,
	':': KindColon,
	'+': KindPlus,
	'-': KindMinus,
	'*': KindTimes,
	'/': KindDiv,
	'<': KindLt,
	'>': KindGt,
	'(': KindLParen,
	')': KindRParen,
}

// Token is one lexical unit. For KindError the text is the diagnostic.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d:%d", t.Kind, t.Text, t.Line, t.Column)
}
