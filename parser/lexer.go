package parser

import (
	"unicode"
)

const eolText = "<eol>"

// Lexer splits a single physical source line into tokens. Columns count
// runes from zero; lines count from one.
type Lexer struct {
	src  []rune
	line int
	pos  int
}

func NewLexer(text string, line int) *Lexer {
	return &Lexer{src: []rune(text), line: line}
}

// Tokenize lexes text completely. The result always ends in exactly one
// EOL token; lexical errors are returned in place as KindError tokens.
func Tokenize(text string, line int) []Token {
	lx := NewLexer(text, line)
	toks := []Token{}
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == KindEOL {
			return toks
		}
	}
}

func (lx *Lexer) peek() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) atEnd() bool {
	return lx.pos >= len(lx.src)
}

func (lx *Lexer) tok(kind Kind, text string, col int) Token {
	return Token{Kind: kind, Text: text, Line: lx.line, Column: col}
}

// Next returns the following token. Once EOL has been returned every
// further call returns EOL again.
func (lx *Lexer) Next() Token {
	for !lx.atEnd() && unicode.IsSpace(lx.peek()) {
		lx.pos++
	}
	if lx.atEnd() {
		return lx.tok(KindEOL, eolText, len(lx.src))
	}

	start := lx.pos
	r := lx.peek()
	switch {
	case isIdentStart(r):
		for !lx.atEnd() && isIdentPart(lx.peek()) {
			lx.pos++
		}
		text := string(lx.src[start:lx.pos])
		if kind, ok := keywords[text]; ok {
			return lx.tok(kind, text, start)
		}
		return lx.tok(KindIdent, text, start)
	case isDigit(r):
		for !lx.atEnd() && isDigit(lx.peek()) {
			lx.pos++
		}
		return lx.tok(KindInt, string(lx.src[start:lx.pos]), start)
	case r == '"':
		return lx.lexString(start)
	}

	lx.pos++
	if kind, ok := symbols[r]; ok {
		return lx.tok(kind, string(r), start)
	}
	return lx.tok(KindError, "invalid character: '"+string(r)+"'", start)
}

func (lx *Lexer) lexString(start int) Token {
	lx.pos++ // opening quote
	for !lx.atEnd() && lx.peek() != '"' {
		if lx.peek() == '\n' {
			lx.pos = len(lx.src)
			return lx.tok(KindError, "line end in string literal", start)
		}
		lx.pos++
	}
	if lx.atEnd() {
		return lx.tok(KindError, "unclosed string literal", start)
	}
	text := string(lx.src[start+1 : lx.pos])
	lx.pos++ // closing quote
	return lx.tok(KindString, text, start)
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
