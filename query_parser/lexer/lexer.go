package lex

import (
	"strings"
)

type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

func New(input string) *Lexer {
	l := &Lexer{
		input:   input,
		pos:     0,
		readPos: 0,
		ch:      0,
	}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpaces()

	switch l.ch {
	case '"':
		str, ok := l.readString()
		if !ok {
			return Token{Kind: INVALID, Value: str}
		}
		return Token{Kind: STRING, Value: str}
	case 0:
		return Token{Kind: END, Value: ""}
	case '-':
		if isNumber(l.peekChar()) {
			return Token{Kind: INT, Value: l.readNumber()}
		}
		tok := Token{Kind: INVALID, Value: string(l.ch)}
		l.readChar()
		return tok
	default:
		if isLetter(l.ch) {
			str := l.keyIdentLookup() // str could be a keyword or an identifier
			return Token{Kind: KeyIdentKind(str), Value: str}
		} else if isNumber(l.ch) {
			return Token{Kind: INT, Value: l.readNumber()}
		} else {
			tok := Token{Kind: INVALID, Value: string(l.ch)}
			l.readChar()
			return tok
		}
	}
}

// Tokens lexes the whole input, END token included.
func (l *Lexer) Tokens() []Token {
	tokens := []Token{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == END {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhiteSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isNumber(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// bare values such as abc-12 or user_1 lex as one identifier
func isIdentTail(ch byte) bool {
	return isLetter(ch) || isNumber(ch) || ch == '-' || ch == '.'
}

func (l *Lexer) keyIdentLookup() string {
	start := l.pos
	for isIdentTail(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for isNumber(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString returns the text between double quotes. \" and \\ escape a
// quote and a backslash. ok is false when the closing quote is missing.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // read start " of string
	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == 0 {
			return sb.String(), false
		}
		if l.ch == '\\' && (l.peekChar() == '"' || l.peekChar() == '\\') {
			l.readChar()
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // read end " of string
	return sb.String(), true
}

func KeyIdentKind(str string) TokenKind {
	switch strings.ToUpper(str) {
	case "INSERT", "SET", "PUT":
		return INSERT
	case "GET", "LOOKUP":
		return GET
	case "DELETE", "DEL":
		return DELETE
	case "DUMP", "PRINT":
		return DUMP
	case "CHECK":
		return CHECK
	case "STATS":
		return STATS
	case "EXIT", "QUIT":
		return EXIT
	default:
		return IDENT
	}
}
