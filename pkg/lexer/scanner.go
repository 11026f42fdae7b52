package lexer

import "strconv"

// Scanner performs lexical analysis on AtomScript source. It is a plain
// value over an immutable input buffer; create one per input and discard
// it after Next returns KindEOF.
type Scanner struct {
	source       []byte
	position     int  // index of ch
	readPosition int  // index after ch
	ch           byte // current byte, 0 past end of input
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	s := &Scanner{source: source}
	s.readChar()
	return s
}

// Next returns the next token from the source, advancing the cursor.
// Lexical errors (illegal characters, unterminated strings, out-of-range
// integers) are returned as tokens, never as faults; the scan always
// continues on the following character. After the end of input every call
// returns KindEOF.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	var tok Token
	switch s.ch {
	case 0:
		return Token{Kind: KindEOF}
	case '=':
		if s.peekChar() == '=' {
			s.readChar()
			tok = Token{Kind: KindEq}
		} else {
			tok = Token{Kind: KindAssign}
		}
	case '!':
		if s.peekChar() == '=' {
			s.readChar()
			tok = Token{Kind: KindNotEq}
		} else {
			tok = Token{Kind: KindBang}
		}
	case '"':
		tok = s.readString()
	case '+':
		tok = Token{Kind: KindPlus}
	case '-':
		tok = Token{Kind: KindMinus}
	case '*':
		tok = Token{Kind: KindAsterisk}
	case '/':
		tok = Token{Kind: KindSlash}
	case '<':
		tok = Token{Kind: KindLt}
	case '>':
		tok = Token{Kind: KindGt}
	case ',':
		tok = Token{Kind: KindComma}
	case ';':
		tok = Token{Kind: KindSemicolon}
	case ':':
		tok = Token{Kind: KindColon}
	case '(':
		tok = Token{Kind: KindLParen}
	case ')':
		tok = Token{Kind: KindRParen}
	case '{':
		tok = Token{Kind: KindLBrace}
	case '}':
		tok = Token{Kind: KindRBrace}
	case '[':
		tok = Token{Kind: KindLBracket}
	case ']':
		tok = Token{Kind: KindRBracket}
	default:
		if isLetter(s.ch) {
			lit := s.readIdentifier()
			if kind := LookupIdent(lit); kind != KindIdent {
				return Token{Kind: kind}
			}
			return Token{Kind: KindIdent, Literal: lit}
		}
		if isDigit(s.ch) {
			return s.readNumber()
		}
		tok = Token{Kind: KindIllegal}
	}

	s.readChar()
	return tok
}

func (s *Scanner) readChar() {
	if s.readPosition >= len(s.source) {
		s.ch = 0
	} else {
		s.ch = s.source[s.readPosition]
	}
	s.position = s.readPosition
	s.readPosition++
}

func (s *Scanner) peekChar() byte {
	if s.readPosition >= len(s.source) {
		return 0
	}
	return s.source[s.readPosition]
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

func (s *Scanner) readIdentifier() string {
	start := s.position
	for isLetter(s.ch) || isDigit(s.ch) {
		s.readChar()
	}
	return string(s.source[start:s.position])
}

func (s *Scanner) readNumber() Token {
	start := s.position
	for isDigit(s.ch) {
		s.readChar()
	}
	lit := string(s.source[start:s.position])
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		// Pure digit runs only fail on range.
		return Token{Kind: KindBadInt, Literal: lit}
	}
	return Token{Kind: KindInt, Literal: lit, Int: n}
}

// readString scans a string literal verbatim, no escape processing. The
// cursor is left on the closing quote; reaching end of input first yields
// KindBadString carrying the partial content.
func (s *Scanner) readString() Token {
	start := s.position + 1
	for {
		s.readChar()
		if s.ch == '"' {
			return Token{Kind: KindString, Literal: string(s.source[start:s.position])}
		}
		if s.ch == 0 {
			return Token{Kind: KindBadString, Literal: string(s.source[start:s.position])}
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
