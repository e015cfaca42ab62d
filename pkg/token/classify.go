package token

import (
	"strings"

	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

// Classify tokenizes sql for the given platform. Every byte of the
// input is covered by exactly one token, so concatenating the token
// texts reproduces the input unchanged.
func Classify(sql string, p platform.Platform) []Token {
	s := &scanner{input: sql, platform: p, line: 1, col: 1}
	var tokens []Token
	for !s.eof() {
		tokens = append(tokens, s.next())
	}
	return tokens
}

// Reassemble joins token texts back into SQL text.
func Reassemble(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// scanner walks the input byte by byte, tracking line and column.
type scanner struct {
	input    string
	pos      int
	line     int // 1-based line of input[pos]
	col      int // 1-based column of input[pos]
	platform platform.Platform
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) ch() byte {
	return s.input[s.pos]
}

func (s *scanner) peek() byte {
	if s.pos+1 >= len(s.input) {
		return 0
	}
	return s.input[s.pos+1]
}

// advance moves past the current byte, updating line/col.
func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// next returns the next token. The input is never empty here.
func (s *scanner) next() Token {
	start := s.pos
	line, col := s.line, s.col
	ch := s.ch()

	emit := func(kind Kind) Token {
		return Token{Text: s.input[start:s.pos], Kind: kind, Line: line, Column: col}
	}

	switch {
	case isSpace(ch):
		for !s.eof() && isSpace(s.ch()) {
			s.advance()
		}
		return emit(KindWhitespace)

	case ch == '-' && s.peek() == '-':
		// Line comment runs to end of line; the newline itself joins
		// the following whitespace token.
		for !s.eof() && s.ch() != '\n' {
			s.advance()
		}
		return emit(KindComment)

	case ch == '\'' || ch == '"' || ch == '`':
		s.readQuoted(ch)
		return emit(KindString)

	case isDigit(ch) || (ch == '-' && isDigit(s.peek())):
		s.readNumber()
		return emit(KindNumber)
	}

	// Operators from the fixed set, longest match first.
	for _, op := range operators {
		if strings.HasPrefix(s.input[s.pos:], op) {
			for range op {
				s.advance()
			}
			return emit(KindOperator)
		}
	}

	if isWordStart(ch) {
		for !s.eof() && isWordChar(s.ch()) {
			s.advance()
		}
		return emit(s.classifyWord(s.input[start:s.pos]))
	}

	// Punctuation and anything else degrades to a single-byte identifier token.
	s.advance()
	return emit(KindIdent)
}

// readQuoted consumes a quoted region delimited by quote, honoring the
// doubled-quote escape. An unterminated literal runs to end of input.
func (s *scanner) readQuoted(quote byte) {
	s.advance() // opening quote
	for !s.eof() {
		if s.ch() == quote {
			if s.peek() == quote {
				s.advance()
				s.advance()
				continue
			}
			s.advance() // closing quote
			return
		}
		s.advance()
	}
}

// readNumber consumes an optional leading minus, digits, and an
// optional decimal part.
func (s *scanner) readNumber() {
	if s.ch() == '-' {
		s.advance()
	}
	for !s.eof() && isDigit(s.ch()) {
		s.advance()
	}
	if !s.eof() && s.ch() == '.' && s.pos+1 < len(s.input) && isDigit(s.peek()) {
		s.advance()
		for !s.eof() && isDigit(s.ch()) {
			s.advance()
		}
	}
}

// classifyWord applies the ordered word classification chain.
func (s *scanner) classifyWord(word string) Kind {
	lower := strings.ToLower(word)
	switch {
	case lower == "true" || lower == "false" || lower == "null":
		return KindLiteral
	case IsPlatformKeyword(lower, s.platform):
		return KindPlatformKeyword
	case IsCommonKeyword(lower):
		return KindKeyword
	case IsPlatformFunction(lower, s.platform):
		return KindPlatformFunction
	case IsCommonFunction(lower):
		return KindFunction
	default:
		return KindIdent
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWordChar(ch byte) bool {
	return isWordStart(ch) || isDigit(ch)
}
