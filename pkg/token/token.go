// Package token provides platform-aware lexical classification of SQL text.
//
// The classifier assigns every byte of the input to a token, including
// whitespace and comments, so the original text can be reconstructed
// losslessly by concatenating token texts. It never fails: anything it
// does not recognize degrades to KindIdent.
package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	// KindWhitespace is a run of spaces, tabs, and newlines.
	KindWhitespace Kind = iota
	// KindComment is a line comment (-- to end of line).
	KindComment
	// KindString is a quoted literal or quoted identifier ('...', "...", `...`).
	KindString
	// KindNumber is a numeric literal, with optional leading minus.
	KindNumber
	// KindOperator is one of the fixed comparison/arithmetic operators.
	KindOperator
	// KindLiteral is TRUE, FALSE, or NULL.
	KindLiteral
	// KindPlatformKeyword is a keyword specific to the given platform.
	KindPlatformKeyword
	// KindKeyword is a keyword common to all platforms.
	KindKeyword
	// KindPlatformFunction is a function name specific to the given platform.
	KindPlatformFunction
	// KindFunction is a function name common to all platforms.
	KindFunction
	// KindIdent is an identifier or any other unclassified text.
	KindIdent
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "whitespace"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindLiteral:
		return "literal"
	case KindPlatformKeyword:
		return "platform-keyword"
	case KindKeyword:
		return "keyword"
	case KindPlatformFunction:
		return "platform-function"
	case KindFunction:
		return "function"
	case KindIdent:
		return "identifier"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is a classified slice of the input.
type Token struct {
	Text   string
	Kind   Kind
	Line   int // 1-based line of the first byte
	Column int // 1-based column of the first byte
}

// IsWord reports whether the token is a word-shaped token (keyword,
// function, literal, or identifier) as opposed to whitespace, comments,
// strings, numbers, and operators.
func (t Token) IsWord() bool {
	switch t.Kind {
	case KindLiteral, KindKeyword, KindPlatformKeyword, KindFunction, KindPlatformFunction, KindIdent:
		return true
	}
	return false
}
