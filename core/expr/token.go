// Package expr tokenizes and evaluates size/rate arithmetic expressions.
//
// The grammar is classic precedence-climbing arithmetic over literals:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := '-' factor | '(' expression ')' | literal
//
// Literal resolution is delegated to a caller-supplied callback so the
// evaluator stays independent of the three literal grammars.
package expr

import "strings"

// Kind classifies a token
type Kind int

const (
	// KindLiteral is a maximal run of non-operator characters,
	// whitespace-trimmed; "1 GB" is one literal token
	KindLiteral Kind = iota
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
	KindEOF
)

// Token is one lexical element of an expression
type Token struct {
	Kind   Kind
	Lexeme string

	// StartOffset is the byte offset of the token within the original
	// input, used to anchor error positions
	StartOffset int
}

const operatorChars = "+-*/()"

// Tokenize splits an input string into literal and operator tokens,
// terminated by an EOF token. Whitespace between tokens is skipped; a
// literal keeps its interior whitespace so "512 MiB" stays one token.
func Tokenize(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			i++
			continue
		}
		if idx := strings.IndexByte(operatorChars, c); idx >= 0 {
			tokens = append(tokens, Token{
				Kind:        operatorKind(c),
				Lexeme:      string(c),
				StartOffset: i,
			})
			i++
			continue
		}
		start := i
		for i < len(input) && strings.IndexByte(operatorChars, input[i]) < 0 {
			i++
		}
		lexeme := strings.TrimRight(input[start:i], " \t\n\r")
		if lexeme != "" {
			tokens = append(tokens, Token{
				Kind:        KindLiteral,
				Lexeme:      lexeme,
				StartOffset: start,
			})
		}
	}
	tokens = append(tokens, Token{Kind: KindEOF, StartOffset: len(input)})
	return tokens
}

func operatorKind(c byte) Kind {
	switch c {
	case '+':
		return KindPlus
	case '-':
		return KindMinus
	case '*':
		return KindStar
	case '/':
		return KindSlash
	case '(':
		return KindLParen
	default:
		return KindRParen
	}
}
