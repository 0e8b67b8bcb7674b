package expr

import (
	"bytesize/core/quantity"
	"bytesize/internal/errors"
)

// Resolver turns one literal lexeme into a dimensioned value. offset is
// the lexeme's byte offset within the whole input; implementations
// anchor their errors with it so messages point at the right substring.
type Resolver func(lexeme string, offset int) (quantity.Value, *errors.Error)

// evaluator is a recursive-descent interpreter over a token stream
type evaluator struct {
	tokens  []Token
	pos     int
	resolve Resolver
}

// Evaluate parses and computes an expression over literals. Dimensional
// consistency is enforced at every arithmetic step; whether the final
// value carries the dimension the caller wanted is the caller's check,
// not Evaluate's.
func Evaluate(tokens []Token, resolve Resolver) (quantity.Value, *errors.Error) {
	ev := &evaluator{tokens: tokens, resolve: resolve}
	v, err := ev.expression()
	if err != nil {
		return quantity.Value{}, err
	}
	if tok := ev.peek(); tok.Kind != KindEOF {
		return quantity.Value{}, errors.Newf(errors.TypeMalformedLiteral,
			"unexpected token %q in expression", tok.Lexeme).AtPosition(tok.StartOffset)
	}
	return v, nil
}

func (ev *evaluator) peek() Token {
	return ev.tokens[ev.pos]
}

func (ev *evaluator) next() Token {
	tok := ev.tokens[ev.pos]
	if tok.Kind != KindEOF {
		ev.pos++
	}
	return tok
}

func (ev *evaluator) expression() (quantity.Value, *errors.Error) {
	left, err := ev.term()
	if err != nil {
		return quantity.Value{}, err
	}
	for {
		op := ev.peek()
		if op.Kind != KindPlus && op.Kind != KindMinus {
			return left, nil
		}
		ev.next()
		right, err := ev.term()
		if err != nil {
			return quantity.Value{}, err
		}
		var qerr *errors.Error
		if op.Kind == KindPlus {
			left, qerr = left.Add(right)
		} else {
			left, qerr = left.Sub(right)
		}
		if qerr != nil {
			return quantity.Value{}, qerr.AtPosition(op.StartOffset)
		}
	}
}

func (ev *evaluator) term() (quantity.Value, *errors.Error) {
	left, err := ev.factor()
	if err != nil {
		return quantity.Value{}, err
	}
	for {
		op := ev.peek()
		if op.Kind != KindStar && op.Kind != KindSlash {
			return left, nil
		}
		ev.next()
		right, err := ev.factor()
		if err != nil {
			return quantity.Value{}, err
		}
		var qerr *errors.Error
		if op.Kind == KindStar {
			left, qerr = left.Mul(right)
		} else {
			left, qerr = left.Div(right)
		}
		if qerr != nil {
			return quantity.Value{}, qerr.AtPosition(op.StartOffset)
		}
	}
}

func (ev *evaluator) factor() (quantity.Value, *errors.Error) {
	tok := ev.peek()
	switch tok.Kind {
	case KindMinus:
		ev.next()
		v, err := ev.factor()
		if err != nil {
			return quantity.Value{}, err
		}
		return v.Neg(), nil
	case KindLParen:
		ev.next()
		v, err := ev.expression()
		if err != nil {
			return quantity.Value{}, err
		}
		if closing := ev.peek(); closing.Kind != KindRParen {
			return quantity.Value{}, errors.Newf(errors.TypeMalformedLiteral,
				"missing closing parenthesis").AtPosition(closing.StartOffset)
		}
		ev.next()
		return v, nil
	case KindLiteral:
		ev.next()
		return ev.resolve(tok.Lexeme, tok.StartOffset)
	default:
		return quantity.Value{}, errors.Newf(errors.TypeMalformedLiteral,
			"expected a literal, got %q", tok.Lexeme).AtPosition(tok.StartOffset)
	}
}
