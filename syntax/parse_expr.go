package syntax

import (
	"decafc/common"
	"decafc/report"
	"slices"
	"strconv"
)

func (p *Parser) parseExpr() common.AstExpr {
	return p.parseBinaryOp(0)
}

/* -------------------------------------------------------------------------- */

var tokKindToOpKind = map[TokenKind]common.AstOpKind{
	TOK_PLUS:   common.AOP_ADD,
	TOK_MINUS:  common.AOP_SUB,
	TOK_STAR:   common.AOP_MUL,
	TOK_FSLASH: common.AOP_DIV,
	TOK_AND:    common.AOP_AND,
	TOK_OR:     common.AOP_OR,
}

// Lowest precedence first; every level is left-associative.
var predTable = [][]TokenKind{
	{TOK_OR},
	{TOK_AND},
	{TOK_PLUS, TOK_MINUS},
	{TOK_STAR, TOK_FSLASH},
}

func (p *Parser) parseBinaryOp(predLevel int) common.AstExpr {
	if predLevel == len(predTable) {
		return p.parseUnaryOp()
	}

	lhs := p.parseBinaryOp(predLevel + 1)

	for slices.Contains(predTable[predLevel], p.tok.Kind) {
		opKind := tokKindToOpKind[p.tok.Kind]
		p.next()

		rhs := p.parseBinaryOp(predLevel + 1)

		lhs = &common.AstBinaryOp{
			AstExprBase: common.AstExprBase{
				Span: report.SpanOver(lhs.GetSpan(), rhs.GetSpan()),
			},
			OpKind: opKind,
			Lhs:    lhs,
			Rhs:    rhs,
		}
	}

	return lhs
}

func (p *Parser) parseUnaryOp() common.AstExpr {
	if !p.has(TOK_NOT) {
		return p.parseAtom()
	}

	startSpan := p.tok.Span
	p.next()

	operand := p.parseUnaryOp()

	return &common.AstUnaryOp{
		AstExprBase: common.AstExprBase{
			Span: report.SpanOver(startSpan, operand.GetSpan()),
		},
		OpKind:  common.AOP_NOT,
		Operand: operand,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseLocation() common.AstLocation {
	identTok := p.wantAndGet(TOK_IDENT)

	if !p.has(TOK_LBRACKET) {
		return &common.AstVar{
			AstExprBase: common.AstExprBase{
				Span: identTok.Span,
			},
			Name: identTok.Value,
		}
	}

	p.next()
	index := p.parseExpr()
	endSpan := p.wantAndGet(TOK_RBRACKET).Span

	return &common.AstArrayVar{
		AstExprBase: common.AstExprBase{
			Span: report.SpanOver(identTok.Span, endSpan),
		},
		Name:  identTok.Value,
		Index: index,
	}
}

func (p *Parser) parseAtom() common.AstExpr {
	switch p.tok.Kind {
	case TOK_IDENT:
		return p.parseLocation()
	case TOK_INTLIT:
		{
			n, err := strconv.ParseInt(p.tok.Value, 10, 64)
			if err != nil {
				p.error("integer literal out of range: %s", p.tok.Value)
			}

			span := p.tok.Span
			p.next()

			return &common.AstIntLit{
				AstExprBase: common.AstExprBase{
					Span: span,
				},
				Value: n,
			}
		}
	case TOK_CHARLIT:
		{
			r, ok := decodeRuneLit(p.tok.Value)
			if !ok {
				p.error("malformed character literal: %q", p.tok.Value)
			}

			span := p.tok.Span
			p.next()

			return &common.AstCharLit{
				AstExprBase: common.AstExprBase{
					Span: span,
				},
				Value: r,
			}
		}
	case TOK_BOOLLIT:
		{
			value := p.tok.Value == "true"

			span := p.tok.Span
			p.next()

			return &common.AstBoolLit{
				AstExprBase: common.AstExprBase{
					Span: span,
				},
				Value: value,
			}
		}
	case TOK_LPAREN:
		{
			p.next()

			subExpr := p.parseExpr()

			p.want(TOK_RPAREN)

			return subExpr
		}
	default:
		p.reject()
		return nil
	}
}

// decodeRuneLit reads the text between the quotes of a char literal: one
// character, or a backslash and an escape code.
func decodeRuneLit(lit string) (rune, bool) {
	runes := []rune(lit)

	switch {
	case len(runes) == 1:
		return runes[0], true
	case len(runes) == 2 && runes[0] == '\\':
		switch runes[1] {
		case 'a':
			return '\a', true
		case 'b':
			return '\b', true
		case 'f':
			return '\f', true
		case 'n':
			return '\n', true
		case 'r':
			return '\r', true
		case 't':
			return '\t', true
		case 'v':
			return '\v', true
		case '0':
			return 0, true
		case '\'', '"', '\\':
			return runes[1], true
		}
	}

	return 0, false
}
