package syntax

import "decafc/dtypes"

func (p *Parser) hasTypeLabel() bool {
	return p.has(TOK_INT) || p.has(TOK_BOOLEAN)
}

func (p *Parser) parseTypeLabel() dtypes.Type {
	switch p.tok.Kind {
	case TOK_INT:
		p.next()
		return dtypes.TYP_INT
	case TOK_BOOLEAN:
		p.next()
		return dtypes.TYP_BOOLEAN
	default:
		p.reject()
		return dtypes.TYP_VOID
	}
}

func (p *Parser) parseReturnType() dtypes.Type {
	if p.has(TOK_VOID) {
		p.next()
		return dtypes.TYP_VOID
	}

	return p.parseTypeLabel()
}
