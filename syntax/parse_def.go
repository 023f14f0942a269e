package syntax

import (
	"decafc/common"
	"decafc/dtypes"
	"decafc/report"
)

func (p *Parser) parseProgram() {
	startSpan := p.wantAndGet(TOK_CLASS).Span

	name := p.wantAndGet(TOK_IDENT)
	p.unit.Name = name.Value

	prog := &common.AstProgram{Name: name.Value}
	p.prog = prog

	p.want(TOK_LBRACE)

	// A field and a method both open with `type ID`; the token after the name
	// decides which one this is.
	if p.has(TOK_VOID) {
		p.parseMethodDecl(prog)
	} else {
		memberStart := p.tok.Span
		typ := p.parseTypeLabel()
		ident := p.wantAndGet(TOK_IDENT)

		if p.has(TOK_SEMICOLON) {
			prog.Field = &common.AstFieldDecl{
				AstBase: common.AstBase{
					Span: report.SpanOver(memberStart, p.tok.Span),
				},
				Symbol: p.newSymbol(ident, typ, common.SK_FIELD),
			}
			p.next()

			p.parseMethodDecl(prog)
		} else {
			p.parseMethodRest(prog, memberStart, typ, ident)
		}
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span
	p.want(TOK_EOF)

	prog.Span = report.SpanOver(startSpan, endSpan)
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseMethodDecl(prog *common.AstProgram) {
	startSpan := p.tok.Span
	returnType := p.parseReturnType()
	ident := p.wantAndGet(TOK_IDENT)

	p.parseMethodRest(prog, startSpan, returnType, ident)
}

func (p *Parser) parseMethodRest(prog *common.AstProgram, startSpan *report.TextSpan, returnType dtypes.Type, ident *Token) {
	md := &common.AstMethodDecl{
		Name:       ident.Value,
		ReturnType: returnType,
		Params:     []*common.AstParam{},
	}
	prog.Method = md

	p.want(TOK_LPAREN)

	if p.hasTypeLabel() {
		md.Params = append(md.Params, p.parseParam())
	}

	p.want(TOK_RPAREN)

	md.Body = newBlock()
	p.parseBlock(md.Body)

	md.Span = report.SpanOver(startSpan, md.Body.Span)
}

// The grammar admits at most one parameter.
func (p *Parser) parseParam() *common.AstParam {
	startSpan := p.tok.Span
	typ := p.parseTypeLabel()
	ident := p.wantAndGet(TOK_IDENT)

	return &common.AstParam{
		AstBase: common.AstBase{
			Span: report.SpanOver(startSpan, ident.Span),
		},
		Symbol: p.newSymbol(ident, typ, common.SK_PARAM),
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) newSymbol(ident *Token, typ dtypes.Type, kind common.SymbolKind) *common.Symbol {
	return &common.Symbol{
		Name: ident.Value,
		Type: typ,
		Kind: kind,
		Span: ident.Span,
	}
}
