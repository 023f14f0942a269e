package syntax

import (
	"decafc/common"
	"decafc/report"
)

func newBlock() *common.AstBlock {
	return &common.AstBlock{
		Locals: []*common.AstVarDecl{},
		Stmts:  []common.AstStmt{},
	}
}

// parseBlock fills a block that is already linked into the tree.
func (p *Parser) parseBlock(block *common.AstBlock) {
	startSpan := p.wantAndGet(TOK_LBRACE).Span

	// At most one local declaration, and only ahead of the statements.
	if p.hasTypeLabel() {
		block.Locals = append(block.Locals, p.parseVarDecl())
	}

	for p.hasStmtStart() {
		p.parseStmt(block)
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span

	block.Span = report.SpanOver(startSpan, endSpan)
}

func (p *Parser) parseVarDecl() *common.AstVarDecl {
	startSpan := p.tok.Span
	typ := p.parseTypeLabel()
	ident := p.wantAndGet(TOK_IDENT)
	endSpan := p.wantAndGet(TOK_SEMICOLON).Span

	return &common.AstVarDecl{
		AstBase: common.AstBase{
			Span: report.SpanOver(startSpan, endSpan),
		},
		Symbol: p.newSymbol(ident, typ, common.SK_LOCAL),
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) hasStmtStart() bool {
	return p.has(TOK_IDENT) || p.has(TOK_IF) || p.has(TOK_RETURN)
}

func (p *Parser) parseStmt(block *common.AstBlock) {
	switch p.tok.Kind {
	case TOK_IF:
		p.parseIfStmt(block)
	case TOK_RETURN:
		if stmt := p.parseReturnStmt(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	default:
		block.Stmts = append(block.Stmts, p.parseAssignStmt())
	}
}

func (p *Parser) parseAssignStmt() *common.AstAssign {
	target := p.parseLocation()

	p.want(TOK_ASSIGN)

	value := p.parseExpr()
	endSpan := p.wantAndGet(TOK_SEMICOLON).Span

	return &common.AstAssign{
		AstStmtBase: common.AstStmtBase{
			Span: report.SpanOver(target.GetSpan(), endSpan),
		},
		Target: target,
		Value:  value,
	}
}

// parseIfStmt links the statement into block before its branches are
// parsed, so statements finished inside them survive an abort.
func (p *Parser) parseIfStmt(block *common.AstBlock) {
	startSpan := p.wantAndGet(TOK_IF).Span

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	ifStmt := &common.AstIf{Cond: cond, Then: newBlock()}
	slot := len(block.Stmts)
	block.Stmts = append(block.Stmts, ifStmt)

	p.parseBlock(ifStmt.Then)

	if !p.has(TOK_ELSE) {
		ifStmt.Span = report.SpanOver(startSpan, ifStmt.Then.Span)
		return
	}

	ifElse := &common.AstIfElse{Cond: cond, Then: ifStmt.Then, Else: newBlock()}
	block.Stmts[slot] = ifElse

	p.next()
	p.parseBlock(ifElse.Else)

	ifElse.Span = report.SpanOver(startSpan, ifElse.Else.Span)
}

// parseReturnStmt carries the only recovery rule of the grammar: a malformed
// return is reported, skipped up to and including the next `;`, and dropped.
func (p *Parser) parseReturnStmt() common.AstStmt {
	startSpan := p.wantAndGet(TOK_RETURN).Span

	var stmt common.AstStmt
	diag := report.Try(func() {
		value := p.parseExpr()
		endSpan := p.wantAndGet(TOK_SEMICOLON).Span

		stmt = &common.AstReturn{
			AstStmtBase: common.AstStmtBase{
				Span: report.SpanOver(startSpan, endSpan),
			},
			Value: value,
		}
	})

	if diag == nil {
		return stmt
	} else if p.has(TOK_EOF) {
		report.Throw(diag)
	}

	diag.Message = "malformed return statement: " + diag.Message
	p.log.Report(diag)

	for !p.has(TOK_SEMICOLON) {
		if p.has(TOK_EOF) {
			p.reject()
		}

		p.next()
	}

	p.next()
	return nil
}
