package syntax

import (
	"decafc/common"
	"decafc/report"
	"fmt"
)

type Parser struct {
	unit   *common.Unit
	stream TokenStream
	log    *report.Log

	tok      *Token
	prevSpan *report.TextSpan

	// prog is attached as soon as the class name is read and grows node by
	// node, so an aborted parse still leaves the declarations and statements
	// completed before the error.
	prog *common.AstProgram
}

func NewParser(unit *common.Unit, stream TokenStream, log *report.Log) *Parser {
	return &Parser{
		unit:   unit,
		stream: stream,
		log:    log,
	}
}

// Parse builds the program AST. It returns nil once a syntax error aborts the
// parse; the error itself is in the log.
func (p *Parser) Parse() *common.AstProgram {
	if prog, aborted := p.ParsePartial(); !aborted {
		return prog
	}

	return nil
}

// ParsePartial is Parse for callers that still want to inspect the tree of an
// aborted parse. The partial tree holds every node completed before the
// fatal error; unfinished nodes are missing or have nil spans. prog is nil
// only if the class name was never read.
func (p *Parser) ParsePartial() (prog *common.AstProgram, aborted bool) {
	aborted = true

	func() {
		defer p.log.Catch()

		p.next()
		p.parseProgram()
		aborted = false
	}()

	return p.prog, aborted
}

/* -------------------------------------------------------------------------- */

func (p *Parser) next() {
	if p.tok != nil {
		p.prevSpan = p.tok.Span
	}

	p.tok = p.stream.NextToken()
}

func (p *Parser) has(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) want(kind TokenKind) {
	if p.has(kind) {
		p.next()
	} else {
		p.reject()
	}
}

func (p *Parser) wantAndGet(kind TokenKind) *Token {
	if p.has(kind) {
		tok := p.tok
		p.next()
		return tok
	} else {
		p.reject()
		return nil
	}
}

func (p *Parser) reject() {
	if p.tok.Kind == TOK_EOF {
		p.error("unexpected end of input: check that all braces are closed")
	} else {
		p.error("syntax error at '%s'", p.tok.Value)
	}
}

func (p *Parser) error(msg string, a ...any) {
	p.errorOn(p.tok.Span, msg, a...)
}

func (p *Parser) errorOn(span *report.TextSpan, msg string, a ...any) {
	report.Throw(&report.Diagnostic{
		Kind:    report.DK_SYNTAX,
		Message: fmt.Sprintf(msg, a...),
		Info: &report.SourceInfo{
			UnitName:    p.unit.Name,
			DisplayPath: p.unit.DisplayPath,
			Span:        span,
		},
	})
}
