package syntax

import (
	"decafc/report"
	"fmt"
	"io"
)

type TokenKind uint8

const (
	TOK_CLASS TokenKind = iota
	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_RETURN
	TOK_BREAK
	TOK_CONTINUE
	TOK_CALLOUT
	TOK_BOOLEAN
	TOK_INT
	TOK_VOID

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_FSLASH
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LTEQ
	TOK_GTEQ
	TOK_LT
	TOK_GT

	TOK_AND
	TOK_OR
	TOK_NOT

	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA
	TOK_SEMICOLON

	TOK_IDENT
	TOK_INTLIT
	TOK_HEXLIT
	TOK_CHARLIT
	TOK_STRLIT
	TOK_BOOLLIT

	TOK_EOF
)

var tokKindNames = [...]string{
	TOK_CLASS:     "CLASS",
	TOK_IF:        "IF",
	TOK_ELSE:      "ELSE",
	TOK_WHILE:     "WHILE",
	TOK_RETURN:    "RETURN",
	TOK_BREAK:     "BREAK",
	TOK_CONTINUE:  "CONTINUE",
	TOK_CALLOUT:   "CALLOUT",
	TOK_BOOLEAN:   "BOOLEAN",
	TOK_INT:       "INT",
	TOK_VOID:      "VOID",
	TOK_PLUS:      "PLUS",
	TOK_MINUS:     "MINUS",
	TOK_STAR:      "TIMES",
	TOK_FSLASH:    "DIVIDE",
	TOK_MOD:       "MOD",
	TOK_EQ:        "EQ",
	TOK_NEQ:       "NEQ",
	TOK_LTEQ:      "LE",
	TOK_GTEQ:      "GE",
	TOK_LT:        "LT",
	TOK_GT:        "GT",
	TOK_AND:       "AND",
	TOK_OR:        "OR",
	TOK_NOT:       "NOT",
	TOK_ASSIGN:    "ASSIGN",
	TOK_LPAREN:    "LPAREN",
	TOK_RPAREN:    "RPAREN",
	TOK_LBRACKET:  "LBRACKET",
	TOK_RBRACKET:  "RBRACKET",
	TOK_LBRACE:    "LBRACE",
	TOK_RBRACE:    "RBRACE",
	TOK_COMMA:     "COMMA",
	TOK_SEMICOLON: "SEMI",
	TOK_IDENT:     "ID",
	TOK_INTLIT:    "INT_LITERAL",
	TOK_HEXLIT:    "HEX_LITERAL",
	TOK_CHARLIT:   "CHAR_LITERAL",
	TOK_STRLIT:    "STRING_LITERAL",
	TOK_BOOLLIT:   "BOOL_LITERAL",
	TOK_EOF:       "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokKindNames) {
		return tokKindNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", k)
}

type Token struct {
	Kind  TokenKind
	Value string
	Span  *report.TextSpan
}

func (tok *Token) Line() int {
	if tok.Span == nil {
		return 0
	}

	return tok.Span.StartLine
}

func (tok *Token) Dump(w io.Writer) {
	fmt.Fprintf(w, "Token(%s, %q, %d)\n", tok.Kind, tok.Value, tok.Line())
}

/* -------------------------------------------------------------------------- */

// TokenStream is the parser's view of the scanner.
type TokenStream interface {
	NextToken() *Token
}

type sliceStream struct {
	toks []*Token
	pos  int
}

// NewSliceStream replays toks. Once exhausted it yields an EOF token forever.
func NewSliceStream(toks []*Token) TokenStream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) NextToken() *Token {
	if s.pos < len(s.toks) {
		tok := s.toks[s.pos]
		s.pos++
		return tok
	}

	var span *report.TextSpan
	if len(s.toks) > 0 {
		span = s.toks[len(s.toks)-1].Span
	}

	return &Token{Kind: TOK_EOF, Span: span}
}
