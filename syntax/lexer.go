package syntax

import (
	"decafc/common"
	"decafc/report"
	"fmt"
	"strings"
)

type Lexer struct {
	unit *common.Unit
	log  *report.Log

	src []rune
	pos int

	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	ahead rune
}

func NewLexer(unit *common.Unit, log *report.Log) *Lexer {
	return &Lexer{
		unit:    unit,
		log:     log,
		src:     []rune(unit.Source),
		tokBuff: &strings.Builder{},
		line:    1, col: 1,
		startLine: 1, startCol: 1,
		ahead: 0,
	}
}

// Tokenize scans the whole unit. The returned slice always ends with a
// TOK_EOF token.
func Tokenize(unit *common.Unit, log *report.Log) []*Token {
	l := NewLexer(unit, log)

	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func (l *Lexer) NextToken() *Token {
	for l.peek() {
		switch l.ahead {
		case '\t', ' ', '\r', '\n':
			l.skip()
		case '/':
			if l.lookahead(1) == '/' {
				l.skipLineComment()
			} else if l.lookahead(1) == '*' {
				l.skipBlockComment()
			} else {
				return l.lexSingle(TOK_FSLASH)
			}
		case '\'':
			if tok := l.lexCharLit(); tok != nil {
				return tok
			}
		case '"':
			if tok := l.lexStringLit(); tok != nil {
				return tok
			}
		case '+':
			return l.lexSingle(TOK_PLUS)
		case '-':
			return l.lexSingle(TOK_MINUS)
		case '*':
			return l.lexSingle(TOK_STAR)
		case '%':
			return l.lexSingle(TOK_MOD)
		case '=':
			return l.lexOneOrTwo('=', TOK_ASSIGN, TOK_EQ)
		case '!':
			return l.lexOneOrTwo('=', TOK_NOT, TOK_NEQ)
		case '<':
			return l.lexOneOrTwo('=', TOK_LT, TOK_LTEQ)
		case '>':
			return l.lexOneOrTwo('=', TOK_GT, TOK_GTEQ)
		case '&':
			if tok := l.lexDouble('&', TOK_AND); tok != nil {
				return tok
			}
		case '|':
			if tok := l.lexDouble('|', TOK_OR); tok != nil {
				return tok
			}
		case '(':
			return l.lexSingle(TOK_LPAREN)
		case ')':
			return l.lexSingle(TOK_RPAREN)
		case '{':
			return l.lexSingle(TOK_LBRACE)
		case '}':
			return l.lexSingle(TOK_RBRACE)
		case '[':
			return l.lexSingle(TOK_LBRACKET)
		case ']':
			return l.lexSingle(TOK_RBRACKET)
		case ',':
			return l.lexSingle(TOK_COMMA)
		case ';':
			return l.lexSingle(TOK_SEMICOLON)
		default:
			if isIdentStart(l.ahead) {
				return l.lexIdentOrKeyword()
			} else if isDigit(l.ahead) {
				return l.lexNumberLit()
			} else {
				l.illegalChar()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF)
}

/* -------------------------------------------------------------------------- */

func (l *Lexer) lexNumberLit() *Token {
	l.mark()

	if l.ahead == '0' && (l.lookahead(1) == 'x' || l.lookahead(1) == 'X') && isHexDigit(l.lookahead(2)) {
		l.read()
		l.read()

		for l.peek() && isHexDigit(l.ahead) {
			l.read()
		}

		return l.makeToken(TOK_HEXLIT)
	}

	for l.peek() && isDigit(l.ahead) {
		l.read()
	}

	return l.makeToken(TOK_INTLIT)
}

/* -------------------------------------------------------------------------- */

var keywordPatterns = map[string]TokenKind{
	"class":    TOK_CLASS,
	"if":       TOK_IF,
	"else":     TOK_ELSE,
	"while":    TOK_WHILE,
	"return":   TOK_RETURN,
	"break":    TOK_BREAK,
	"continue": TOK_CONTINUE,
	"callout":  TOK_CALLOUT,
	"boolean":  TOK_BOOLEAN,
	"int":      TOK_INT,
	"void":     TOK_VOID,

	"true":  TOK_BOOLLIT,
	"false": TOK_BOOLLIT,
}

func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.read()

	for l.peek() && (isIdentStart(l.ahead) || isDigit(l.ahead)) {
		l.read()
	}

	if kkind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kkind)
	}

	return l.makeToken(TOK_IDENT)
}

/* -------------------------------------------------------------------------- */

func (l *Lexer) lexSingle(kind TokenKind) *Token {
	l.mark()
	l.read()
	return l.makeToken(kind)
}

func (l *Lexer) lexOneOrTwo(second rune, one, two TokenKind) *Token {
	l.mark()
	l.read()

	if l.peek() && l.ahead == second {
		l.read()
		return l.makeToken(two)
	}

	return l.makeToken(one)
}

// lexDouble scans operators like && that have no single-character form.
func (l *Lexer) lexDouble(r rune, kind TokenKind) *Token {
	if l.lookahead(1) != r {
		l.illegalChar()
		return nil
	}

	l.mark()
	l.read()
	l.read()
	return l.makeToken(kind)
}

/* -------------------------------------------------------------------------- */

// lexStringLit scans a double-quoted literal closed on the same line. If no
// closing quote follows, only the opening quote is rejected.
func (l *Lexer) lexStringLit() *Token {
	end := -1
	for i := l.pos + 1; i < len(l.src) && l.src[i] != '\n'; i++ {
		if l.src[i] == '"' {
			end = i
			break
		}
	}

	if end < 0 {
		l.illegalChar()
		return nil
	}

	l.mark()
	l.skip()

	for l.pos < end {
		l.read()
	}

	l.skip()
	return l.makeToken(TOK_STRLIT)
}

// lexCharLit scans 'c' or an escape such as '\n'. A backslash that opens no
// closed escape is an ordinary character, so '\' is the backslash literal.
// Malformed literals reject only the opening quote.
func (l *Lexer) lexCharLit() *Token {
	width := 0
	switch c := l.lookahead(1); {
	case c == '\\' && isEscapeCode(l.lookahead(2)) && l.lookahead(3) == '\'':
		width = 2
	case c != 0 && c != '\'' && c != '\n' && l.lookahead(2) == '\'':
		width = 1
	}

	if width == 0 {
		l.illegalChar()
		return nil
	}

	l.mark()
	l.skip()

	for i := 0; i < width; i++ {
		l.read()
	}

	l.skip()
	return l.makeToken(TOK_CHARLIT)
}

func isEscapeCode(r rune) bool {
	switch r {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '0', '\'', '"', '\\':
		return true
	default:
		return false
	}
}

/* -------------------------------------------------------------------------- */

func (l *Lexer) skipLineComment() {
	for l.peek() && l.ahead != '\n' {
		l.skip()
	}
}

func (l *Lexer) skipBlockComment() {
	l.skip()
	l.skip()

	for l.peek() {
		if l.ahead == '*' && l.lookahead(1) == '/' {
			l.skip()
			l.skip()
			return
		}

		l.skip()
	}
}

/* -------------------------------------------------------------------------- */

func (l *Lexer) makeToken(kind TokenKind) *Token {
	tok := &Token{
		Kind:  kind,
		Value: l.tokBuff.String(),
		Span:  l.getSpan(),
	}

	l.tokBuff.Reset()

	return tok
}

func (l *Lexer) mark() {
	l.tokBuff.Reset()
	l.startLine = l.line
	l.startCol = l.col
}

// illegalChar reports the character under the cursor and skips exactly it.
func (l *Lexer) illegalChar() {
	l.mark()
	bad := l.ahead
	l.skip()

	l.log.Report(&report.Diagnostic{
		Kind:    report.DK_UNRECOGNIZED_CHAR,
		Message: fmt.Sprintf("illegal character '%c'", bad),
		Info: &report.SourceInfo{
			UnitName:    l.unit.Name,
			DisplayPath: l.unit.DisplayPath,
			Span:        l.getSpan(),
		},
	})

	l.tokBuff.Reset()
}

func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine, StartCol: l.startCol,
		EndLine: l.line, EndCol: l.col,
	}
}

/* -------------------------------------------------------------------------- */

func (l *Lexer) peek() bool {
	if l.pos >= len(l.src) {
		return false
	}

	l.ahead = l.src[l.pos]
	return true
}

// lookahead returns the rune n places past the cursor, or 0 past the end.
func (l *Lexer) lookahead(n int) rune {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}

	return 0
}

func (l *Lexer) read() bool {
	if l.pos >= len(l.src) {
		return false
	}

	r := l.src[l.pos]
	l.pos++

	l.tokBuff.WriteRune(r)
	l.updatePos(r)

	return true
}

func (l *Lexer) skip() bool {
	if l.pos >= len(l.src) {
		return false
	}

	r := l.src[l.pos]
	l.pos++

	l.updatePos(r)

	return true
}

func (l *Lexer) updatePos(r rune) {
	switch r {
	case '\n':
		l.line++
		l.col = 1
	case '\t':
		l.col += 4
	default:
		l.col += 1
	}
}

/* -------------------------------------------------------------------------- */

func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
