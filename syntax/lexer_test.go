package syntax

import (
	"decafc/common"
	"decafc/report"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) ([]*Token, *report.Log) {
	t.Helper()

	log := report.NewLog(nil)
	toks := Tokenize(common.NewUnit("test.decaf", src), log)

	require.NotEmpty(t, toks)
	require.Equal(t, TOK_EOF, toks[len(toks)-1].Kind, "token stream must end with EOF")
	return toks, log
}

func kinds(toks []*Token) []TokenKind {
	ks := make([]TokenKind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestLexer_KeywordsAndIdents(t *testing.T) {
	toks, log := scan(t, "class Foo { int x; boolean _flag2; void main() }")

	assert.Empty(t, log.Diagnostics())
	assert.Equal(t, []TokenKind{
		TOK_CLASS, TOK_IDENT, TOK_LBRACE,
		TOK_INT, TOK_IDENT, TOK_SEMICOLON,
		TOK_BOOLEAN, TOK_IDENT, TOK_SEMICOLON,
		TOK_VOID, TOK_IDENT, TOK_LPAREN, TOK_RPAREN,
		TOK_RBRACE, TOK_EOF,
	}, kinds(toks))
	assert.Equal(t, "Foo", toks[1].Value)
	assert.Equal(t, "_flag2", toks[7].Value)
}

func TestLexer_ReservedWordsOutsideGrammar(t *testing.T) {
	toks, log := scan(t, "while break continue callout if else return")

	assert.Empty(t, log.Diagnostics())
	assert.Equal(t, []TokenKind{
		TOK_WHILE, TOK_BREAK, TOK_CONTINUE, TOK_CALLOUT,
		TOK_IF, TOK_ELSE, TOK_RETURN, TOK_EOF,
	}, kinds(toks))
}

func TestLexer_Operators(t *testing.T) {
	toks, log := scan(t, "+ - * / % == != <= >= < > && || ! = [ ] ( ) , ;")

	assert.Empty(t, log.Diagnostics())
	assert.Equal(t, []TokenKind{
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_FSLASH, TOK_MOD,
		TOK_EQ, TOK_NEQ, TOK_LTEQ, TOK_GTEQ, TOK_LT, TOK_GT,
		TOK_AND, TOK_OR, TOK_NOT, TOK_ASSIGN,
		TOK_LBRACKET, TOK_RBRACKET, TOK_LPAREN, TOK_RPAREN,
		TOK_COMMA, TOK_SEMICOLON, TOK_EOF,
	}, kinds(toks))
	assert.Equal(t, "&&", toks[11].Value)
}

func TestLexer_Literals(t *testing.T) {
	toks, log := scan(t, `42 0x1F 'a' '\n' "hi there" true false`)

	assert.Empty(t, log.Diagnostics())

	tests := []struct {
		kind  TokenKind
		value string
	}{
		{TOK_INTLIT, "42"},
		{TOK_HEXLIT, "0x1F"},
		{TOK_CHARLIT, "a"},
		{TOK_CHARLIT, `\n`},
		{TOK_STRLIT, "hi there"},
		{TOK_BOOLLIT, "true"},
		{TOK_BOOLLIT, "false"},
	}

	require.Len(t, toks, len(tests)+1)
	for i, tt := range tests {
		assert.Equal(t, tt.kind, toks[i].Kind, "token %d", i)
		assert.Equal(t, tt.value, toks[i].Value, "token %d", i)
	}
}

func TestLexer_LineTracking(t *testing.T) {
	toks, _ := scan(t, "class A {\n\n  int x;\n}\n")

	assert.Equal(t, 1, toks[0].Line())
	assert.Equal(t, TOK_INT, toks[3].Kind)
	assert.Equal(t, 3, toks[3].Line())
	assert.Equal(t, TOK_RBRACE, toks[6].Kind)
	assert.Equal(t, 4, toks[6].Line())
}

func TestLexer_Comments(t *testing.T) {
	toks, log := scan(t, "// header\nint /* a\n b */ z")

	assert.Empty(t, log.Diagnostics())
	require.Equal(t, []TokenKind{TOK_INT, TOK_IDENT, TOK_EOF}, kinds(toks))
	assert.Equal(t, 2, toks[0].Line())
	assert.Equal(t, 3, toks[1].Line())
}

func TestLexer_IllegalCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []TokenKind
		bad   []string
	}{
		{
			name:  "symbols are skipped one at a time",
			input: "int @x # ;",
			kinds: []TokenKind{TOK_INT, TOK_IDENT, TOK_SEMICOLON, TOK_EOF},
			bad:   []string{"illegal character '@'", "illegal character '#'"},
		},
		{
			name:  "single ampersand",
			input: "a & b",
			kinds: []TokenKind{TOK_IDENT, TOK_IDENT, TOK_EOF},
			bad:   []string{"illegal character '&'"},
		},
		{
			name:  "single pipe",
			input: "a | b",
			kinds: []TokenKind{TOK_IDENT, TOK_IDENT, TOK_EOF},
			bad:   []string{"illegal character '|'"},
		},
		{
			name:  "char literal with two characters",
			input: "'ab'",
			kinds: []TokenKind{TOK_IDENT, TOK_EOF},
			bad:   []string{"illegal character '''", "illegal character '''"},
		},
		{
			name:  "unterminated string",
			input: "\"open\nx",
			kinds: []TokenKind{TOK_IDENT, TOK_IDENT, TOK_EOF},
			bad:   []string{"illegal character '\"'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, log := scan(t, tt.input)

			assert.Equal(t, tt.kinds, kinds(toks))

			diags := log.Diagnostics()
			require.Len(t, diags, len(tt.bad))
			for i, d := range diags {
				assert.Equal(t, report.DK_UNRECOGNIZED_CHAR, d.Kind)
				assert.Equal(t, tt.bad[i], d.Message)
				assert.Equal(t, 1, d.Line())
			}
		})
	}
}

func TestLexer_IllegalCharacterLine(t *testing.T) {
	_, log := scan(t, "class A {\n  $\n}")

	require.Len(t, log.Diagnostics(), 1)
	assert.Equal(t, 2, log.Diagnostics()[0].Line())
}

func TestLexer_Lazy(t *testing.T) {
	log := report.NewLog(nil)
	l := NewLexer(common.NewUnit("test.decaf", "x = 1;"), log)

	assert.Equal(t, TOK_IDENT, l.NextToken().Kind)
	assert.Equal(t, TOK_ASSIGN, l.NextToken().Kind)
	assert.Equal(t, TOK_INTLIT, l.NextToken().Kind)
	assert.Equal(t, TOK_SEMICOLON, l.NextToken().Kind)
	assert.Equal(t, TOK_EOF, l.NextToken().Kind)
	assert.Equal(t, TOK_EOF, l.NextToken().Kind)
}

func TestToken_Dump(t *testing.T) {
	toks, _ := scan(t, "\n  count")

	var sb strings.Builder
	toks[0].Dump(&sb)
	assert.Equal(t, "Token(ID, \"count\", 2)\n", sb.String())
}

func TestLexer_BackslashCharLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{name: "lone backslash", input: `'\';`, value: `\`},
		{name: "escaped backslash", input: `'\\'`, value: `\\`},
		{name: "escaped quote", input: `'\''`, value: `\'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, log := scan(t, tt.input)

			assert.Empty(t, log.Diagnostics())
			assert.Equal(t, TOK_CHARLIT, toks[0].Kind)
			assert.Equal(t, tt.value, toks[0].Value)
		})
	}
}

func TestToken_DumpQuotesValue(t *testing.T) {
	tok := &Token{
		Kind:  TOK_STRLIT,
		Value: `say "hi"`,
		Span:  &report.TextSpan{StartLine: 3, EndLine: 3},
	}

	var sb strings.Builder
	tok.Dump(&sb)
	assert.Equal(t, `Token(STRING_LITERAL, "say \"hi\"", 3)`+"\n", sb.String())
}
