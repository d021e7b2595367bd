package lexer

import (
	"strings"
	"testing"

	"github.com/cwbudde/amta/internal/token"
	"github.com/stretchr/testify/require"
)

func TestCleanStripsCommentsAndContinuations(t *testing.T) {
	src := "x = 1 # trailing comment\n" +
		"# full line comment\n" +
		"  \n" +
		"y = \\\n2\n" +
		"s = \"a # b\" # real comment\n"

	got := Clean(src)
	var lines []string
	for _, line := range strings.Split(got, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	want := []string{"x = 1", "y = 2", `s = "a # b"`}
	require.Equal(t, want, lines)
}

func TestCleanNormalizesLineEndings(t *testing.T) {
	require.Equal(t, "a\nb", Clean("a\r\nb"))
	require.Equal(t, "a\nb", Clean("a\rb"))
}

func TestNextTokenKinds(t *testing.T) {
	src := `$x = 1
$:g = "hi\n"
$!local = {}
$obj:field[1] = 2.5
if $x < 3
  return
fi`

	tests := []struct {
		typ     token.Type
		literal string
	}{
		{token.VARIABLE, "$x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "1"},
		{token.NEWLINE, "\n"},
		{token.VARIABLE, "$:g"},
		{token.ASSIGN, "="},
		{token.STRING, "hi\n"},
		{token.NEWLINE, "\n"},
		{token.VARIABLE, "$!local"},
		{token.ASSIGN, "="},
		{token.EMPTYOBJ, "{}"},
		{token.NEWLINE, "\n"},
		{token.VARIABLE, "$obj:field"},
		{token.LBRACK, "["},
		{token.NUMBER, "1"},
		{token.RBRACK, "]"},
		{token.ASSIGN, "="},
		{token.NUMBER, "2.5"},
		{token.NEWLINE, "\n"},
		{token.IF, "if"},
		{token.VARIABLE, "$x"},
		{token.LT, "<"},
		{token.NUMBER, "3"},
		{token.NEWLINE, "\n"},
		{token.RETURN, "return"},
		{token.NEWLINE, "\n"},
		{token.FI, "fi"},
		{token.EOF, ""},
	}

	toks, err := Tokenize(src)
	require.NoError(t, err)
	require.Len(t, toks, len(tests))

	for i, want := range tests {
		require.Equalf(t, want.typ, toks[i].Type, "token %d literal %q", i, toks[i].Literal)
		require.Equalf(t, want.literal, toks[i].Literal, "token %d", i)
	}
}

func TestNextTokenKeywordsAndTypeNames(t *testing.T) {
	toks, err := Tokenize("fun nfu if el fi while ewhil for rfo return continue number string function object nil")
	require.NoError(t, err)

	want := []token.Type{
		token.FUN, token.NFU, token.IF, token.EL, token.FI, token.WHILE, token.EWHIL,
		token.FOR, token.RFO, token.RETURN, token.CONTINUE,
		token.TYPE_NUMBER, token.TYPE_STRING, token.TYPE_FUNCTION, token.TYPE_OBJECT, token.TYPE_NIL,
		token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].Type)
	}
}

func TestNextTokenRejectsBareIdentifier(t *testing.T) {
	_, err := Tokenize("foo")
	require.Error(t, err)
}

func TestNextTokenRejectsUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
}

func TestNextTokenRejectsUnrecognizedEscape(t *testing.T) {
	_, err := Tokenize(`"\q"`)
	require.Error(t, err)
}

func TestNextTokenHexEscape(t *testing.T) {
	toks, err := Tokenize(`"\x41\x42"`)
	require.NoError(t, err)
	require.Equal(t, "AB", toks[0].Literal)
}

func TestNextTokenAdjacentNewlinesCollapse(t *testing.T) {
	toks, err := Tokenize("$a = 1\n\n\n$b = 2")
	require.NoError(t, err)

	var newlineCount int
	for _, tk := range toks {
		if tk.Type == token.NEWLINE {
			newlineCount++
		}
	}
	require.Equal(t, 1, newlineCount)
}

func TestParseNumberLiteral(t *testing.T) {
	v, ok := ParseNumberLiteral("3.5")
	require.True(t, ok)
	require.Equal(t, 3.5, v)

	_, ok = ParseNumberLiteral("not-a-number")
	require.False(t, ok)
}

// TestRoundTripLex exercises property 1 of spec.md §8: re-tokenizing the
// stringification of each token from a clean program reproduces the same
// classification.
func TestRoundTripLex(t *testing.T) {
	src := `$x = 1
$y = "str"
if $x < $y
  return $x
fi`
	toks, err := Tokenize(src)
	require.NoError(t, err)

	var rendered string
	for _, tk := range toks {
		switch tk.Type {
		case token.EOF:
			continue
		case token.NEWLINE:
			rendered += "\n"
		case token.STRING:
			rendered += `"` + tk.Literal + `" `
		default:
			rendered += tk.Literal + " "
		}
	}

	again, err := Tokenize(rendered)
	require.NoError(t, err)

	nonNewline := func(ts []token.Token) []token.Type {
		var out []token.Type
		for _, tk := range ts {
			if tk.Type != token.NEWLINE {
				out = append(out, tk.Type)
			}
		}
		return out
	}
	require.Equal(t, nonNewline(toks), nonNewline(again))
}
