package prettyprinter

import (
	"testing"

	"github.com/alexandramedway/odds/internal/analyzer"
	"github.com/alexandramedway/odds/internal/parser"
)

func render(t *testing.T, input string) string {
	t.Helper()
	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	stmts, err := analyzer.Analyze(prog, analyzer.Options{})
	if err != nil {
		t.Fatalf("Analyze(%q) returned error: %v", input, err)
	}
	return Format(stmts)
}

func TestFormatArithmeticPrecedence(t *testing.T) {
	got := render(t, "do 1 + 2 * 3")
	want := "do 1 + 2 * 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatLoadBearingParensAreKept(t *testing.T) {
	got := render(t, "do (1 + 2) * 3")
	want := "do (1 + 2) * 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatUnneededParensAreNotReintroduced(t *testing.T) {
	got := render(t, "do 1 + 2 + 3")
	want := "do 1 + 2 + 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatPowerRightAssociativity(t *testing.T) {
	// 2 ** 3 ** 2 parses right-associatively into Binop{**, 2, Binop{**, 3,
	// 2}}; the right child of a right-assoc operator never needs parens to
	// round-trip, so this prints back exactly as written.
	got := render(t, "do 2 ** 3 ** 2")
	want := "do 2 ** 3 ** 2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// but the same shape forced left instead needs explicit parens to
	// round-trip, since an unparenthesized left child would otherwise
	// re-parse as (2 ** (3 ** 2)) under right-associativity.
	got = render(t, "do (2 ** 3) ** 2")
	want = "do (2 ** 3) ** 2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatStringEscapes(t *testing.T) {
	got := render(t, `do "a\nb"`)
	want := `do "a\nb"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatNamedFunctionDeclaration(t *testing.T) {
	got := render(t, "do f = (x) -> do y = x + 1 return y")
	want := "do f = (x) ->\n    do y = x + 1\n    return y"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatAnonymousImmediatelyInvokedFunction(t *testing.T) {
	got := render(t, "do ((x) -> return x + 1)(2)")
	want := "do ((x) ->\n    return x + 1)(2)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatNoParamsFunction(t *testing.T) {
	got := render(t, "do f = () -> return 1")
	want := "do f = () ->\n    return 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIfExpression(t *testing.T) {
	got := render(t, "do if true then 1 else 2")
	want := "do if true then 1 else 2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatListLiteral(t *testing.T) {
	got := render(t, "do [1, 2, 3]")
	want := "do [1, 2, 3]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
