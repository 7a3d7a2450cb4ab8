package parser

import (
	"testing"

	"github.com/alexandramedway/odds/internal/ast"
)

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return prog
}

func singleDoValue(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	do, ok := prog.Statements[0].(*ast.DoStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.DoStatement", prog.Statements[0])
	}
	return do.Value
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog := mustParse(t, "do 1 + 2 * 3")
	bin, ok := singleDoValue(t, prog).(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpression", singleDoValue(t, prog))
	}
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want +", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("right = %T, want *ast.BinaryExpression", bin.Right)
	}
	if right.Operator != "*" {
		t.Fatalf("right operator = %q, want *", right.Operator)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "do 2 ** 3 ** 2")
	bin := singleDoValue(t, prog).(*ast.BinaryExpression)
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Fatalf("2 ** 3 ** 2 should nest on the right, got left-nested: %#v", bin)
	}
}

func TestParseUnaryAndPrefixPrecedence(t *testing.T) {
	prog := mustParse(t, "do -1 + 2")
	bin := singleDoValue(t, prog).(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.UnaryExpression); !ok {
		t.Fatalf("left = %T, want *ast.UnaryExpression", bin.Left)
	}
}

func TestParseGroupedExpression(t *testing.T) {
	prog := mustParse(t, "do (1 + 2) * 3")
	bin := singleDoValue(t, prog).(*ast.BinaryExpression)
	if bin.Operator != "*" {
		t.Fatalf("top operator = %q, want *", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("left = %T, want *ast.BinaryExpression (grouped 1 + 2)", bin.Left)
	}
}

func TestParseAssignExpression(t *testing.T) {
	prog := mustParse(t, `do x = 1`)
	assign, ok := singleDoValue(t, prog).(*ast.AssignExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.AssignExpression", singleDoValue(t, prog))
	}
	if assign.Name.Name != "x" {
		t.Errorf("name = %q, want x", assign.Name.Name)
	}
}

func TestParseListLiteral(t *testing.T) {
	prog := mustParse(t, "do [1, 2, true]")
	list, ok := singleDoValue(t, prog).(*ast.ListLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.ListLiteral", singleDoValue(t, prog))
	}
	if len(list.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(list.Elements))
	}
}

func TestParseIfExpression(t *testing.T) {
	prog := mustParse(t, "do if x then 1 else 2")
	ifExp, ok := singleDoValue(t, prog).(*ast.IfExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.IfExpression", singleDoValue(t, prog))
	}
	if _, ok := ifExp.Condition.(*ast.Identifier); !ok {
		t.Fatalf("condition = %T, want *ast.Identifier", ifExp.Condition)
	}
}

func TestParseCallExpression(t *testing.T) {
	prog := mustParse(t, `do print("hi", 2)`)
	call, ok := singleDoValue(t, prog).(*ast.CallExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.CallExpression", singleDoValue(t, prog))
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(call.Arguments))
	}
}

func TestParseFunctionLiteralWithBodyAndReturn(t *testing.T) {
	prog := mustParse(t, `do f = (x) -> do y = x + 1 return y`)
	assign := singleDoValue(t, prog).(*ast.AssignExpression)
	fn, ok := assign.Value.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionLiteral", assign.Value)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("params = %#v, want [x]", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body))
	}
	if _, ok := fn.Return.(*ast.Identifier); !ok {
		t.Fatalf("return = %T, want *ast.Identifier", fn.Return)
	}
}

func TestParseFunctionLiteralNoParamsNoBody(t *testing.T) {
	prog := mustParse(t, `do f = () -> return 1`)
	assign := singleDoValue(t, prog).(*ast.AssignExpression)
	fn := assign.Value.(*ast.FunctionLiteral)
	if len(fn.Params) != 0 {
		t.Fatalf("got %d params, want 0", len(fn.Params))
	}
	if len(fn.Body) != 0 {
		t.Fatalf("got %d body statements, want 0", len(fn.Body))
	}
}

func TestParseCallDisambiguatedFromFunctionLiteral(t *testing.T) {
	// f(x) is a call; (x) -> ... is a function literal. Both start with
	// '(' and must be told apart without backtracking the AST.
	prog := mustParse(t, "do f(1)")
	if _, ok := singleDoValue(t, prog).(*ast.CallExpression); !ok {
		t.Fatalf("got %T, want *ast.CallExpression", singleDoValue(t, prog))
	}
}

func TestParseProgramMultipleStatements(t *testing.T) {
	prog := mustParse(t, "do 1\ndo 2\ndo 3")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
}

func TestParseErrorOnMismatchedParen(t *testing.T) {
	_, err := Parse("do (1 + 2")
	if err == nil {
		t.Fatal("expected a parse error for unclosed paren")
	}
}

func TestParseErrorOnMissingReturn(t *testing.T) {
	_, err := Parse("do f = (x) -> do y = x")
	if err == nil {
		t.Fatal("expected a parse error for a function body missing return")
	}
}

func TestParseErrorOnTopLevelReturn(t *testing.T) {
	_, err := Parse("return 1")
	if err == nil {
		t.Fatal("expected a parse error: only 'do' statements are valid at top level")
	}
}
