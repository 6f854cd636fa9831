package expr

import (
	"strings"
	"testing"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"real", "1.5", "(1.5)"},
		{"exp-num", "1e3", "(1e3)"},
		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1) + (2))"},
		{"sub", "1-2", "((1) - (2))"},
		{"mul", "1*2", "((1) * (2))"},
		{"div", "1/2", "((1) / (2))"},
		{"pow", "1^2", "((1) ^ (2))"},
		{"pow-star", "1**2", "((1) ^ (2))"},
		{"add-assoc", "1+2+3", "(((1) + (2)) + (3))"},
		{"sub-assoc", "1-2-3", "(((1) - (2)) - (3))"},
		{"mul-assoc", "1*2*3", "(((1) * (2)) * (3))"},
		{"pow-assoc", "1^2^3", "((1) ^ ((2) ^ (3)))"},
		{"precedence", "1+2*3", "((1) + ((2) * (3)))"},
		{"precedence-rev", "1*2+3", "(((1) * (2)) + (3))"},
		{"group", "(1+2)*3", "(((1) + (2)) * (3))"},
		{"neg-pow", "-2^2", "(-((2) ^ (2)))"},
		{"pow-neg", "2^-3", "((2) ^ (-(3)))"},
		{"neg-mul", "-2*3", "((-(2)) * (3))"},
		{"double-neg", "--2", "(-(-(2)))"},
		{"call", "sqrt(16)", "(sqrt((16)))"},
		{"call-expr", "sqrt(4+5)", "(sqrt(((4) + (5))))"},
		{"call-nested", "sqrt(abs(0-16))", "(sqrt((abs(((0) - (16))))))"},
		{"call-term", "2+sqrt(16)*3", "((2) + ((sqrt((16))) * (3)))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.String(); got != c.want {
				t.Errorf("%q parsed wrong:\n\twant %s\n\tgot  %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", &EmptyExpressionError{}},
		{"spaces", " \t ", &EmptyExpressionError{}},
		{"empty-group", "()", &EmptyExpressionError{}},
		{"trailing-op", "2+", &EmptyExpressionError{}},
		{"leading-binary", "*2", &OperatorError{}},
		{"double-star-alone", "**", &OperatorError{}},
		{"unclosed", "(2+3", &BracketError{}},
		{"unopened", "2+3)", &BracketError{}},
		{"bare-close", ")", &BracketError{}},
		{"unclosed-call", "sqrt(16", &BracketError{}},
		{"unknown-func", "foo(1)", &UnknownFuncError{}},
		{"bare-ident", "x", &UnknownFuncError{}},
		{"call-no-brackets", "sqrt 16", &CallError{}},
		{"call-no-args", "sqrt", &CallError{}},
		{"empty-call", "sqrt()", &EmptyExpressionError{}},
		{"adjacent-num", "2 3", &AdjacentTermError{}},
		{"adjacent-group", "2(3+4)", &AdjacentTermError{}},
		{"adjacent-call", "2 sqrt(16)", &AdjacentTermError{}},
		{"bad-rune", "2+$", &LexError{}},
		{"bad-number", "1.2.3", &LexError{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("%q parsed to %v with no error", c.src, a)
			}
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q error %#v does not implement InputError", c.src, err)
			}
			if ie.Pos() < 1 {
				t.Errorf("%q error has bad position %d", c.src, ie.Pos())
			}
			if !sameErrType(err, c.err) {
				t.Errorf("%q gave wrong error type: want %T, got %T (%v)", c.src, c.err, err, err)
			}
		})
	}
}

func sameErrType(got, want error) bool {
	switch want.(type) {
	case *LexError:
		_, ok := got.(*LexError)
		return ok
	case *OperatorError:
		_, ok := got.(*OperatorError)
		return ok
	case *BracketError:
		_, ok := got.(*BracketError)
		return ok
	case *UnknownFuncError:
		_, ok := got.(*UnknownFuncError)
		return ok
	case *CallError:
		_, ok := got.(*CallError)
		return ok
	case *AdjacentTermError:
		_, ok := got.(*AdjacentTermError)
		return ok
	case *EmptyExpressionError:
		_, ok := got.(*EmptyExpressionError)
		return ok
	default:
		return false
	}
}

func TestFuncsSorted(t *testing.T) {
	names := Funcs()
	if len(names) != len(globalfuncs) {
		t.Fatalf("wrong number of names: want %d, got %d", len(globalfuncs), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names out of order: %q before %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		if globalfuncs[name] == nil {
			t.Errorf("Funcs returned %q which has no implementation", name)
		}
	}
}
