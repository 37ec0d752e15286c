package calc

import (
	"errors"
	"testing"
)

// diff finds the first in-order node of n that differs from m, or nil, nil
// if the two ASTs are equal. If any node is nodeNone, it is returned.
func (n *node) diff(m *node) (*node, *node) {
	if n == nil {
		if m != nil {
			return n, m
		}
		return nil, nil
	}
	if m == nil {
		return n, m
	}
	if n.kind == nodeNone || m.kind == nodeNone {
		return n, m
	}
	if n.kind != m.kind {
		return n, m
	}
	if n.kind == nodeNum {
		if n.num != m.num {
			return n, m
		}
		return nil, nil
	}
	if d, e := n.left.diff(m.left); d != nil || e != nil {
		return d, e
	}
	return n.right.diff(m.right)
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"nested", "(((1)))", "1"},
		{"spaces", " 2\t+\n3 ", "2+3"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"mul4", "1*2*3*4", "((1*2)*3)*4"},
		{"div4", "6/2/3/4", "((6/2)/3)/4"},
		{"mod3", "8%3%2", "(8%3)%2"},
		{"pow3", "4^3^2", "4^(3^2)"},

		{"mulmod", "5*2%3", "(5*2)%3"},
		{"divmul", "6/2*3", "(6/2)*3"},
		{"muladd", "4*3+2", "(4*3)+2"},
		{"addmul", "2+4*3", "2+(4*3)"},
		{"modadd", "1+4%3", "1+(4%3)"},
		{"powmul", "2*10^2", "2*(10^2)"},
		{"powdiv", "2^2/2", "(2^2)/2"},

		{"negpow", "-5^2", "-(5^2)"},
		{"negadd", "-5+5", "(-5)+5"},
		{"negterm", "-2*3", "-(2*3)"},
		{"doubleneg", "1--1", "1-(-1)"},
		{"negneg", "--1", "-(-1)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := Parse(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *node
	}{
		{
			name: "num",
			src:  "1.5",
			n:    &node{kind: nodeNum, num: 1.5},
		},
		{
			name: "negpow",
			src:  "-5^2",
			n: &node{
				kind: nodeNeg,
				left: &node{
					kind:  nodePow,
					left:  &node{kind: nodeNum, num: 5},
					right: &node{kind: nodeNum, num: 2},
				},
			},
		},
		{
			name: "mulparen",
			src:  "2 * (5+1)",
			n: &node{
				kind: nodeMul,
				left: &node{kind: nodeNum, num: 2},
				right: &node{
					kind:  nodeAdd,
					left:  &node{kind: nodeNum, num: 5},
					right: &node{kind: nodeNum, num: 1},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := a.n.diff(c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"operators", "1 - 5 */ 5", 7},
		{"parenterm", "2()", 1},
		{"emptyparen", "2*()", 3},
		{"close", ")", 0},
		{"staronly", "*", 0},
		{"doubleplus", "1++1", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			var te *TokenError
			if !errors.As(err, &te) {
				t.Fatalf("wrong error from %q: want a TokenError, got %v", c.src, err)
			}
			if te.Col != c.pos {
				t.Errorf("%q: error at %d, want %d", c.src, te.Col, c.pos)
			}
		})
	}
}

func TestParseUnknownSymbol(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"operand", "2 * &", 4},
		{"letter", "2 * (1a", 6},
		{"dot", ".", 0},
		{"exponent", "1e10", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			var se *SymbolError
			if !errors.As(err, &se) {
				t.Fatalf("wrong error from %q: want a SymbolError, got %v", c.src, err)
			}
			if se.Col != c.pos {
				t.Errorf("%q: error at %d, want %d", c.src, se.Col, c.pos)
			}
		})
	}
}

func TestParseIncomplete(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"operator", "2 * "},
		{"open", "2 * ("},
		{"unclosed", "2 * (5+2"},
		{"dash", "-"},
		{"trailingadd", "1+"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			if !IsIncomplete(err) {
				t.Errorf("%q: want ErrIncomplete, got %v", c.src, err)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"num", "1.5"},
		{"neg", "-1"},
		{"add", "1+2"},
		{"sub", "1-2"},
		{"mul", "1*2"},
		{"div", "1/2"},
		{"mod", "8%3"},
		{"pow", "4^3^2"},
		{"negpow", "-5^2"},
		{"negsub", "1--1"},
		{"paren", "2 * (5+1)"},
		{"mixed", "6^2+1-2*10^2/4%3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			s := a.String()
			b, err := Parse(s)
			if err != nil {
				t.Fatalf("%q -> %q failed to parse: %v", c.src, s, err)
			}
			d, e := a.n.diff(b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.src, a.n, d, s, b.n, e)
			}
		})
	}
}
