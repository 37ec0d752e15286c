package calc

import "math"

// Eval folds the expression tree to its value. Arithmetic follows IEEE-754
// double semantics throughout: division by zero yields an infinity or NaN,
// the sign of a remainder follows the dividend, and a negative base with a
// fractional exponent yields NaN. Evaluation cannot fail, because the
// parser cannot build a malformed tree.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeNeg:
		return -n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodeMod:
		return math.Mod(n.left.eval(), n.right.eval())
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// Evaluate is a shortcut to parse an expression and return its value.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(), nil
}
