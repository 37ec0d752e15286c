package calc

import "strings"

// The grammar, lowest precedence first. Binary operators on each level are
// left-associative, except ^ which is right-associative. The operand of
// unary minus is a term, so negation binds looser than ^ * / % and tighter
// than binary + and -.
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/' | '%') factor)*
//	factor     := primary ('^' factor)?
//	primary    := NUMBER | '(' expression ')' | '-' term

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses one complete expression. The input must contain exactly one
// expression: a token left over after it is a TokenError at that token's
// position. If the input ends before the grammar is satisfied, the error is
// ErrIncomplete; see IsIncomplete.
func Parse(src string) (*Expr, error) {
	scan := lex(strings.NewReader(src))
	n, err := parseExpr(scan)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &TokenError{Col: tok.pos, Token: tok.String()}
	}
	return &Expr{n: n}, nil
}

// String creates a fully parenthesized string representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

func parseExpr(scan *lexer) (*node, error) {
	n, err := parseTerm(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch tok.kind {
		case tokenPlus:
			kind = nodeAdd
		case tokenDash:
			kind = nodeSub
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseTerm(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func parseTerm(scan *lexer) (*node, error) {
	n, err := parseFactor(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch tok.kind {
		case tokenStar:
			kind = nodeMul
		case tokenSlash:
			kind = nodeDiv
		case tokenPercent:
			kind = nodeMod
		default:
			scan.push(tok)
			return n, nil
		}
		rhs, err := parseFactor(scan)
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func parseFactor(scan *lexer) (*node, error) {
	n, err := parsePrimary(scan)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenCaret {
		scan.push(tok)
		return n, nil
	}
	// Recursing on the same level makes exponentiation right-associative.
	rhs, err := parseFactor(scan)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

func parsePrimary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, num: tok.num}, nil
	case tokenLParen:
		return parseParen(scan)
	case tokenDash:
		// -5^2 is -(5^2) and -5+5 is (-5)+5.
		rhs, err := parseTerm(scan)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	case tokenEOF:
		// Ran out of input where a value is required; the expression may
		// continue on another line.
		return nil, ErrIncomplete
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.String()}
	}
}

// parseParen parses the rest of a parenthesized expression after the open
// paren. Anything other than ) after the inner expression leaves the group
// unterminated, which reads as more input to come rather than a syntax
// error.
func parseParen(scan *lexer) (*node, error) {
	n, err := parseExpr(scan)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenRParen {
		return nil, ErrIncomplete
	}
	return n, nil
}
