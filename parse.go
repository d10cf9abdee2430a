package arith

// Expr = num | Add | Sub | Mul | Div
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Parse tokenizes and builds an expression.
func Parse(src string) (Node, error) {
	toks, err := Tokenize([]byte(src))
	if err != nil {
		return nil, err
	}
	return Build(toks)
}

// link is an element of the list of nodes still awaiting collapse. prev and
// next are indices into the arena, or -1 at the ends.
type link struct {
	n          Node
	prev, next int
	// pending is true for operator nodes that have no operands yet.
	pending bool
}

// Build arranges a token sequence into an expression tree. Operators with
// higher precedence are deeper in the tree, and among operators with equal
// precedence, the leftmost is deepest.
//
// The errors are *EmptyExpressionError if there are no tokens,
// *OpeningOperatorError if the first token is an operator, and *SyntaxError
// if the tokens otherwise do not alternate between operands and operators.
// Build panics if a token has a Kind other than TokenOp or TokenLit, such as
// the zero Token.
func Build(toks []Token) (Node, error) {
	if len(toks) == 0 {
		return nil, &EmptyExpressionError{}
	}
	if toks[0].Kind == TokenOp {
		return nil, &OpeningOperatorError{Col: toks[0].Start, Operator: toks[0].Op}
	}
	arena := make([]link, len(toks))
	for i, tok := range toks {
		l := link{prev: i - 1, next: i + 1}
		switch tok.Kind {
		case TokenLit:
			l.n = &Leaf{Lit: tok}
		case TokenOp:
			l.n = &Internal{Op: tok}
			l.pending = true
		default:
			panic("arith: invalid token: " + tok.String())
		}
		arena[i] = l
	}
	arena[len(arena)-1].next = -1
	head := 0
	for {
		k := strongest(arena, head)
		if k < 0 {
			break
		}
		if err := collapse(arena, k, &head); err != nil {
			return nil, err
		}
	}
	if next := arena[head].next; next >= 0 {
		// Two operands with nothing to join them.
		tok := leftmost(arena[next].n)
		return nil, &SyntaxError{Col: tok.Start, Tok: tok}
	}
	return arena[head].n, nil
}

// strongest finds the pending operator with the highest precedence, preferring
// the leftmost among equals. The result is -1 if there are no pending
// operators.
func strongest(arena []link, head int) int {
	best := -1
	var bp int8
	for i := head; i >= 0; i = arena[i].next {
		if !arena[i].pending {
			continue
		}
		p := prec(arena[i].n.(*Internal).Op.Op)
		if best < 0 || p > bp {
			best, bp = i, p
		}
	}
	return best
}

// collapse makes the neighbors of the operator at k its operands and removes
// them from the list.
func collapse(arena []link, k int, head *int) error {
	op := arena[k].n.(*Internal)
	p, q := arena[k].prev, arena[k].next
	if p < 0 || q < 0 {
		return &SyntaxError{Col: op.Op.Start, Tok: op.Op}
	}
	if arena[p].pending || arena[q].pending {
		// An operator as the operand of another, e.g. 1 + * 2.
		return &SyntaxError{Col: op.Op.Start, Tok: op.Op}
	}
	op.Left, op.Right = arena[p].n, arena[q].n
	arena[k].pending = false
	arena[k].prev = arena[p].prev
	if arena[k].prev >= 0 {
		arena[arena[k].prev].next = k
	} else {
		*head = k
	}
	arena[k].next = arena[q].next
	if arena[k].next >= 0 {
		arena[arena[k].next].prev = k
	}
	arena[p] = link{prev: -1, next: -1}
	arena[q] = link{prev: -1, next: -1}
	return nil
}

// leftmost gets the first literal of a subtree in source order.
func leftmost(n Node) Token {
	for {
		switch m := n.(type) {
		case *Leaf:
			return m.Lit
		case *Internal:
			n = m.Left
		default:
			panic("arith: invalid node")
		}
	}
}

// prec gets the precedence of an operator. Higher is more binding.
func prec(op Operator) int8 {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		panic("arith: invalid operator " + op.String())
	}
}
