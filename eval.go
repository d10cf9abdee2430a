package arith

// Eval evaluates an expression tree. The only possible error is a
// *DivisionByZeroError. Eval panics if n is not a complete tree, such as an
// *Internal built by hand with a nil child.
func Eval(n Node) (float64, error) {
	return n.eval()
}

func (n *Leaf) eval() (float64, error) {
	return n.Lit.Val, nil
}

// eval evaluates the left subtree, then the right, then applies the operator.
// An error in the left subtree is returned without evaluating the right.
func (n *Internal) eval() (float64, error) {
	l, err := n.Left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.Right.eval()
	if err != nil {
		return 0, err
	}
	switch n.Op.Op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		// -0 compares equal to 0, so both are errors.
		if r == 0 {
			return 0, &DivisionByZeroError{Col: n.Op.Start, X: l}
		}
		return l / r, nil
	default:
		panic("arith: invalid operator " + n.Op.Op.String())
	}
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	n, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Eval(n)
}
