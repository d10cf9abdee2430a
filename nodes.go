package arith

import (
	"strconv"
	"strings"
)

// Node is a node in the expression tree: either a *Leaf or an *Internal.
type Node interface {
	// String formats the subtree with alternating round and square brackets
	// grouping each term.
	String() string

	eval() (float64, error)
	fmt(b *strings.Builder, square bool)
}

// Leaf is a node holding a literal.
type Leaf struct {
	Lit Token
}

// Internal is a node applying an operator to its two children.
type Internal struct {
	Op    Token
	Left  Node
	Right Node
}

func (n *Leaf) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Internal) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Leaf) fmt(b *strings.Builder, square bool) {
	b.WriteString(strconv.FormatFloat(n.Lit.Val, 'g', -1, 64))
}

func (n *Internal) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.Left == nil || n.Right == nil {
		// Only the builder sees operators without operands.
		b.WriteByte('$')
		b.WriteString(n.Op.Op.String())
		b.WriteByte('$')
		return
	}
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Op.Op.String())
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
}
