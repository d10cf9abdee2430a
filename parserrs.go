package arith

import "strconv"

// CharError indicates a byte that cannot be part of any token, or a literal
// that is not a valid number. It implements InputError.
type CharError struct {
	// Text is the byte that could not be lexed, or for a malformed number,
	// the literal up to and including the point of the error.
	Text string
	// Kind is "number" if the literal was complete but did not parse, and
	// empty otherwise.
	Kind string
	// Col is the byte offset of the error.
	Col int
}

func (err *CharError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "unexpected character in "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *CharError) Pos() int {
	return err.Col
}

// OpeningOperatorError indicates an expression that starts with an operator.
// It implements InputError.
type OpeningOperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that opened the expression.
	Operator Operator
}

func (err *OpeningOperatorError) Error() string {
	return errpos(err.Col, "expression cannot start with operator "+strconv.Quote(err.Operator.String()))
}

func (err *OpeningOperatorError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token sequence that does not form a binary
// expression, such as an operator missing an operand or two numbers with no
// operator between them. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token at which the problem was found.
	Col int
	// Tok is that token.
	Tok Token
}

func (err *SyntaxError) Error() string {
	if err.Tok.Kind == TokenLit {
		return errpos(err.Col, "expected operator before "+strconv.FormatFloat(err.Tok.Val, 'g', -1, 64))
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Tok.Op.String()))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates input with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return errpos(0, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// DivisionByZeroError indicates a division whose divisor evaluated to zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.X, 'g', -1, 64)+"/0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based byte offset of the error in the source.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*OpeningOperatorError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
