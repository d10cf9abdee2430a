package arith

import (
	"errors"
	"math"
	"strconv"
)

// Token is a single lexical element of an expression. Tokens are values and
// are never modified after Tokenize produces them.
type Token struct {
	// Kind is the type of token.
	Kind TokenKind
	// Op is the operator for TokenOp tokens.
	Op Operator
	// Val is the numeric value for TokenLit tokens.
	Val float64
	// Start and End delimit the bytes [Start, End) of the source from which
	// the token was scanned.
	Start, End int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenOp:
		s = t.Op.String()
	case TokenLit:
		s = strconv.FormatFloat(t.Val, 'g', -1, 64)
	default:
		s = "?"
	}
	return s + "@" + strconv.Itoa(t.Start) + ":" + strconv.Itoa(t.End)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenOp is a binary operator.
	TokenOp
	// TokenLit is a numeric literal.
	TokenLit
)

func (k TokenKind) String() string {
	switch k {
	case TokenOp:
		return "Op"
	case TokenLit:
		return "Lit"
	default:
		return "None"
	}
}

// Operator is one of the four arithmetic operators.
type Operator int8

const (
	opNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Operators contains the bytes which are lexed as operators. The byte at index
// k corresponds to Operator k+1.
const Operators = "+-*/"

func (op Operator) String() string {
	if op <= opNone || int(op) > len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

// Tok creates an operator token from a single operator byte. It is a
// convenience for building token sequences by hand. Panics if c is not in
// Operators.
func Tok(c byte) Token {
	for i := 0; i < len(Operators); i++ {
		if Operators[i] == c {
			return Token{Kind: TokenOp, Op: Operator(i + 1)}
		}
	}
	panic("arith: not an operator: " + strconv.QuoteRune(rune(c)))
}

// Lit creates a literal token with the given value and span.
func Lit(val float64, start, end int) Token {
	return Token{Kind: TokenLit, Val: val, Start: start, End: end}
}

// Tokenize scans src into a sequence of tokens. If src contains a byte that
// cannot start or continue any token, or a literal that does not form a
// number, the error is a *CharError.
func Tokenize(src []byte) ([]Token, error) {
	l := lexer{src: src, start: -1}
	for i, c := range src {
		switch c {
		case '+', '*', '/':
			if err := l.close(); err != nil {
				return nil, err
			}
			l.emitOp(c, i)
		case '-':
			if l.start < 0 && l.expectOperand() {
				// Sign of a literal: -1, 2*-1.
				l.open(i)
				continue
			}
			if err := l.close(); err != nil {
				return nil, err
			}
			l.emitOp(c, i)
		case ' ', '\t', '\n', '\v', '\f', '\r':
			if err := l.close(); err != nil {
				return nil, err
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if l.start < 0 {
				l.open(i)
				continue
			}
			l.end++
		case '.':
			if l.start < 0 {
				l.open(i)
				l.dot = true
				continue
			}
			if l.dot {
				return nil, &CharError{Text: string(src[l.start : i+1]), Col: i}
			}
			l.dot = true
			l.end++
		default:
			return nil, &CharError{Text: string(src[i : i+1]), Col: i}
		}
	}
	if err := l.close(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// lexer holds the scanning state of Tokenize. start is -1 when no literal is
// open; otherwise [start, end) is the open literal.
type lexer struct {
	src        []byte
	toks       []Token
	start, end int
	dot        bool
}

// open starts a literal at byte i.
func (l *lexer) open(i int) {
	l.start, l.end = i, i+1
}

// expectOperand reports whether the next token must be an operand, i.e. no
// tokens have been emitted or the last one is an operator.
func (l *lexer) expectOperand() bool {
	return len(l.toks) == 0 || l.toks[len(l.toks)-1].Kind == TokenOp
}

// close emits the open literal, if any, and resets the literal state.
func (l *lexer) close() error {
	if l.start < 0 {
		return nil
	}
	start, end := l.start, l.end
	l.start, l.end, l.dot = -1, 0, false
	text := string(l.src[start:end])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
		// Overflow gives ±Inf with ErrRange, which is still a number.
		return &CharError{Text: text, Kind: "number", Col: start}
	}
	l.toks = append(l.toks, Lit(v, start, end))
	return nil
}

func (l *lexer) emitOp(c byte, i int) {
	tok := Tok(c)
	tok.Start, tok.End = i, i+1
	l.toks = append(l.toks, tok)
}
