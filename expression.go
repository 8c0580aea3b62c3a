package lambda

// Expression is an untyped lambda-calculus value: an opaque unary function
// from Expression to Expression. Every combinator, Church numeral, and Scott
// list cell in this package is one. Expressions are immutable values; closures
// capture the Expressions they reference by value, so a returned Expression
// may outlive the scope that built it.
type Expression struct {
	fn func(Expression) Expression
}

// NewExpression wraps a unary function as an Expression. The zero-value
// Expression holds no function and must not be applied; always construct
// through NewExpression or Apply.
func NewExpression(fn func(Expression) Expression) Expression {
	return Expression{fn: fn}
}

// Apply performs call-by-name application: it does NOT invoke e's underlying
// function. It returns a suspended Expression that, when itself strictly
// applied to some next argument, first strictly applies e to arg and then
// strictly applies that result to next. One application level is one unit of
// deferral; a chain is fully executed by two trailing strict applications of
// I, which is the forcing convention the decoders use.
//
// Deferral is what lets self-referential combinators like Y be constructed
// without the host recursing at construction time.
func (e Expression) Apply(arg Expression) Expression {
	return Expression{fn: func(next Expression) Expression {
		return e.call(arg).call(next)
	}}
}

// call is strict (call-by-value) application: it invokes the underlying
// function directly. Only combinator construction, the codecs, and forcing
// steps use it; everything else goes through Apply.
func (e Expression) call(arg Expression) Expression {
	return e.fn(arg)
}
