package lambda

// Process-wide combinator constants. Each is built once at package init from
// deferred applications, never mutated afterwards, and safe for unsynchronized
// concurrent reads. Reduction identities are documented per combinator; the
// decoders depend on them exactly.

// Truth is the boolean selector of the first argument: Truth(x)(y) = x.
var Truth = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return x
	})
})

// Falsity is the boolean selector of the second argument: Falsity(x)(y) = y.
var Falsity = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return y
	})
})

// Y is the fixed-point combinator: Y(f) reduces to f(Y(f)). The
// self-application step is declared as a native closure and invoked once
// directly; the applications inside it are deferred, so construction builds
// only a suspended value and never recurses.
var Y = NewExpression(func(f Expression) Expression {
	w := func(x Expression) Expression {
		return f.Apply(x.Apply(x))
	}
	return w(NewExpression(w))
})

// I is the identity combinator: I(x) = x. It doubles as the dummy argument of
// the forcing convention.
var I = NewExpression(func(x Expression) Expression {
	return x
})

// K is the constant combinator: K(x)(y) = x.
var K = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return x
	})
})

// S is the substitution combinator: S(x)(y)(z) = x(z)(y(z)).
var S = NewExpression(func(x Expression) Expression {
	return NewExpression(func(y Expression) Expression {
		return NewExpression(func(z Expression) Expression {
			return x.Apply(z).Apply(y.Apply(z))
		})
	})
})

// Iota is the iota combinator: Iota(f) = f(S)(K). S and K are derivable from
// Iota alone but are also provided directly.
var Iota = NewExpression(func(f Expression) Expression {
	return f.Apply(S).Apply(K)
})

// Succ is the successor of a Church numeral: Succ(n) = λf x. f(n(f)(x)).
var Succ = NewExpression(func(n Expression) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			return f.Apply(n.Apply(f).Apply(x))
		})
	})
})

// Pred is the predecessor of a Church numeral, via the pair-threading trick.
// It saturates: Pred of the zero numeral is the zero numeral.
var Pred = NewExpression(func(n Expression) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			shift := NewExpression(func(g Expression) Expression {
				return NewExpression(func(h Expression) Expression {
					return h.Apply(g.Apply(f))
				})
			})
			return n.Apply(shift).
				Apply(NewExpression(func(y Expression) Expression { return x })).
				Apply(NewExpression(func(y Expression) Expression { return y }))
		})
	})
})

// Add adds Church numerals: Add(n)(m) = n(Succ)(m).
var Add = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return n.Apply(Succ).Apply(m)
	})
})

// Sub subtracts Church numerals: Sub(n)(m) = m(Pred)(n). Saturates at zero
// because Pred does.
var Sub = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return m.Apply(Pred).Apply(n)
	})
})

// Mult multiplies Church numerals: Mult(n)(m) = n(Add(m))(zero).
var Mult = NewExpression(func(n Expression) Expression {
	return NewExpression(func(m Expression) Expression {
		return n.Apply(Add.Apply(m)).Apply(ChurchEncode(0))
	})
})

// IsZero reduces to Truth iff n is the zero numeral: IsZero(n) = n(λx. Falsity)(Truth).
var IsZero = NewExpression(func(n Expression) Expression {
	return n.Apply(NewExpression(func(x Expression) Expression {
		return Falsity
	})).Apply(Truth)
})

// Cons builds a Scott list cell: Cons(a)(b) is a selector that invokes its
// handler with a then b.
var Cons = NewExpression(func(a Expression) Expression {
	return NewExpression(func(b Expression) Expression {
		return NewExpression(func(f Expression) Expression {
			return f.Apply(a).Apply(b)
		})
	})
})

// Car projects the head of a Scott list cell.
var Car = NewExpression(func(p Expression) Expression {
	return p.Apply(NewExpression(func(x Expression) Expression {
		return NewExpression(func(y Expression) Expression {
			return x
		})
	}))
})

// Cdr projects the tail of a Scott list cell.
var Cdr = NewExpression(func(p Expression) Expression {
	return p.Apply(NewExpression(func(x Expression) Expression {
		return NewExpression(func(y Expression) Expression {
			return y
		})
	}))
})

// EmptyList is the Scott empty list: it ignores the handler and selects the
// first of the next two arguments, so IsEmpty's probe leaves Truth standing.
var EmptyList = NewExpression(func(f Expression) Expression {
	return NewExpression(func(x Expression) Expression {
		return NewExpression(func(y Expression) Expression {
			return x
		})
	})
})

// IsEmpty reduces to Truth exactly when l has the empty-list shape, Falsity
// when l is a Cons cell.
var IsEmpty = NewExpression(func(l Expression) Expression {
	return l.Apply(NewExpression(func(x Expression) Expression {
		return NewExpression(func(y Expression) Expression {
			return Falsity
		})
	}))
})
