package lambda

// ChurchEncode converts a native unsigned integer into the Church numeral
// Expression "apply a supplied function n times to a supplied argument".
// n = 0 yields identity behavior on the inner argument.
func ChurchEncode(n uint) Expression {
	return NewExpression(func(f Expression) Expression {
		return NewExpression(func(x Expression) Expression {
			for i := uint(0); i < n; i++ {
				x = f.Apply(x)
			}
			return x
		})
	})
}

// ChurchDecode converts a Church numeral Expression back to a native unsigned
// integer. It strictly applies the numeral to a counting function that
// increments a captured counter and returns its argument unchanged, then
// forces the resulting chain with two strict applications of I. The counter's
// native width is assumed sufficient for the input; overflow is the caller's
// concern.
func ChurchDecode(e Expression) uint {
	var decoded uint
	count := NewExpression(func(x Expression) Expression {
		decoded++
		return x
	})
	e.call(count).call(I).call(I)
	return decoded
}
