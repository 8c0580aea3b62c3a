package lambda

// ScottEncode folds a sequence of Expressions right-to-left with Cons, seeded
// by EmptyList, preserving order. An empty slice yields EmptyList unchanged.
// Elements are opaque and never inspected.
func ScottEncode(elems []Expression) Expression {
	list := EmptyList
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons.Apply(elems[i]).Apply(list)
	}
	return list
}

// ScottDecode walks a Scott-encoded list and passes each element to sink in
// list order. The host cannot pattern-match the Scott shape directly, so a
// stepper Expression is driven through the fixed-point combinator: at each
// step it probes IsEmpty(l); on the empty shape it stops (the terminal value
// is discardable), otherwise it writes Car(l) to sink strictly before
// recursing on Cdr(l), which guarantees left-to-right emission. The sink
// capture is the single point where native mutation leaks into calculus
// evaluation, and it is exclusive to this call.
//
// Terminates for any finite list produced by ScottEncode; a hand-built cyclic
// list diverges.
func ScottDecode(list Expression, sink func(Expression)) {
	step := NewExpression(func(f Expression) Expression {
		return NewExpression(func(l Expression) Expression {
			return IsEmpty.call(l).
				call(EmptyList).
				call(NewExpression(func(next Expression) Expression {
					sink(Car.call(l))
					return f.call(Cdr.call(l)).call(next)
				}))
		})
	})
	Y.call(step).call(list).call(I).call(I)
}
