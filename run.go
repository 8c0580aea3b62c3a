package lambda

// RunOnIntegerSequence maps a native integer sequence through an arbitrary
// calculus program. Each input is Church-encoded in order, the encoded
// sequence is Scott-encoded into a single list Expression, the program is
// strictly applied to it, and the result is Scott-decoded and Church-decoded
// element by element into sink, preserving order.
//
// If program denotes a total function from Scott-list-of-Church-numerals to
// Scott-list-of-Church-numerals, the emitted sequence is exactly what
// lambda-calculus reduction produces, with the input's order and count. A
// program assuming a different shape gets best-effort behavior: no validation
// is performed, and an ill-formed recursive program blocks the calling thread
// indefinitely.
func RunOnIntegerSequence(input []uint, program Expression, sink func(uint)) {
	encoded := make([]Expression, len(input))
	for i, n := range input {
		encoded[i] = ChurchEncode(n)
	}
	ScottDecode(program.call(ScottEncode(encoded)), func(e Expression) {
		sink(ChurchDecode(e))
	})
}
