package lambda

import "testing"

// decodeToSlice collects every element a Scott decode emits, in order.
func decodeToSlice(list Expression) []Expression {
	var out []Expression
	ScottDecode(list, func(e Expression) {
		out = append(out, e)
	})
	return out
}

func TestScottEncodeEmptyIsEmptyList(t *testing.T) {
	list := ScottEncode(nil)
	if !decodeBool(t, IsEmpty.Apply(list)) {
		t.Fatal("encoding an empty sequence should yield the empty list shape")
	}
	if got := decodeToSlice(list); len(got) != 0 {
		t.Fatalf("decoding the empty list emitted %d elements, want 0", len(got))
	}
}

func TestScottRoundTripPreservesCountAndOrder(t *testing.T) {
	// Elements are opaque to the codec; distinguishable Church numerals let
	// the test observe order.
	for size := 0; size <= 8; size++ {
		want := make([]uint, size)
		elems := make([]Expression, size)
		for i := range elems {
			want[i] = uint(i * 3)
			elems[i] = ChurchEncode(want[i])
		}

		got := decodeToSlice(ScottEncode(elems))
		if len(got) != size {
			t.Fatalf("size %d: decoded %d elements, want %d", size, len(got), size)
		}
		for i, e := range got {
			wantChurch(t, e, want[i])
		}
	}
}

func TestScottEncodePreservesHeadAndTail(t *testing.T) {
	elems := []Expression{ChurchEncode(7), ChurchEncode(2)}
	list := ScottEncode(elems)
	wantChurch(t, Car.Apply(list), 7)
	wantChurch(t, Car.Apply(Cdr.Apply(list)), 2)
	if !decodeBool(t, IsEmpty.Apply(Cdr.Apply(Cdr.Apply(list)))) {
		t.Fatal("the tail past the last element should be the empty shape")
	}
}

func TestScottDecodeEmitsBeforeRecursing(t *testing.T) {
	// The sink must see each head before the decoder walks the tail, so a
	// sink that only records arrival order observes the original sequence.
	list := ScottEncode([]Expression{
		ChurchEncode(1), ChurchEncode(2), ChurchEncode(3),
	})
	var seen []uint
	ScottDecode(list, func(e Expression) {
		seen = append(seen, ChurchDecode(e))
	})
	want := []uint{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("emitted %d elements, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("element %d decoded to %d, want %d", i, seen[i], want[i])
		}
	}
}
