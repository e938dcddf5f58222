package powerset

import (
	"math/bits"
	"reflect"
	"testing"
)

func TestWideMatchesNarrow(t *testing.T) {
	xs := []int{1, 2, 3, 4}

	narrow, err := Of(xs...)
	if err != nil {
		t.Fatal(err)
	}
	wide := NewWide[int](Slice[int](xs))

	for step := 0; ; step++ {
		sn, okn := narrow.Next()
		sw, okw := wide.Next()
		if okn != okw {
			t.Fatalf("step %d: narrow ok=%v, wide ok=%v", step, okn, okw)
		}
		if !okn {
			break
		}
		if !reflect.DeepEqual(sn.Elements(), sw.Elements()) {
			t.Errorf("step %d: narrow %v, wide %v", step, sn.Elements(), sw.Elements())
		}
		if sn.Len() != sw.Len() {
			t.Errorf("step %d: narrow Len %d, wide Len %d", step, sn.Len(), sw.Len())
		}
	}

	for i := 0; i < 3; i++ {
		if _, ok := wide.Next(); ok {
			t.Errorf("wide enumerator produced a subset after exhaustion")
		}
	}
}

func TestWideLong(t *testing.T) {
	// 200 elements overflow the word-sized mask counter, but not the
	// bit set one.
	e := NewWide[int](sized{200})

	for k := 0; k < 32; k++ {
		s, ok := e.Next()
		if !ok {
			t.Fatalf("wide enumerator exhausted at step %d", k)
		}
		if s.Len() != bits.OnesCount(uint(k)) {
			t.Errorf("step %d: Len %d, expected %d", k, s.Len(), bits.OnesCount(uint(k)))
		}
		for i := 0; i < 8; i++ {
			if s.Has(i) != (k>>uint(i)&1 == 1) {
				t.Errorf("step %d: Has(%d) disagrees with the mask", k, i)
			}
		}
		if s.Has(199) || s.Has(200) {
			t.Errorf("step %d: member beyond the low masks", k)
		}
	}
}

func TestWideEmpty(t *testing.T) {
	e := NewWide[string](Slice[string](nil))

	s, ok := e.Next()
	if !ok {
		t.Fatal("the powerset of the empty set is not empty")
	}
	if s.Len() != 0 {
		t.Errorf("expected the empty subset, got %v", s.Elements())
	}
	for i := 0; i < 3; i++ {
		if _, ok := e.Next(); ok {
			t.Errorf("more than one subset of the empty set")
		}
	}
}

func TestWideSnapshots(t *testing.T) {
	xs := []string{"a", "b"}
	e := NewWide[string](Slice[string](xs))

	// Advancing the enumerator must not disturb already produced
	// subsets.
	produced := []WideSubset[string]{}
	e.ForEach(func(s WideSubset[string]) {
		produced = append(produced, s)
	})

	expected := [][]string{{}, {"a"}, {"b"}, {"a", "b"}}
	for k, s := range produced {
		if !reflect.DeepEqual(s.Elements(), expected[k]) {
			t.Errorf("step %d: %v, expected %v", k, s.Elements(), expected[k])
		}
	}
}
