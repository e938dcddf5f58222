package powerset

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
)

func TestFprint(t *testing.T) {
	color.NoColor = true

	e, err := Of("a", "b", "c", "d")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Fprint(&buf, e, true); err != nil {
		t.Fatal(err)
	}

	goldie.New(t).Assert(t, t.Name(), buf.Bytes())
}

func TestFprintWideAgrees(t *testing.T) {
	color.NoColor = true

	xs := []string{"a", "b", "c"}

	narrow, err := Of(xs...)
	if err != nil {
		t.Fatal(err)
	}
	wide := NewWide[string](Slice[string](xs))

	var bn, bw bytes.Buffer
	if err := Fprint(&bn, narrow, true); err != nil {
		t.Fatal(err)
	}
	if err := FprintWide(&bw, wide, true); err != nil {
		t.Fatal(err)
	}

	if bn.String() != bw.String() {
		t.Errorf("narrow and wide renderings disagree:\n%s\n%s", bn.String(), bw.String())
	}
}
