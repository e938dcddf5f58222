package powerset

import (
	"fmt"
	"io"
)

// Fprint writes the remaining subsets of the enumeration to w, one per
// line, in mask order. When masks is set, every line is prefixed with
// the subset's binary membership mask, padded to the container's
// length.
func Fprint[T any](w io.Writer, e *Enumerator[T], masks bool) error {
	var err error
	e.ForEach(func(s Subset[T]) {
		if err != nil {
			return
		}
		if masks {
			_, err = fmt.Fprintf(w, "%s %s\n", colorize.Mask(fmt.Sprintf("%0*b", e.n, s.Mask())), s)
		} else {
			_, err = fmt.Fprintln(w, s)
		}
	})
	return err
}

// FprintWide is the Fprint equivalent for wide enumerators.
func FprintWide[T any](w io.Writer, e *WideEnumerator[T], masks bool) error {
	var err error
	e.ForEach(func(s WideSubset[T]) {
		if err != nil {
			return
		}
		if masks {
			_, err = fmt.Fprintf(w, "%s %s\n", colorize.Mask(wideMaskString(s)), s)
		} else {
			_, err = fmt.Fprintln(w, s)
		}
	})
	return err
}

func wideMaskString[T any](s WideSubset[T]) string {
	if s.n == 0 {
		return "0"
	}

	buf := make([]byte, s.n)
	for i := uint(0); i < s.n; i++ {
		if s.Has(int(i)) {
			buf[s.n-1-i] = '1'
		} else {
			buf[s.n-1-i] = '0'
		}
	}
	return string(buf)
}
