package ot

import "unicode/utf16"

// Operation is one instruction in a Changeset: keep a run of the input,
// insert literal text, or remove a run of the input. Lengths are measured
// in UTF-16 code units throughout, so they agree with the offsets a typical
// text editor surface reports.
type Operation interface {
	isOperation()
	Len() int
}

type (
	// Keep copies the next N UTF-16 code units of the input to the output
	// unchanged.
	Keep struct {
		N int
	}
	// Add inserts Value into the output without consuming any input.
	Add struct {
		Value string
	}
	// Remove advances the input cursor by N UTF-16 code units, emitting
	// nothing.
	Remove struct {
		N int
	}
)

func (Keep) isOperation()   {}
func (Add) isOperation()    {}
func (Remove) isOperation() {}

// Len reports the operation's length in UTF-16 code units: the run length
// for Keep/Remove, the code-unit count of Value for Add.
func (op Keep) Len() int   { return op.N }
func (op Add) Len() int    { return utf16Len(op.Value) }
func (op Remove) Len() int { return op.N }

// utf16Len returns the UTF-16 code-unit length of s. This is the length
// unit used everywhere in this package; it is deliberately not the rune
// count or byte length.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// utf16Slice returns the UTF-16 code units [lo:hi) of s re-encoded as a
// string. lo and hi must land on code-unit boundaries; slicing inside a
// surrogate pair is a caller error.
func utf16Slice(s string, lo, hi int) string {
	if lo == 0 && hi == utf16Len(s) {
		return s
	}
	units := utf16.Encode([]rune(s))
	return string(utf16.Decode(units[lo:hi]))
}
