// Package otutil generates random canonical changesets for property-based
// tests against the Keep/Add/Remove operation model, with UTF-16 length
// accounting throughout.
package otutil

import (
	"math/rand"
	"unicode/utf16"

	ot "github.com/inkwell-dev/ot"
)

// RandomText returns a random string of the given UTF-16 length, built only
// from single-code-unit runes so callers never need to worry about landing
// a split in the middle of a surrogate pair.
func RandomText(r *rand.Rand, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	units := make([]uint16, length)
	for i := range units {
		units[i] = uint16(charset[r.Intn(len(charset))])
	}
	return string(utf16.Decode(units))
}

// RandomChangeset returns a random canonical changeset whose FromLen equals
// the UTF-16 length of base.
func RandomChangeset(r *rand.Rand, base string) ot.Changeset {
	total := utf16Len(base)
	var ops []ot.Operation
	consumed := 0
	for consumed < total {
		left := total - consumed
		n := 1
		if left > 1 {
			n = 1 + r.Intn(minInt(left-1, 20)+1)
		}
		switch {
		case r.Float64() < 0.2:
			ops = append(ops, ot.Add{Value: RandomText(r, 1+r.Intn(10))})
		case r.Float64() < 0.5:
			ops = append(ops, ot.Remove{N: n})
			consumed += n
		default:
			ops = append(ops, ot.Keep{N: n})
			consumed += n
		}
	}
	if r.Float64() < 0.3 {
		ops = append(ops, ot.Add{Value: RandomText(r, 1+r.Intn(10))})
	}
	return ot.New(ops...)
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
