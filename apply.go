package ot

import (
	"strings"
	"unicode/utf16"
)

// Apply materializes c against text, returning the transformed string.
// text's UTF-16 length must equal c.FromLen(); otherwise Apply returns
// ErrBadTextLength.
func Apply(c Changeset, text string) (string, error) {
	units := utf16.Encode([]rune(text))
	if len(units) != c.FromLen() {
		return "", ErrBadTextLength
	}

	var out strings.Builder
	out.Grow(c.ToLen())
	pos := 0
	for _, op := range c.ops {
		switch o := op.(type) {
		case Keep:
			out.WriteString(string(utf16.Decode(units[pos : pos+o.N])))
			pos += o.N
		case Add:
			out.WriteString(o.Value)
		case Remove:
			pos += o.N
		}
	}
	return out.String(), nil
}

// Invert returns the changeset that undoes c, given the pre-image text c
// was built against: Apply(Invert(c, text), Apply(c, text)) reproduces
// text. Invert fails with ErrBadTextLength under the same precondition as
// Apply.
func Invert(c Changeset, text string) (Changeset, error) {
	units := utf16.Encode([]rune(text))
	if len(units) != c.FromLen() {
		return Changeset{}, ErrBadTextLength
	}

	var b builder
	pos := 0
	for _, op := range c.ops {
		switch o := op.(type) {
		case Keep:
			b.keep(o.N)
			pos += o.N
		case Add:
			b.remove(o.Len())
		case Remove:
			b.add(string(utf16.Decode(units[pos : pos+o.N])))
			pos += o.N
		}
	}
	return b.changeset(), nil
}
