package ot

// Compose combines a and b into a single changeset c such that for every
// text with utf16 length a.FromLen(), Apply(c, text) equals
// Apply(b, Apply(a, text)). Compose fails with ErrUncomposable when
// a.ToLen() != b.FromLen().
//
// The length precondition is checked before the empty-changeset
// short-circuit below, so an empty a or b with a mismatched length still
// fails rather than silently returning the other side.
func Compose(a, b Changeset) (Changeset, error) {
	if a.ToLen() != b.FromLen() {
		return Changeset{}, ErrUncomposable
	}
	if len(a.ops) == 0 {
		return b, nil
	}
	if len(b.ops) == 0 {
		return a, nil
	}

	var out builder
	left := newCursor(a.ops)
	right := newCursor(b.ops)

	for !left.done() || !right.done() {
		// A leading Remove on the left occurred before b observed the
		// text; it always survives untouched.
		if !left.done() {
			if rm, ok := left.head().(Remove); ok {
				out.remove(rm.N)
				left.pop()
				continue
			}
		}
		// A leading Add on the right did not exist when a was computed;
		// it always survives untouched.
		if !right.done() {
			if ad, ok := right.head().(Add); ok {
				out.add(ad.Value)
				right.pop()
				continue
			}
		}

		l, r := left.head(), right.head()
		switch lo := l.(type) {
		case Keep:
			switch ro := r.(type) {
			case Keep:
				n := min(lo.N, ro.N)
				out.keep(n)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			case Remove:
				n := min(lo.N, ro.N)
				out.remove(n)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			}
		case Add:
			switch ro := r.(type) {
			case Keep:
				k := min(lo.Len(), ro.N)
				out.add(utf16Slice(lo.Value, 0, k))
				left.shrinkAddOrPop(k)
				right.shrinkOrPop(k)
			case Remove:
				k := min(lo.Len(), ro.N)
				left.shrinkAddOrPop(k)
				right.shrinkOrPop(k)
			}
		}
	}
	return out.changeset(), nil
}
