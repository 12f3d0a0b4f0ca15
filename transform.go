package ot

// Transform reconciles two concurrent changesets a and b issued against the
// same base document, returning (aPrime, bPrime) such that
// Apply(aPrime, Apply(b, text)) equals Apply(bPrime, Apply(a, text)) for
// every text with utf16 length a.FromLen(). Transform fails with
// ErrUncombinable when a.FromLen() != b.FromLen().
//
// Transform is not commutative: swapping the arguments swaps aPrime and
// bPrime, but a's Add operations are given priority over b's when both
// insert at the same position, so transform(a, b) and transform(b, a)
// produce related but not simply swapped results in the concurrent-insert
// case.
func Transform(a, b Changeset) (aPrime, bPrime Changeset, err error) {
	if a.FromLen() != b.FromLen() {
		return Changeset{}, Changeset{}, ErrUncombinable
	}

	var outA, outB builder
	left := newCursor(a.ops)
	right := newCursor(b.ops)

	for !left.done() || !right.done() {
		if !left.done() {
			if ad, ok := left.head().(Add); ok {
				outA.add(ad.Value)
				outB.keep(ad.Len())
				left.pop()
				continue
			}
		}
		if !right.done() {
			if ad, ok := right.head().(Add); ok {
				outA.keep(ad.Len())
				outB.add(ad.Value)
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
				outA.keep(n)
				outB.keep(n)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			case Remove:
				n := min(lo.N, ro.N)
				outB.remove(n)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			}
		case Remove:
			switch ro := r.(type) {
			case Keep:
				n := min(lo.N, ro.N)
				outA.remove(n)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			case Remove:
				n := min(lo.N, ro.N)
				left.shrinkOrPop(n)
				right.shrinkOrPop(n)
			}
		}
	}
	return outA.changeset(), outB.changeset(), nil
}
