package ot

// cursor walks an operation slice front-to-back using an index plus a
// mutable "carry" for the head element, so partially consuming an
// operation never rebuilds the slice. This keeps Compose and Transform
// linear in the number of operations instead of quadratic.
type cursor struct {
	ops []Operation
	idx int
	cur Operation // valid only when idx < len(ops)
}

func newCursor(ops []Operation) *cursor {
	c := &cursor{ops: ops}
	if len(ops) > 0 {
		c.cur = ops[0]
	}
	return c
}

// done reports whether every operation has been consumed. When done, the
// caller should treat the exhausted side as a Keep(0) sentinel: it never
// contributes to Add-priority matches. With matching input lengths, the
// other side has only operations left that the Add/Remove priority
// branches of Compose and Transform consume, so the sentinel is never
// paired with a Keep or Remove.
func (c *cursor) done() bool {
	return c.idx >= len(c.ops)
}

// head returns the cursor's current head, or a Keep(0) sentinel if
// exhausted.
func (c *cursor) head() Operation {
	if c.done() {
		return Keep{N: 0}
	}
	return c.cur
}

// pop discards the current head entirely and advances to the next
// operation.
func (c *cursor) pop() {
	c.idx++
	if c.idx < len(c.ops) {
		c.cur = c.ops[c.idx]
	}
}

// shrinkOrPop reduces a Keep or Remove head's remaining length by n,
// advancing to the next operation once it is fully consumed.
func (c *cursor) shrinkOrPop(n int) {
	switch o := c.cur.(type) {
	case Keep:
		if o.N == n {
			c.pop()
			return
		}
		c.cur = Keep{N: o.N - n}
	case Remove:
		if o.N == n {
			c.pop()
			return
		}
		c.cur = Remove{N: o.N - n}
	default:
		panic("ot: shrinkOrPop on non Keep/Remove head")
	}
}

// shrinkAddOrPop drops the first k UTF-16 code units from an Add head's
// payload, advancing to the next operation once the payload is exhausted.
func (c *cursor) shrinkAddOrPop(k int) {
	o, ok := c.cur.(Add)
	if !ok {
		panic("ot: shrinkAddOrPop on non Add head")
	}
	n := o.Len()
	if k == n {
		c.pop()
		return
	}
	c.cur = Add{Value: utf16Slice(o.Value, k, n)}
}
