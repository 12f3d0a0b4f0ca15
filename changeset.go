package ot

// Changeset is an ordered, canonical sequence of operations: no two
// adjacent operations share a variant, and no operation has zero length.
// Changesets are immutable values; there is no mutation API. Construct one
// from a raw operation list with New, or obtain one from Compose,
// Transform, or otjson.Decode.
type Changeset struct {
	ops []Operation
}

// New builds a Changeset from a raw operation list, canonicalizing it by
// folding chain over the list in order. Zero-length operations in ops are
// dropped.
func New(ops ...Operation) Changeset {
	return Changeset{ops: chainAll(ops)}
}

// Operations returns the changeset's canonical operation sequence. The
// returned slice must not be mutated by the caller.
func (c Changeset) Operations() []Operation {
	return c.ops
}

// FromLen is the required input length: the sum of the lengths of every
// operation that is not Add.
func (c Changeset) FromLen() int {
	n := 0
	for _, op := range c.ops {
		if _, ok := op.(Add); !ok {
			n += op.Len()
		}
	}
	return n
}

// ToLen is the resulting output length: the sum of the lengths of every
// operation that is not Remove.
func (c Changeset) ToLen() int {
	n := 0
	for _, op := range c.ops {
		if _, ok := op.(Remove); !ok {
			n += op.Len()
		}
	}
	return n
}

// IsNoop reports whether c leaves its input unchanged: it is either empty
// or a single Keep.
func (c Changeset) IsNoop() bool {
	switch len(c.ops) {
	case 0:
		return true
	case 1:
		_, ok := c.ops[0].(Keep)
		return ok
	default:
		return false
	}
}

// Equal reports whether c and other have identical canonical operation
// sequences. Two changesets that denote the same text transformation on
// every valid input always have equal canonical sequences, so this is
// equivalent to semantic equality.
func (c Changeset) Equal(other Changeset) bool {
	if len(c.ops) != len(other.ops) {
		return false
	}
	for i, op := range c.ops {
		if op != other.ops[i] {
			return false
		}
	}
	return true
}

// builder accumulates operations through chain as Compose and Transform
// walk their inputs, one builder per output changeset.
type builder struct {
	ops []Operation
}

func (b *builder) keep(n int) {
	if n <= 0 {
		return
	}
	b.ops = chain(b.ops, Keep{N: n})
}

func (b *builder) add(s string) {
	if s == "" {
		return
	}
	b.ops = chain(b.ops, Add{Value: s})
}

func (b *builder) remove(n int) {
	if n <= 0 {
		return
	}
	b.ops = chain(b.ops, Remove{N: n})
}

func (b *builder) changeset() Changeset {
	return Changeset{ops: b.ops}
}
