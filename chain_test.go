package ot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChainIsSplitInvariant checks that feeding any order-preserving split
// of the same operation list through chain one element at a time produces
// the same canonical sequence as chaining the whole list at once.
func TestChainIsSplitInvariant(t *testing.T) {
	whole := []Operation{Keep{N: 2}, Keep{N: 3}, Add{Value: "a"}, Add{Value: "b"}, Add{Value: "c"}, Remove{N: 4}}

	var direct []Operation
	for _, op := range whole {
		direct = chain(direct, op)
	}

	var viaChainAll []Operation
	viaChainAll = chainAll(whole)

	require.Equal(t, direct, viaChainAll)
	require.Equal(t, []Operation{Keep{N: 5}, Add{Value: "abc"}, Remove{N: 4}}, direct)
}

func TestChainOnEmptySequence(t *testing.T) {
	seq := chain(nil, Keep{N: 1})
	require.Equal(t, []Operation{Keep{N: 1}}, seq)
}
