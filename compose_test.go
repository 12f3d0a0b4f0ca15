package ot

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestComposeConcreteScenario(t *testing.T) {
	a := New(
		Keep{N: 5},
		Add{Value: "asdf"},
		Remove{N: 3},
		Keep{N: 4},
		Add{Value: "zxcv"},
	)
	intermediate, err := Apply(a, "qwerty poiu!")
	require.NoError(t, err)
	require.Equal(t, "qwertasdfoiu!zxcv", intermediate)

	b := New(
		Remove{N: 1},
		Keep{N: 2},
		Add{Value: " a"},
		Keep{N: 1},
		Add{Value: "e "},
		Keep{N: 3},
		Remove{N: 5},
		Add{Value: "ty"},
		Keep{N: 1},
		Remove{N: 4},
	)
	final, err := Apply(b, intermediate)
	require.NoError(t, err)
	require.Equal(t, "we are tasty!", final)

	ab, err := Compose(a, b)
	require.NoError(t, err)
	direct, err := Apply(ab, "qwerty poiu!")
	require.NoError(t, err)
	require.Equal(t, "we are tasty!", direct)
}

func TestComposeUncomposable(t *testing.T) {
	a := New(Keep{N: 5})
	b := New(Keep{N: 6})
	_, err := Compose(a, b)
	require.ErrorIs(t, err, ErrUncomposable)
}

func TestComposeEmptySideShortCircuit(t *testing.T) {
	// a is empty (FromLen=ToLen=0), so it can only compose on the left with
	// a b whose FromLen is also 0 — a pure insertion.
	a := New()
	b := New(Add{Value: "x"})
	c, err := Compose(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(b))

	// Symmetric case on the right: an empty changeset can only compose with
	// a left side whose ToLen is 0 — a pure removal.
	left := New(Remove{N: 3})
	c, err = Compose(left, New())
	require.NoError(t, err)
	require.True(t, c.Equal(left))
}

func TestComposeEmptySideStillChecksLength(t *testing.T) {
	a := New()
	b := New(Keep{N: 3})
	_, err := Compose(a, b)
	require.ErrorIs(t, err, ErrUncomposable)
}

func TestComposeEquivalenceProperty(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		s := randomAsciiText(r, 20)
		a := randomChangesetFor(r, s)
		afterA, err := Apply(a, s)
		require.NoError(t, err)
		require.Equal(t, a.ToLen(), len(utf16.Encode([]rune(afterA))))

		b := randomChangesetFor(r, afterA)
		afterB, err := Apply(b, afterA)
		require.NoError(t, err)

		ab, err := Compose(a, b)
		require.NoError(t, err)
		require.Equal(t, b.ToLen(), ab.ToLen())

		afterAB, err := Apply(ab, s)
		require.NoError(t, err)
		require.Equal(t, afterB, afterAB)
	}
}
