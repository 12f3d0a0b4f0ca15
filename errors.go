package ot

import "errors"

// The three error kinds a caller of this package can receive. None of them
// are recovered internally; every operation-pair case in Compose and
// Transform is exhaustively enumerated, so there is no fourth kind.
var (
	// ErrBadTextLength is returned by Apply when the input text's UTF-16
	// length does not equal the changeset's FromLen.
	ErrBadTextLength = errors.New("ot: text length does not match changeset FromLen")

	// ErrUncomposable is returned by Compose when a.ToLen() != b.FromLen().
	ErrUncomposable = errors.New("ot: changesets are not composable")

	// ErrUncombinable is returned by Transform when a.FromLen() != b.FromLen().
	ErrUncombinable = errors.New("ot: changesets do not share a base length")
)
