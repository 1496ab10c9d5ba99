package seqs

import "errors"

// ErrInvalidArgument reports a malformed construction parameter, such as a
// negative Tee count or a non-positive ISlice step. Constructors return it
// (wrapped with context) at construction time rather than failing on the
// first pull.
var ErrInvalidArgument = errors.New("invalid argument")
