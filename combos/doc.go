/*
Package combos provides the combinatoric sequence generators: cartesian
[Product], [Permutations], [Combinations] and [CombinationsWithReplacement].

Unlike the streaming adapters in package seqs, every generator here first
materializes its input into an indexable snapshot at construction time — the
algorithms need repeatable random access to walk an index vector through its
lexicographic successors. Input sequences are consumed exactly once, when the
generator is constructed, and must be finite. Emitted selections are freshly
allocated slices that callers may retain.

Ordering follows the snapshot: Product iterates in odometer order (rightmost
source varying fastest); Permutations, Combinations and
CombinationsWithReplacement emit in lexicographic order of snapshot indices.
Elements are treated by position, not value, so duplicate input elements
produce duplicate selections.

Invalid sizes (negative r, negative repeat) return an error wrapping
[seqs.ErrInvalidArgument] at construction time.
*/
package combos
