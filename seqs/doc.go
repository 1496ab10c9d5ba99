/*
Package seqs provides a library of lazy, composable adapters over Go 1.23+
iterators (iter.Seq).

Every adapter accepts one or more sequences and returns a sequence, so
arbitrary pipelines compose without materializing intermediate collections:

  - **Sources**: [CountFrom], [Cycle], [Repeat], [RepeatN], [Range] — finite
    and infinite generators.
  - **Sequential combinators**: [Accumulate], [Chain], [Compress], [DropWhile],
    [TakeWhile], [FilterFalse], [ISlice], [GroupBy].
  - **Paired combinators**: [StarMap], [Zip], [ZipLongest], [ZipLongestN].
  - **Fan-out**: [Tee] splits one sequence into independently advancing
    sequences without re-querying the origin more than once per element.
  - **Sinks**: [First], [Last], [Any], [All], [Count], [Sum], [Reduce].

# Laziness

Adapters are pull-based: nothing is consumed from an upstream sequence until
the downstream consumer asks for the next element, so infinite sources are
safe to pass anywhere a bounded amount of output is ultimately requested
(e.g. via [Take] or [ISlice]).

# Error Handling

Constructors with parameter domains ([ISlice], [Tee]) validate eagerly and
return an error wrapping [ErrInvalidArgument] instead of deferring the failure
to the first pull. Caller-supplied functions (predicates, keys, reducers) are
invoked synchronously during iteration; anything they panic with propagates
unmodified to the pulling consumer.

# Concurrency

The package is single-threaded by contract. Adapters hold their cursor state
in closure locals and advance only when pulled; in particular, sibling
sequences returned by [Tee] share a buffer and must not be advanced from
multiple goroutines without external synchronization.
*/
package seqs
