/*
Package seqs provides lazy, restartable, possibly infinite sequences built on
Go 1.23+ iterators (iter.Seq).

A sequence never stores a cursor. Every range over it (or every iter.Pull)
starts an independent traversal, so the same sequence value can be consumed
any number of times and always reproduces the same elements, as long as the
functions handed to it are free of side effects.

The package is organised as:

  - **Constructors**: [Nil], [Pure], [Of], [Range], [RangeStep], [Upto],
    [Repeat], [Replicate], [Iterate], [Track], [FromPull].
  - **Operators** (lazy, never consume their input eagerly): [Map], [Take],
    [Drop], [TakeWhile], [DropWhile], [TakeWhere], [DropWhere], [Cons],
    [Snoc], [Concat], [Append], [Mconcat], [FlatMap], [Cycle], [Reverse],
    [ZipWith], [Zip], [Pipe].
  - **Terminal operations** (eager): [Reduce], [Foldr], [ForEach], [Head],
    [IsEmpty], [Max], [Min], [SafeMax], [SafeMin], [Equal], [Count], [Sum].
  - **Staging**: [Builder] accumulates values and nested sequences and freezes
    them into a sequence.

# Laziness

Operators return immediately; work happens only while a consumer pulls.

	// Only 3, 4 are ever produced; Range never walks past 4.
	for v := range seqs.Take(seqs.Drop(seqs.Upto(10), 3), 2) {
		fmt.Println(v)
	}

# Preconditions

[Reverse], [Foldr] and [Snoc] need a finite source to terminate. [Equal]
needs at least one finite side. These are caller obligations and are not
checked at run time.

# Errors

[Max] and [Min] on an empty sequence return an error wrapping
[ErrIllegalArgument]. Using a [Builder] after [Builder.Build] reports
[ErrAlreadyBuilt].
*/
package seqs
