/*
Package compare provides comparator factories for sorting sequences.

All factories produce three-way comparators with cmp.Compare semantics: a
negative result orders a before b, zero treats them as equal, positive
orders b first. Comparators compose: Chain builds multi-key orderings,
Reversed flips any comparator.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package compare
