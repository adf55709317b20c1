/*
Package segment provides the backing collection type for braids.

A Segment is one ordered, mutable, resizable run of elements. Segments have no
identity of their own; a braid addresses them solely by their position in its
segment list. All positional parameters are segment-local offsets.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segment
