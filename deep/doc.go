/*
Package deep implements a recursive structural copier.

Copy walks pointers, slices, arrays, maps and structs and reproduces the
structure with fresh storage. Values that know how to reconstruct themselves
implement Copier; the hook takes precedence over structural walking, so
composite containers (a braid, for instance) are rebuilt from independently
copied parts instead of being treated as opaque values.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package deep
