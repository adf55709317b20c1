/*
Package braid presents several independently owned collections as one
logical sequence.

Braids

A braid owns an ordered list of segments. Each segment is a mutable,
resizable run of elements, and the braid exposes the concatenation of all
segments as a single random-access sequence. Every positional operation is
routed to the segment holding the addressed element, with the global index
translated to a segment-local offset on each access.

Braids favor correctness over lookup speed: segment lengths change
independently under mutation, so no cumulative offsets are cached and the
index walk is linear in the number of segments. For use cases with a handful
of segments — the intended shape — this is not a concern.

Three groups of operations exist, with different mutation policies:

 1. Boundary and addressed-segment operations (Append, Prepend, PopFirst,
    PopLast, AppendAt, PrependAt) mutate owned segments in place. A segment
    emptied by PopFirst or PopLast is dropped from the segment list.

 2. Bulk operations (Map, Filter, Reduce, Splice, …) materialize a flat
    snapshot of all elements and derive their result from it. They never
    write back to owned segments, even when they look mutating (Splice).

 3. Enumeration acquires a fresh single-pass cursor yielding
    (segment index, element) pairs.

Braids assume exclusive, serialized access by one caller; concurrent use
must be guarded by the embedding application.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package braid

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
