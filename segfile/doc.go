/*
Package segfile loads text files as braids of line segments.

A loaded file becomes a Braid[string] with one element per line, grouped
into segments of a configurable size. Load is synchronous; clients
interested in loading progress may hand in a broadcaster and subscribe to
per-segment Progress events.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braid'
func tracer() tracing.Trace {
	return tracing.Select("braid")
}
