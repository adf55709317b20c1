package segfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/braid"
	"github.com/npillmayer/braid/segment"
)

// Some constants for segment size defaults
const (
	tenKb     = 10240
	hundredKb = 1024000
)

// Options configure Load. The zero value is valid.
type Options struct {
	// SegmentSize is the number of lines per segment. 0 lets Load pick a
	// default based on file size.
	SegmentSize int
	// Progress optionally receives one Progress event per loaded segment
	// plus a final event with Done set. Load does not close the caster;
	// ownership stays with the caller.
	Progress *caster.Caster
}

// Progress describes the state of a load operation.
type Progress struct {
	Segment int  // index of the segment just completed
	Lines   int  // total lines loaded so far
	Done    bool // set on the final event
}

// Load reads a text file and returns it as a braid of line segments.
//
// Each line becomes one element; lines are grouped into segments of
// opts.SegmentSize. The resulting braid owns all segments.
func Load(name string, opts Options) (*braid.Braid[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("segfile: not a regular file: %s", name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	segSize := opts.SegmentSize
	if segSize <= 0 {
		segSize = defaultSegmentSize(fi.Size())
	}
	tracer().Debugf("segfile: loading %s with %d lines per segment", name, segSize)

	var segs []*segment.Segment[string]
	var lines []string
	total := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		total++
		if len(lines) >= segSize {
			segs = append(segs, segment.FromSlice(lines))
			publish(opts.Progress, Progress{Segment: len(segs) - 1, Lines: total})
			lines = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("segfile: error reading %s: %w", name, err)
	}
	if len(lines) > 0 {
		segs = append(segs, segment.FromSlice(lines))
		publish(opts.Progress, Progress{Segment: len(segs) - 1, Lines: total})
	}
	publish(opts.Progress, Progress{Segment: len(segs) - 1, Lines: total, Done: true})
	tracer().Infof("segfile: loaded %d line(s) in %d segment(s) from %s", total, len(segs), name)
	return braid.New(segs...), nil
}

func publish(cast *caster.Caster, p Progress) {
	if cast == nil {
		return
	}
	cast.Pub(p)
}

// defaultSegmentSize picks a lines-per-segment target from the file size.
func defaultSegmentSize(size int64) int {
	switch {
	case size < 1024:
		return 16
	case size < tenKb:
		return 64
	case size < hundredKb:
		return 256
	default:
		return 1024
	}
}
