package braid

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Braid2Dot outputs the segment structure of a braid in Graphviz DOT format
// (for debugging purposes).
//
// Elements are labeled with %v formatting, truncated to keep node labels
// readable.
func Braid2Dot[T any](b *Braid[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\t\"braid\" [shape=circle,style=filled,fillcolor=\"#a3d7e4\"];\n")
	if b != nil {
		for k, seg := range b.segments {
			label := fmt.Sprintf("#%d |%d|", k, seg.Len())
			fmt.Fprintf(w, "\t\"seg%d\" [label=\"%s\",shape=box,style=filled];\n", k, label)
			fmt.Fprintf(w, "\t\"braid\" -> \"seg%d\";\n", k)
			for i, v := range seg.All() {
				text := truncateLabel(fmt.Sprintf("%v", v))
				fmt.Fprintf(w, "\t\"seg%d_%d\" [label=\"%s\",shape=plaintext];\n", k, i, text)
				fmt.Fprintf(w, "\t\"seg%d\" -> \"seg%d_%d\";\n", k, k, i)
			}
		}
	}
	io.WriteString(w, "}\n")
}

// DumpSegments writes a per-segment console dump of a braid.
//
// With colored set, segment headers are highlighted using ANSI colors. The
// dump is width-aware when w is a terminal and falls back to a default
// line width otherwise.
func DumpSegments[T any](b *Braid[T], w io.Writer, colored bool) {
	width := 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 20 {
			width = tw
		}
	}
	header := color.New(color.FgBlue, color.Bold)
	if b == nil || len(b.segments) == 0 {
		fmt.Fprintln(w, "braid: <void>")
		return
	}
	for k, seg := range b.segments {
		title := fmt.Sprintf("segment #%d, %d element(s)", k, seg.Len())
		if colored {
			fmt.Fprintln(w, header.Sprint(title))
		} else {
			fmt.Fprintln(w, title)
		}
		line := "  "
		for _, v := range seg.Values() {
			item := fmt.Sprintf("%v ", v)
			if len(line)+len(item) > width {
				fmt.Fprintln(w, line)
				line = "  "
			}
			line += item
		}
		if len(line) > 2 {
			fmt.Fprintln(w, line)
		}
	}
}

func truncateLabel(s string) string {
	const maxLabel = 16
	if len(s) <= maxLabel {
		return s
	}
	return s[:maxLabel-1] + "…"
}
