package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Marker is the literal escape sequence the scan looks for.
const Marker = `\n`

const (
	windowHeader = "\n=== Lines %d-%d ===\n"
	scanHeader   = "\n=== Found literal backslash-n ==="
)

// Match is one line that contains at least one Marker.
type Match struct {
	Line  int    // 1-based
	Text  string // full line text
	Count int    // occurrences of Marker in the line
}

// ReportTotal writes the number of lines.
func ReportTotal(w io.Writer, lines []string) {
	fmt.Fprintf(w, "Total lines: %d\n", len(lines))
}

// ReportWindow writes lines[start:end] with 1-based numbers, each cut to
// width runes and quoted. end is clamped to len(lines). It returns the
// number of lines written; nothing, not even the header, is written for an
// empty window.
func ReportWindow(w io.Writer, lines []string, start, end, width int) int {
	lo, hi := start, end
	if lo < 0 {
		lo = 0
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo >= hi {
		return 0
	}

	fmt.Fprintf(w, windowHeader, start, end)
	for i := lo; i < hi; i++ {
		fmt.Fprintf(w, "%d: %s\n", i+1, Repr(head(lines[i], width)))
	}
	return hi - lo
}

// FindEscapedNewlines returns every line containing Marker, in file order.
func FindEscapedNewlines(lines []string) []Match {
	var matches []Match
	for i, line := range lines {
		if n := strings.Count(line, Marker); n > 0 {
			matches = append(matches, Match{Line: i + 1, Text: line, Count: n})
		}
	}
	return matches
}

// ScanForEscapedNewlines reports every line holding a literal escape
// marker, each at most once. If content holds no marker nothing is
// written.
func ScanForEscapedNewlines(w io.Writer, content string, lines []string, width int) []Match {
	if !strings.Contains(content, Marker) {
		return nil
	}

	fmt.Fprintln(w, scanHeader)
	matches := FindEscapedNewlines(lines)
	for _, m := range matches {
		fmt.Fprintf(w, "Line %d: %s\n", m.Line, Repr(head(m.Text, width)))
	}
	return matches
}
