// Package inspect locates literal escape markers in text files.
//
// A literal escape marker is the two-character sequence backslash + "n"
// that ends up in a source file when a tool writes an escaped newline
// instead of a real one. The Inspector loads the file once, prints its
// line count and a fixed window of lines, and reports every line that
// contains the marker. Fix produces a repaired copy next to the original
// and Watch re-runs the inspection whenever the file changes.
package inspect
