package inspect

import (
	"io"
	"unicode/utf8"

	"github.com/bft-labs/escscan/pkg/log"
)

// Options controls what an Inspector prints.
type Options struct {
	Encoding Encoding

	// WindowStart and WindowEnd are zero-based, end exclusive.
	WindowStart int
	WindowEnd   int

	// WindowWidth and MatchWidth cap the runes shown per line.
	WindowWidth int
	MatchWidth  int
}

// DefaultOptions returns the window around line 212 used to chase the
// original corruption.
func DefaultOptions() Options {
	return Options{
		Encoding:    UTF8,
		WindowStart: 209,
		WindowEnd:   216,
		WindowWidth: 100,
		MatchWidth:  200,
	}
}

// Summary describes one completed inspection.
type Summary struct {
	Path        string
	Lines       int
	Window      int
	Matches     []Match
	Occurrences int
}

// Inspector runs the load, total, window, scan sequence against a file and
// writes the human-readable report to out.
type Inspector struct {
	opts   Options
	out    io.Writer
	logger log.Logger
}

// New creates an Inspector. A nil logger discards diagnostics.
func New(out io.Writer, opts Options, logger log.Logger) *Inspector {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Inspector{opts: opts, out: out, logger: logger}
}

// Run inspects path once. A *FileAccessError is returned before anything is
// written if the file cannot be read.
func (in *Inspector) Run(path string) (Summary, error) {
	content, err := Load(path, in.opts.Encoding)
	if err != nil {
		return Summary{}, err
	}
	lines := SplitLines(content)
	in.logger.Debug("loaded file",
		log.String("path", path),
		log.String("encoding", string(in.opts.Encoding)),
		log.Int("chars", utf8.RuneCountInString(content)),
	)

	ReportTotal(in.out, lines)
	window := ReportWindow(in.out, lines, in.opts.WindowStart, in.opts.WindowEnd, in.opts.WindowWidth)
	matches := ScanForEscapedNewlines(in.out, content, lines, in.opts.MatchWidth)

	sum := Summary{Path: path, Lines: len(lines), Window: window, Matches: matches}
	for _, m := range matches {
		sum.Occurrences += m.Count
	}
	in.logger.Info("inspection complete",
		log.String("path", path),
		log.Int("lines", sum.Lines),
		log.Int("matched_lines", len(matches)),
		log.Int("occurrences", sum.Occurrences),
	)
	return sum, nil
}
