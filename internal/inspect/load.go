package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names a decoding policy for the target file.
type Encoding string

const (
	// UTF8 decodes as UTF-8 and silently drops ill-formed byte sequences.
	UTF8 Encoding = "utf-8"
	// Latin1 decodes every byte as its ISO-8859-1 code point.
	Latin1 Encoding = "latin1"
	// Windows1252 decodes using the Windows-1252 code page.
	Windows1252 Encoding = "windows-1252"
)

var charmaps = map[Encoding]*charmap.Charmap{
	Latin1:      charmap.ISO8859_1,
	Windows1252: charmap.Windows1252,
}

// ParseEncoding normalises an encoding name. The empty string selects UTF8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Load reads the whole file at path and decodes it with enc.
// The file is closed before Load returns.
func Load(path string, enc Encoding) (string, error) {
	if _, err := ParseEncoding(string(enc)); err != nil {
		return "", err
	}
	b, err := readFile(path)
	if err != nil {
		return "", err
	}
	return Decode(b, enc)
}

// readFile returns the raw bytes of the regular file at path. Every failure
// is a *FileAccessError.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &FileAccessError{Path: path, Err: ErrNotRegular}
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return b, nil
}

// Decode converts raw bytes to text. Undecodable input never fails: with
// UTF8 ill-formed sequences are dropped, Latin1 maps every byte, and the
// five bytes Windows1252 leaves undefined become U+FFFD.
func Decode(b []byte, enc Encoding) (string, error) {
	enc, err := ParseEncoding(string(enc))
	if err != nil {
		return "", err
	}
	cm, ok := charmaps[enc]
	if !ok {
		return strings.ToValidUTF8(string(b), ""), nil
	}
	out, err := cm.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", enc, err)
	}
	return string(out), nil
}

// SplitLines splits content on newline characters. Empty content yields a
// single empty line and a trailing newline yields a trailing empty line.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}
