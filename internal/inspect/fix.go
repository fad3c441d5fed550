package inspect

import (
	"bytes"
	"fmt"
	"os"
)

// FixedSuffix is appended to the target path to name the repaired copy.
const FixedSuffix = ".fixed"

// Fix replaces every literal escape marker with a real newline and returns
// the repaired bytes and the number of replacements. It works on raw bytes:
// the marker is ASCII in every supported encoding, so all other bytes,
// including ones that do not decode, are kept as they are.
func Fix(content []byte) ([]byte, int) {
	marker := []byte(Marker)
	n := bytes.Count(content, marker)
	if n == 0 {
		return content, 0
	}
	return bytes.ReplaceAll(content, marker, []byte("\n")), n
}

// FixFile reads path, repairs it, and writes the result next to it with
// FixedSuffix. The original file is left untouched. When there is nothing
// to repair no file is written and the returned path is empty.
func FixFile(path string) (string, int, error) {
	content, err := readFile(path)
	if err != nil {
		return "", 0, err
	}
	fixed, n := Fix(content)
	if n == 0 {
		return "", 0, nil
	}
	out, err := WriteFixed(path, fixed)
	if err != nil {
		return "", n, err
	}
	return out, n, nil
}

// WriteFixed writes data to path+FixedSuffix atomically (temp file, then
// rename) and returns the written path.
func WriteFixed(path string, data []byte) (string, error) {
	out := path + FixedSuffix
	tmp := out + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, out); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return out, nil
}
