package inspect

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEncoding is returned when a decoding policy name is not recognised.
	ErrUnknownEncoding = errors.New("inspect: unknown encoding")

	// ErrNotRegular is wrapped by FileAccessError when the path is a directory,
	// device, or other non-regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// FileAccessError reports that the target file could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("inspect: cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
