package fshelp

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("file not found")

// NotFoundError reports an operation that needed an existing file.
type NotFoundError struct {
	Op   string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: file does not exist", e.Op, e.Path)
}

// Is reports whether target is ErrNotFound or fs.ErrNotExist.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == fs.ErrNotExist
}

func notFound(op, path string) *NotFoundError {
	return &NotFoundError{Op: op, Path: path}
}
