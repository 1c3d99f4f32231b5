package fshelp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// GetReader returns a line reader over an existing file. ok is false, with a
// nil error, when the file does not exist. The caller must close the reader.
func (h *Helper) GetReader(path string) (reader *LineReader, ok bool, err error) {
	file, ok, err := h.tryOpen(path, os.O_RDONLY)
	if err != nil || !ok {
		return nil, ok, err
	}

	return newLineReader(file), true, nil
}

// GetFileAsLines returns every line of the file at path.
func (h *Helper) GetFileAsLines(path string) (lines []string, err error) {
	reader, ok, err := h.GetReader(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("read", path)
	}

	defer func() {
		if closeErr := reader.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", path, closeErr)
		}
	}()

	lines = []string{}
	for {
		line, readErr := reader.ReadLine()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, readErr)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GetFileAsString returns the lines of the file glued together with no
// separator, so line breaks are dropped.
func (h *Helper) GetFileAsString(path string) (string, error) {
	lines, err := h.GetFileAsLines(path)
	if err != nil {
		return "", err
	}

	return strings.Join(lines, ""), nil
}

// GetFileAsStringFormatted returns the lines of the file joined by "\n",
// with no trailing newline.
func (h *Helper) GetFileAsStringFormatted(path string) (string, error) {
	lines, err := h.GetFileAsLines(path)
	if err != nil {
		return "", err
	}

	return strings.Join(lines, "\n"), nil
}
