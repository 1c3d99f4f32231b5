package fshelp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/spf13/afero"
)

// LineReader reads a file one line at a time.
type LineReader struct {
	file    afero.File
	scanner *bufio.Scanner
}

func newLineReader(file afero.File) *LineReader {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	scanner.Split(scanLines)

	return &LineReader{
		file:    file,
		scanner: scanner,
	}
}

// ReadLine returns the next line without its terminator. Lines end at "\n",
// "\r\n" or a lone "\r". It returns io.EOF once no lines remain.
func (r *LineReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// scanLines is a bufio.SplitFunc like bufio.ScanLines that also ends a line
// at a lone '\r'. A final line without a terminator is still returned.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// Need one more byte to tell "\r" from "\r\n".
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Name returns the path of the underlying file.
func (r *LineReader) Name() string {
	return r.file.Name()
}

// Close releases the underlying file.
func (r *LineReader) Close() error {
	return r.file.Close()
}

// TextWriter writes text to a file through a buffer.
type TextWriter struct {
	file   afero.File
	writer *bufio.Writer
}

func newTextWriter(file afero.File) *TextWriter {
	return &TextWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}
}

// Write buffers text for the underlying file.
func (w *TextWriter) Write(text string) error {
	if _, err := w.writer.WriteString(text); err != nil {
		return fmt.Errorf("failed to write to %s: %w", w.file.Name(), err)
	}
	return nil
}

// Name returns the path of the underlying file.
func (w *TextWriter) Name() string {
	return w.file.Name()
}

// Close flushes buffered text and releases the underlying file.
// The file is released even when the flush fails.
func (w *TextWriter) Close() error {
	flushErr := w.writer.Flush()
	closeErr := w.file.Close()

	if flushErr != nil {
		return fmt.Errorf("failed to flush %s: %w", w.file.Name(), flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", w.file.Name(), closeErr)
	}
	return nil
}
