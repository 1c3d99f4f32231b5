package fshelp

import (
	"fmt"
	"os"
)

// GetWriter returns a writer over an existing file positioned at its start.
// Written text overwrites existing bytes in place; the file is not truncated.
// ok is false, with a nil error, when the file does not exist.
func (h *Helper) GetWriter(path string) (writer *TextWriter, ok bool, err error) {
	file, ok, err := h.TryOpen(path)
	if err != nil || !ok {
		return nil, ok, err
	}

	return newTextWriter(file), true, nil
}

// GetWriterWithAppend returns a writer over an existing file that either
// truncates it or appends to its end. ok is false, with a nil error, when the
// file does not exist.
func (h *Helper) GetWriterWithAppend(path string, appendMode bool) (writer *TextWriter, ok bool, err error) {
	if !h.FileExists(path) {
		return nil, false, nil
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	file, err := h.fs.OpenFile(h.resolve(path), flag, filePermissions)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open file %s for writing: %w", path, err)
	}

	return newTextWriter(file), true, nil
}

// OverwriteFile replaces the contents of an existing file with text.
func (h *Helper) OverwriteFile(path, text string) error {
	return h.writeText("overwrite", path, text, false)
}

// AppendToFile appends text to an existing file.
func (h *Helper) AppendToFile(path, text string) error {
	return h.writeText("append", path, text, true)
}

func (h *Helper) writeText(op, path, text string, appendMode bool) error {
	writer, ok, err := h.GetWriterWithAppend(path, appendMode)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(op, path)
	}

	if err := writer.Write(text); err != nil {
		_ = writer.Close()
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	h.logger.Debug("File written", "path", path, "op", op, "bytes", len(text))
	return nil
}
