package textrecord

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("textrecord: writer is nil")
	errWriterNoTarget = errors.New("textrecord: writer destination cannot be nil")
)

var (
	lineFeed = []byte{'\n'}
	crlf     = []byte{'\r', '\n'}
)

// Writer emits a line table through a buffer. Lines are written verbatim; nothing is quoted.
// The first write or flush error is kept and returned by every later call.
type Writer struct {
	dst *bufio.Writer

	// UseCRLF writes lines terminated with \r\n when set.
	UseCRLF bool

	err error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Write emits a single line followed by the configured newline sequence.
func (w *Writer) Write(line string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if _, err := w.dst.WriteString(line); err != nil {
		return w.fail(err)
	}
	if _, err := w.dst.Write(w.terminator()); err != nil {
		return w.fail(err)
	}
	return nil
}

// WriteAll writes lines in order and flushes them, stopping at the first error.
func (w *Writer) WriteAll(lines []string) error {
	for _, line := range lines {
		if err := w.Write(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.dst.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) ready() error {
	switch {
	case w == nil:
		return errNilWriter
	case w.dst == nil:
		return errWriterNoTarget
	}
	return w.err
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

func (w *Writer) terminator() []byte {
	if w.UseCRLF {
		return crlf
	}
	return lineFeed
}
