package textrecord

import (
	"bytes"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads a line table from a byte stream. Lines may end in "\n", "\r\n", or a lone "\r";
// the terminator is not part of the returned line. A UTF-8 byte order mark before the first line is dropped.
type Reader struct {
	src io.Reader

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	dataBuf  []byte
	finished bool
	line     int
}

// NewReader creates a Reader that consumes lines from r, panicking if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("textrecord: reader source cannot be nil")
	}

	return &Reader{
		src:     r,
		buf:     make([]byte, defaultBufferSize),
		dataBuf: make([]byte, 0, 256),
	}
}

// Read returns the next line without its terminator. io.EOF signals that no more lines remain;
// a final line without a terminator is still returned before io.EOF.
func (r *Reader) Read() (string, error) {
	if r == nil || r.src == nil {
		return "", io.EOF
	}
	if r.finished {
		return "", io.EOF
	}

	r.dataBuf = r.dataBuf[:0]

	for {
		// Ensure the working buffer has data before scanning for a terminator.
		if r.bufPos >= r.bufLen {
			if r.bufErr != nil {
				err := r.bufErr
				r.bufErr = nil
				if err == io.EOF {
					r.finished = true
					// Flush a trailing line if data ended without a newline.
					if len(r.dataBuf) > 0 {
						return r.emit(), nil
					}
					return "", io.EOF
				}
				return "", err
			}

			n, err := r.src.Read(r.buf)
			if n == 0 {
				if err != nil {
					r.bufErr = err
				}
				continue
			}
			r.bufPos = 0
			r.bufLen = n
			r.bufErr = err
		}

		data := r.buf[r.bufPos:r.bufLen]
		idx := bytes.IndexAny(data, "\r\n")
		if idx < 0 {
			r.dataBuf = append(r.dataBuf, data...)
			r.bufPos = r.bufLen
			continue
		}

		r.dataBuf = append(r.dataBuf, data[:idx]...)
		r.bufPos += idx + 1
		if data[idx] == '\r' {
			// Support CRLF by peeking ahead for '\n' and consuming it together.
			next, err := r.peekByte()
			if err == nil && next == '\n' {
				r.bufPos++
			} else if err != nil && err != io.EOF {
				return "", err
			}
		}
		return r.emit(), nil
	}
}

// ReadAll exhausts the reader and returns every line, or nil and the first non-EOF error.
func (r *Reader) ReadAll() (lines []string, err error) {
	for {
		line, err := r.Read()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}

// Line reports how many lines have been returned so far.
func (r *Reader) Line() int {
	if r == nil {
		return 0
	}
	return r.line
}

func (r *Reader) emit() string {
	r.line++
	data := r.dataBuf
	if r.line == 1 {
		data = bytes.TrimPrefix(data, utf8BOM)
	}
	return string(data)
}

// peekByte returns the next buffered byte (refilling from src as needed) and propagates any read error.
func (r *Reader) peekByte() (byte, error) {
	for {
		if r.bufPos < r.bufLen {
			return r.buf[r.bufPos], nil
		}
		if r.bufErr != nil {
			return 0, r.bufErr
		}

		n, err := r.src.Read(r.buf)
		if n == 0 && err != nil {
			r.bufErr = err
			return 0, err
		}
		if n == 0 {
			continue
		}
		r.bufPos = 0
		r.bufLen = n
		r.bufErr = err
	}
}
