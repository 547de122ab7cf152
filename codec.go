package textrecord

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// DefaultTimeLayout is used for time.Time fields when Codec.TimeLayout is empty.
const DefaultTimeLayout = time.RFC3339Nano

// Codec converts records to and from line tables. The zero value is ready to use.
// A Codec is not modified by its methods and may be shared between goroutines.
type Codec struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// TimeLayout formats and parses time.Time fields. Default is DefaultTimeLayout.
	TimeLayout string
	// UseCRLF makes Encode and SaveFile terminate lines with \r\n.
	UseCRLF bool
}

var defaultCodec Codec

// Marshal converts records into a header line followed by one line per record, using the default Codec.
func Marshal[T any](records []T) ([]string, error) {
	return defaultCodec.Marshal(records)
}

// Unmarshal builds one T per data line in lines, using the default Codec.
func Unmarshal[T any](lines []string) ([]T, error) {
	var out []T
	if err := defaultCodec.Unmarshal(lines, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Codec) comma() byte {
	if c == nil || c.Comma == 0 {
		return ','
	}
	return c.Comma
}

// sep returns the delimiter byte as a one-byte string, never UTF-8 encoded.
func (c *Codec) sep() string {
	return string([]byte{c.comma()})
}

func (c *Codec) timeLayout() string {
	if c == nil || c.TimeLayout == "" {
		return DefaultTimeLayout
	}
	return c.TimeLayout
}

func (c *Codec) validate() error {
	switch comma := c.comma(); comma {
	case '\r', '\n':
		return fmt.Errorf("textrecord: invalid delimiter %q", comma)
	}
	return nil
}

// fieldsFor describes t and rejects column names the delimiter would split.
func (c *Codec) fieldsFor(t reflect.Type) ([]Field, error) {
	fields, err := FieldsOf(t)
	if err != nil {
		return nil, err
	}
	sep := c.sep()
	for _, f := range fields {
		if strings.Contains(f.Name, sep) {
			return nil, fmt.Errorf("%w: column name %q contains the delimiter", ErrUnsupportedType, f.Name)
		}
	}
	return fields, nil
}
