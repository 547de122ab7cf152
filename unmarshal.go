package textrecord

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal builds one record per data line and stores them in dst, which must point to a slice
// of structs or struct pointers. Columns are matched to fields by header name: unknown columns are
// ignored, fields without a column keep their zero value, and a row shorter or longer than the
// header is read up to the shorter of the two.
//
// On error dst is left untouched.
func (c *Codec) Unmarshal(lines []string, dst any) error {
	if err := c.validate(); err != nil {
		return err
	}
	pv := reflect.ValueOf(dst)
	if pv.Kind() != reflect.Pointer || pv.IsNil() || pv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%w: destination must be a non-nil pointer to a slice, got %T", ErrInvalidArgument, dst)
	}
	sliceType := pv.Elem().Type()
	elemType := sliceType.Elem()
	byPointer := elemType.Kind() == reflect.Pointer
	recordType := elemType
	if byPointer {
		recordType = elemType.Elem()
	}
	if recordType.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, recordType)
	}

	fields, err := c.fieldsFor(recordType)
	if err != nil {
		return err
	}
	if len(lines) < 2 {
		return ErrMalformedInput
	}

	sep := c.sep()
	layout := c.timeLayout()
	headers := strings.Split(lines[0], sep)
	rows := lines[1:]

	out := reflect.MakeSlice(sliceType, 0, len(rows))
	for n, row := range rows {
		vals := strings.Split(row, sep)
		ptr := reflect.New(recordType)
		rec := ptr.Elem()

		for i := 0; i < len(headers) && i < len(vals); i++ {
			for _, f := range fields {
				if f.Name != headers[i] {
					continue
				}
				if err := parseValue(vals[i], rec.FieldByIndex(f.Index), f.Kind, layout); err != nil {
					return &ConversionError{Line: n + 2, Field: f.Name, Value: vals[i], Err: err}
				}
			}
		}

		if byPointer {
			out = reflect.Append(out, ptr)
		} else {
			out = reflect.Append(out, rec)
		}
	}
	pv.Elem().Set(out)
	return nil
}
