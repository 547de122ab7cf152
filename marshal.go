package textrecord

import (
	"fmt"
	"reflect"
	"strings"
)

var errNoRecords = fmt.Errorf("%w: must supply at least one record", ErrInvalidArgument)

// Marshal converts records, a slice or array of structs or struct pointers, into a line table.
// Line 0 is the header of field names; each following line holds one record's values in field order.
// Values are not escaped.
func (c *Codec) Marshal(records any) ([]string, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(records)
	if !rv.IsValid() {
		return nil, errNoRecords
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: records must be a slice, got %s", ErrInvalidArgument, rv.Type())
	}
	if rv.Len() == 0 {
		return nil, errNoRecords
	}

	first, err := recordValue(rv, 0)
	if err != nil {
		return nil, err
	}
	recordType := first.Type()
	fields, err := c.fieldsFor(recordType)
	if err != nil {
		return nil, err
	}

	sep := c.sep()
	layout := c.timeLayout()
	lines := make([]string, 0, rv.Len()+1)
	lines = append(lines, strings.Join(names(fields), sep))

	var sb strings.Builder
	for i := 0; i < rv.Len(); i++ {
		rec := first
		if i > 0 {
			if rec, err = recordValue(rv, i); err != nil {
				return nil, err
			}
			if rec.Type() != recordType {
				return nil, fmt.Errorf("%w: record %d is %s, want %s", ErrInvalidArgument, i, rec.Type(), recordType)
			}
		}

		sb.Reset()
		for j, f := range fields {
			if j > 0 {
				sb.WriteString(sep)
			}
			s, err := formatValue(rec.FieldByIndex(f.Index), f.Kind, layout)
			if err != nil {
				return nil, fmt.Errorf("textrecord: record %d field %s: %w", i, f.Name, err)
			}
			sb.WriteString(s)
		}
		lines = append(lines, sb.String())
	}
	return lines, nil
}

// recordValue returns the struct stored at index i of rv, following interfaces and pointers.
func recordValue(rv reflect.Value, i int) (reflect.Value, error) {
	v := rv.Index(i)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: record %d is nil", ErrInvalidArgument, i)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, v.Type())
	}
	return v, nil
}
