package textrecord

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Kind classifies how a field's value is rendered as text and parsed back.
type Kind int

const (
	Invalid Kind = iota
	String
	Int
	Uint
	Float
	Bool
	Time
	Text
)

var kindNames = [...]string{
	Invalid: "invalid",
	String:  "string",
	Int:     "int",
	Uint:    "uint",
	Float:   "float",
	Bool:    "bool",
	Time:    "time",
	Text:    "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// tagKey is the struct tag consulted for column names.
const tagKey = "text"

var (
	timeType            = reflect.TypeOf(time.Time{})
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Field describes one column of a record type.
type Field struct {
	Name  string       // column name written to the header
	Kind  Kind         // conversion rule
	Type  reflect.Type // declared Go type
	Index []int        // index sequence for reflect.Value.FieldByIndex
}

// FieldsOf returns the fields of the struct type t (or of the struct t points to) in declaration order.
// Fields of embedded structs are promoted into the list the way encoding/json flattens them.
// Unexported fields and fields tagged `text:"-"` are left out.
func FieldsOf(t reflect.Type) ([]Field, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupportedType)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, t)
	}

	var (
		fields []Field
		pruned [][]int // subtrees whose promoted fields must not become columns
		seen   = make(map[string]bool)
	)
	for _, sf := range reflect.VisibleFields(t) {
		if underAny(sf.Index, pruned) {
			continue
		}
		tag, tagged := sf.Tag.Lookup(tagKey)
		if tag == "-" {
			pruned = append(pruned, sf.Index)
			continue
		}
		kind := kindOf(sf.Type)
		if sf.Anonymous {
			if sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Struct {
				if !sf.IsExported() {
					pruned = append(pruned, sf.Index)
					continue
				}
				return nil, fmt.Errorf("%w: embedded pointer %s in %s", ErrUnsupportedType, sf.Type, t.Name())
			}
			if sf.Type.Kind() == reflect.Struct && kind == Invalid {
				continue
			}
			// Embedded time.Time or text type: one column, nothing promoted.
			pruned = append(pruned, sf.Index)
		}
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tagged && tag != "" {
			name = tag
		}
		if kind == Invalid {
			return nil, fmt.Errorf("%w: field %s.%s has type %s", ErrUnsupportedType, t.Name(), sf.Name, sf.Type)
		}
		if strings.ContainsAny(name, "\r\n") {
			return nil, fmt.Errorf("%w: column name %q contains a line break", ErrUnsupportedType, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column name %q in %s", ErrUnsupportedType, name, t.Name())
		}
		seen[name] = true
		fields = append(fields, Field{Name: name, Kind: kind, Type: sf.Type, Index: sf.Index})
	}
	return fields, nil
}

// underAny reports whether index lies strictly inside one of the subtrees in prefixes.
func underAny(index []int, prefixes [][]int) bool {
	for _, p := range prefixes {
		if len(index) > len(p) && slices.Equal(index[:len(p)], p) {
			return true
		}
	}
	return false
}

// Fields is FieldsOf for the type parameter T.
func Fields[T any]() ([]Field, error) {
	return FieldsOf(reflect.TypeOf((*T)(nil)).Elem())
}

func kindOf(t reflect.Type) Kind {
	if t == timeType {
		return Time
	}
	if isTextType(t) {
		return Text
	}
	switch t.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	}
	return Invalid
}

// isTextType reports whether values of t can be both marshaled and unmarshaled as text.
// Pointer types are excluded so a zero record never holds a nil receiver.
func isTextType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	ptr := reflect.PointerTo(t)
	return (t.Implements(textMarshalerType) || ptr.Implements(textMarshalerType)) &&
		ptr.Implements(textUnmarshalerType)
}

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
