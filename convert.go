package textrecord

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// formatValue renders v using the conversion rule of kind.
func formatValue(v reflect.Value, kind Kind, layout string) (string, error) {
	switch kind {
	case String:
		return v.String(), nil
	case Int:
		return strconv.FormatInt(v.Int(), 10), nil
	case Uint:
		return strconv.FormatUint(v.Uint(), 10), nil
	case Float:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), nil
	case Bool:
		if v.Bool() {
			return "True", nil
		}
		return "False", nil
	case Time:
		return v.Interface().(time.Time).Format(layout), nil
	case Text:
		m, ok := textMarshaler(v)
		if !ok {
			return "", fmt.Errorf("%w: %s cannot be marshaled as text", ErrUnsupportedType, v.Type())
		}
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}

func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.Type().Implements(textMarshalerType) {
		m, ok := v.Interface().(encoding.TextMarshaler)
		return m, ok
	}
	if v.CanAddr() {
		m, ok := v.Addr().Interface().(encoding.TextMarshaler)
		return m, ok
	}
	// Copy into addressable storage for pointer-receiver marshalers.
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	m, ok := p.Interface().(encoding.TextMarshaler)
	return m, ok
}

// parseValue converts s by the rule of kind and stores it in the settable v.
// Surrounding blanks are ignored for every kind except String and Text.
func parseValue(s string, v reflect.Value, kind Kind, layout string) error {
	if kind != String && kind != Text {
		s = strings.TrimSpace(s)
	}
	switch kind {
	case String:
		v.SetString(s)
	case Int:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case Uint:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case Float:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case Time:
		t, err := time.Parse(layout, s)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(t))
	case Text:
		u, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
		if !ok {
			return fmt.Errorf("%w: %s cannot be unmarshaled from text", ErrUnsupportedType, v.Type())
		}
		return u.UnmarshalText([]byte(s))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
	return nil
}

// parseBool accepts "true" and "false" in any letter case.
func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, &strconv.NumError{Func: "parseBool", Num: s, Err: strconv.ErrSyntax}
}
