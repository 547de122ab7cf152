package textrecord

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestConversionErrorMethods(t *testing.T) {
	t.Parallel()

	inner := &strconv.NumError{Func: "ParseInt", Num: "x", Err: strconv.ErrSyntax}
	err := &ConversionError{Line: 4, Field: "ErrorCode", Value: "x", Err: inner}

	if got := err.Error(); !strings.Contains(got, "line 4") || !strings.Contains(got, "ErrorCode") || !strings.Contains(got, `"x"`) {
		t.Fatalf("Error() returned %q, want descriptive output", got)
	}
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("ConversionError should match ErrConversion")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("ConversionError should unwrap to strconv.ErrSyntax")
	}
	if err.Unwrap() != error(inner) {
		t.Fatalf("Unwrap() should return the parse error")
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Fatalf("ConversionError should not match ErrMalformedInput")
	}

	var nilErr *ConversionError
	if nilErr.Error() != "" {
		t.Fatalf("nil ConversionError should return empty string")
	}
	if nilErr.Unwrap() != nil {
		t.Fatalf("nil ConversionError should return nil from Unwrap")
	}
}
