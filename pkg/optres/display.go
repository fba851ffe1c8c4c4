package optres

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Display renders a wrapped value for String implementations. One rule
// for the whole library: strings are quoted, slices and arrays are
// bracketed with comma-joined elements (recursively displayed), func
// values render as their type signature, nil renders as <nil>, and
// everything else uses the default %v conversion.
func Display(v any) string {
	if IsNil(v) {
		return "<nil>"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Display(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Func:
		return rv.Type().String()
	}

	return fmt.Sprintf("%v", v)
}

func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch rv := reflect.ValueOf(i); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
