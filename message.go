package pluginlog

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Context carries placeholder values for one log call, keyed by placeholder name.
type Context map[string]any

// BuildMessage interpolates {key} placeholders from ctx into message and
// prefixes the result with the channel name. It never fails: values that have
// no text form render as a type tag, and placeholders without a key stay as-is.
func (l *Logger) BuildMessage(message string, ctx Context) string {
	if !strings.Contains(message, "{") || len(ctx) == 0 {
		return l.name + ": " + message
	}
	return l.name + ": " + interpolate(message, ctx)
}

// interpolate does a single pass of literal substitution. At each position the
// longest matching token wins and inserted values are never rescanned.
func interpolate(message string, ctx Context) string {
	tokens := make([]string, 0, len(ctx))
	values := make(map[string]string, len(ctx))
	for k, v := range ctx {
		tok := "{" + k + "}"
		tokens = append(tokens, tok)
		values[tok] = RenderValue(v)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, 2*len(tokens))
	for _, tok := range tokens {
		pairs = append(pairs, tok, values[tok])
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// RenderValue returns the placeholder text for a context value:
//
//	nil (or a nil pointer, map, slice, chan, func) -> ""
//	bool, integers, floats, strings               -> natural text form
//	time.Time                                     -> RFC 3339
//	fmt.Stringer, error                           -> String(), Error()
//	struct or pointer to struct                   -> "[object <type>]"
//	anything else                                 -> "[<kind>]", e.g. "[slice]"
func RenderValue(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return ""
	}

	switch vv := v.(type) {
	case string:
		return vv
	case bool:
		return strconv.FormatBool(vv)
	case int:
		return strconv.Itoa(vv)
	case int64:
		return strconv.FormatInt(vv, 10)
	case uint64:
		return strconv.FormatUint(vv, 10)
	case float64:
		return strconv.FormatFloat(vv, 'g', -1, 64)
	case time.Time:
		return vv.Format(time.RFC3339)
	case *time.Time:
		return vv.Format(time.RFC3339)
	case fmt.Stringer:
		return convert(rv, vv.String)
	case error:
		return convert(rv, vv.Error)
	}
	return renderKind(rv)
}

func renderKind(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.String:
		return rv.String()
	case reflect.Struct:
		return objectTag(rv.Type())
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return objectTag(rv.Type())
		}
		return RenderValue(rv.Elem().Interface())
	default:
		return "[" + rv.Kind().String() + "]"
	}
}

func objectTag(t reflect.Type) string { return "[object " + t.String() + "]" }

// convert calls a String/Error method; a panicking method degrades to the object tag.
func convert(rv reflect.Value, fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = objectTag(rv.Type())
		}
	}()
	return fn()
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
