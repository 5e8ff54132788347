package alpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// JS marks a value as raw JavaScript to be emitted verbatim.
//
// Use it for function bodies and expressions inside component state,
// which must not be quoted like data:
//
//	alpx.Obj().
//	    Set("count", 0).
//	    Set("increment", alpx.JS("function() { this.count++ }"))
//
// Newlines are collapsed to spaces during serialization so multi-line
// functions fit on one attribute line.
type JS string

// Object is an ordered set of key/value pairs for component state.
//
// Go maps have no insertion order, but Alpine state often reads
// better (and diffs deterministically) in declaration order, so
// Object keeps pairs in the order Set was called. Setting the same
// key twice keeps both entries; the later one wins in JavaScript.
//
// Object is an immutable value like Attr: Set returns a new Object
// and never mutates the receiver.
type Object struct {
	pairs []pair
}

type pair struct {
	key string
	val any
}

// Obj returns an empty Object ready for chained Set calls.
func Obj() Object {
	return Object{}
}

// Set returns a new Object with the key/value pair appended.
//
// Keys are emitted verbatim: they must be valid JavaScript identifier
// text, which is not validated here.
func (o Object) Set(key string, value any) Object {
	pairs := make([]pair, 0, len(o.pairs)+1)
	pairs = append(pairs, o.pairs...)
	pairs = append(pairs, pair{key: key, val: value})
	return Object{pairs: pairs}
}

// Len returns the number of pairs.
func (o Object) Len() int {
	return len(o.pairs)
}

// String renders the Object in JavaScript object notation.
func (o Object) String() string {
	return Serialize(o)
}

// Serialize converts a value to JavaScript object notation.
//
// This is deliberately not JSON: keys are unquoted and strings use
// single quotes, so the result can sit inside a double-quoted HTML
// attribute without entity soup. Formatting rules by type:
//
//   - Object and map[string]any render as "{ key: value, ... }".
//     Object preserves insertion order; plain maps are emitted in
//     sorted key order so output stays deterministic.
//   - JS values are emitted verbatim with CR/LF collapsed, unquoted.
//   - Strings are entity-escaped (&, <, > but not quotes), have
//     apostrophes replaced with &apos; and CR/LF stripped, then are
//     wrapped in single quotes.
//   - Booleans emit the literal true or false; nil emits null.
//   - Integers and floats emit their decimal form. Integral floats
//     keep a trailing .0 so they still read as floats.
//   - Slices and arrays are JSON-encoded (without HTML escaping) and
//     then have double quotes swapped for single quotes. Elements
//     containing quote characters of both kinds can therefore produce
//     invalid output; keep list elements quote-free.
//   - Anything else falls back to its fmt.Sprint form, unquoted. This
//     is an escape hatch for JSON-safe stringable values, not a
//     general contract.
//
// Serialize is a pure function: identical input always yields
// identical output.
func Serialize(v any) string {
	switch t := v.(type) {
	case Object:
		entries := make([]string, 0, len(t.pairs))
		for _, p := range t.pairs {
			entries = append(entries, p.key+": "+Serialize(p.val))
		}
		return wrapObject(entries)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]string, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, k+": "+Serialize(t[k]))
		}
		return wrapObject(entries)
	case JS:
		return stripNewlines(string(t))
	case string:
		return "'" + escapeString(t) + "'"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case nil:
		return "null"
	}

	if rv := reflect.ValueOf(v); rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return serializeList(v)
	}

	return fmt.Sprint(v)
}

func wrapObject(entries []string) string {
	return "{ " + strings.Join(entries, ", ") + " }"
}

// serializeList encodes each element as JSON and converts the double
// quotes to single quotes, which Alpine accepts and HTML attributes
// tolerate without escaping. Elements are joined with ", " and nested
// sequences recurse.
func serializeList(v any) string {
	rv := reflect.ValueOf(v)
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if erv := reflect.ValueOf(el); erv.IsValid() && (erv.Kind() == reflect.Slice || erv.Kind() == reflect.Array) {
			parts[i] = serializeList(el)
			continue
		}
		data, err := encodeJSON(el)
		if err != nil {
			// Unencodable elements (functions, channels) are a
			// caller contract violation; fall back to the escape
			// hatch.
			parts[i] = fmt.Sprint(el)
			continue
		}
		parts[i] = strings.ReplaceAll(data, `"`, "'")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// encodeJSON encodes without the default HTML escaping: markup
// characters inside list elements must pass through raw, matching the
// string rule's output which the surrounding attribute serializer
// escapes once.
func encodeJSON(v any) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// formatFloat renders floats in plain decimal for the magnitudes that
// occur in attribute values, keeping a trailing .0 on integral values
// so the number still reads as a float. Very small, very large, and
// non-finite values keep Go's shortest form.
func formatFloat(f float64, bits int) string {
	abs := math.Abs(f)
	if (abs != 0 && (abs < 1e-4 || abs >= 1e16)) || math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var stringEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	"\n", " ",
	"\r", "",
)

// escapeString applies the attribute-safe string rules: entity-escape
// markup characters (quotes excluded - the single-quote wrapper is
// handled via &apos;), drop newlines.
func escapeString(s string) string {
	return stringEscaper.Replace(s)
}

func stripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", "")
}
