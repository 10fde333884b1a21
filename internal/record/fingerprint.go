package record

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint returns the canonical content fingerprint of the record:
// every field except the identifier, keys sorted, each value rendered
// with a type marker. Two records fingerprint equally exactly when they
// have the same key set and per-key equal values, type included.
func (r Record) Fingerprint() string {
	keys := make([]string, 0, len(r))
	for key := range r {
		if key == IDField {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.Grow(len(keys) * 24)
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Quote(key))
		b.WriteByte('=')
		writeValue(&b, r[key])
	}
	return b.String()
}

// writeValue renders one field value with a leading type tag. Strings
// are quoted so no value can forge the tag of another type, numbers
// keep their literal text where the decoder preserved it, and nested
// containers recurse with sorted keys.
func writeValue(b *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(v))
	case bool:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(v))
	case json.Number:
		b.WriteString("n:")
		b.WriteString(v.String())
	case int:
		b.WriteString("n:")
		b.WriteString(strconv.Itoa(v))
	case int64:
		b.WriteString("n:")
		b.WriteString(strconv.FormatInt(v, 10))
	case uint64:
		b.WriteString("n:")
		b.WriteString(strconv.FormatUint(v, 10))
	case float64:
		b.WriteString("n:")
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case []any:
		b.WriteString("a:[")
		for i, item := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		b.WriteString("m:{")
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(strconv.Quote(key))
			b.WriteByte('=')
			writeValue(b, v[key])
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "x:%T:%v", v, v)
	}
}
