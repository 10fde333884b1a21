package record

import (
	"encoding/json"
	"strconv"
)

// IDField is the reserved identifier field. It names a record but never
// participates in fingerprinting or field validity.
const IDField = "id"

// Record is a single input record: an unordered mapping from field name
// to value as decoded from JSON or YAML. Values are strings,
// json.Number, bools, nil, nested []any / map[string]any, or native
// numeric types from the YAML decoder.
type Record map[string]any

// ID returns the record identifier. String identifiers are returned as
// is and numeric identifiers as their literal text. An absent key, a
// null value, or a value of any other type counts as missing.
func (r Record) ID() (string, bool) {
	value, ok := r[IDField]
	if !ok {
		return "", false
	}
	switch id := value.(type) {
	case string:
		return id, true
	case json.Number:
		return id.String(), true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case uint64:
		return strconv.FormatUint(id, 10), true
	case float64:
		return strconv.FormatFloat(id, 'g', -1, 64), true
	default:
		return "", false
	}
}

// Blank reports whether the named field is absent, null, or an empty
// string. A present non-null value of any other type is not blank.
func (r Record) Blank(field string) bool {
	value, ok := r[field]
	if !ok || value == nil {
		return true
	}
	text, ok := value.(string)
	return ok && text == ""
}

// Text returns the named field as a string. The second result is false
// when the field is absent or holds a non-string value.
func (r Record) Text(field string) (string, bool) {
	text, ok := r[field].(string)
	return text, ok
}
