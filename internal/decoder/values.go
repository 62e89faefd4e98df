package decoder

import "strings"

// The parser produces an untyped tree with exactly four shapes: byte-string,
// integer, list and dictionary. The helpers below are the single place the
// walk dispatches on those shapes; any other value answers false.

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v interface{}) (int64, bool) {
	n, ok := v.(int64)
	return n, ok
}

func asList(v interface{}) ([]interface{}, bool) {
	l, ok := v.([]interface{})
	return l, ok
}

func asDict(v interface{}) (map[string]interface{}, bool) {
	d, ok := v.(map[string]interface{})
	return d, ok
}

// toText converts a byte-string to text, lossily repairing malformed UTF-8
// with the replacement character. Text conversion never fails.
func toText(s string) string {
	return strings.ToValidUTF8(s, "�")
}
