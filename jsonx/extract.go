// Package jsonx extracts the first well-formed JSON object embedded in free
// text. Reasoning providers routinely wrap their JSON payload in prose or
// markdown fences; the extractor scans for the first balanced {...} region,
// tracking string and escape state so braces inside string literals do not
// confuse the match.
package jsonx

import (
	"encoding/json"
	"fmt"
)

// FirstObject returns the first balanced JSON object found in s and true, or
// "" and false when no balanced object exists. The returned region is
// syntactically balanced but not guaranteed to be valid JSON; use DecodeFirst
// when a decoded value is required.
func FirstObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}

// DecodeFirst locates the first balanced JSON object in s and unmarshals it
// into v. It fails when no object is present or the extracted region is not
// valid JSON.
func DecodeFirst(s string, v any) error {
	obj, ok := FirstObject(s)
	if !ok {
		return fmt.Errorf("jsonx: no JSON object found in text")
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("jsonx: decode extracted object: %w", err)
	}
	return nil
}
