package udf

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Status describes the outcome of a record lookup.
type Status int

const (
	// Present means the path resolved to a usable value.
	Present Status = iota
	// Empty means the path exists but holds null or an empty string.
	Empty
	// Missing means a key along the path is absent or an index is out of range.
	Missing
	// Malformed means a value along the path has an unexpected shape.
	Malformed
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Empty:
		return "empty"
	case Missing:
		return "missing"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Lookup walks a dotted path through decoded JSON. Numeric segments index
// into lists, so "accessMethods.ssh.0.internalPort" reads the first SSH
// access method.
func Lookup(raw map[string]any, path string) (any, Status) {
	if raw == nil {
		return nil, Missing
	}
	var current any = raw
	for _, part := range strings.Split(path, ".") {
		switch typed := current.(type) {
		case map[string]any:
			value, ok := typed[part]
			if !ok {
				return nil, Missing
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 {
				return nil, Malformed
			}
			if idx >= len(typed) {
				return nil, Missing
			}
			current = typed[idx]
		case nil:
			return nil, Missing
		default:
			return nil, Malformed
		}
	}
	if current == nil {
		return nil, Empty
	}
	return current, Present
}

// StringAt reads a string leaf. JSON numbers are returned in their literal
// form; objects, lists and booleans are malformed.
func StringAt(raw map[string]any, path string) (string, Status) {
	value, status := Lookup(raw, path)
	if status != Present {
		return "", status
	}
	switch typed := value.(type) {
	case string:
		if strings.TrimSpace(typed) == "" {
			return "", Empty
		}
		return typed, Present
	case json.Number:
		return typed.String(), Present
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), Present
	default:
		return "", Malformed
	}
}

// IntAt reads an integer leaf. Integer strings are accepted; zero is
// reported as empty.
func IntAt(raw map[string]any, path string) (int, Status) {
	value, status := Lookup(raw, path)
	if status != Present {
		return 0, status
	}
	var (
		parsed int64
		err    error
	)
	switch typed := value.(type) {
	case json.Number:
		parsed, err = typed.Int64()
	case float64:
		parsed = int64(typed)
		if float64(parsed) != typed {
			return 0, Malformed
		}
	case string:
		if strings.TrimSpace(typed) == "" {
			return 0, Empty
		}
		parsed, err = strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
	default:
		return 0, Malformed
	}
	if err != nil {
		return 0, Malformed
	}
	if parsed == 0 {
		return 0, Empty
	}
	return int(parsed), Present
}
