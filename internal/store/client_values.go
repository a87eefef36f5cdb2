package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const timeLayout = time.RFC3339Nano

// bytesTag marks a BLOB value in an exported row: {"$bytes": "<base64>"}.
// SQLite never yields an object, so the tag cannot collide with real data.
const bytesTag = "$bytes"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// fromSQLiteValue turns a scanned column value into something that survives
// a JSON round trip. Rows are selected through no-op expressions, so TEXT
// arrives as string and only BLOB storage arrives as []byte.
func fromSQLiteValue(v any) any {
	switch value := v.(type) {
	case []byte:
		return map[string]any{bytesTag: base64.StdEncoding.EncodeToString(value)}
	case float64:
		return floatNumber(value)
	case time.Time:
		return formatTime(value)
	default:
		return value
	}
}

// floatNumber keeps a decimal point on integral REAL values so they are not
// read back as INTEGER.
func floatNumber(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return json.Number(s)
}

// toSQLiteValue converts a value decoded from a backup payload into a type
// the sqlite3 driver can bind.
func toSQLiteValue(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool, int, int64, float64, []byte, time.Time:
		return value, nil
	case int32:
		return int64(value), nil
	case float32:
		return float64(value), nil
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i, nil
		}
		f, err := value.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", value, err)
		}
		return f, nil
	case map[string]any:
		if raw, ok := taggedBytes(value); ok {
			decoded, err := base64.StdEncoding.DecodeString(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: %w", bytesTag, err)
			}
			return decoded, nil
		}
		return marshalJSONValue(value)
	case []any:
		return marshalJSONValue(value)
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func taggedBytes(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	raw, ok := m[bytesTag].(string)
	return raw, ok
}

func marshalJSONValue(v any) (any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}
