package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Row is one result row keyed by lower-cased column name. Values are
// normalized so callers see int64, float64, bool, string, time.Time or nil
// whatever the backend.
type Row map[string]any

func (r Row) Int64(col string) int64 {
	return asInt64(r[col])
}

func (r Row) Int(col string) int {
	return int(asInt64(r[col]))
}

func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return strconv.FormatInt(asInt64(v), 10)
	}
}

func (r Row) Bool(col string) bool {
	return asBool(r[col])
}

func (r Row) Time(col string) time.Time {
	t, _ := asTime(r[col])
	return t
}

// NullInt64 returns nil for SQL NULL.
func (r Row) NullInt64(col string) *int64 {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	n := asInt64(v)
	return &n
}

// NullTime returns nil for SQL NULL or an unparseable value.
func (r Row) NullTime(col string) *time.Time {
	t, ok := asTime(r[col])
	if !ok {
		return nil
	}
	return &t
}

func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x.UTC()
	default:
		return v
	}
}

func asInt64(v any) int64 {
	switch x := normalize(v).(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return n
		}
		// SQL Server returns NUMERIC identities as decimal text.
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// asBool accepts BIT (bool), INTEGER (0/1) and textual booleans.
func asBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return err == nil && b
	default:
		return asInt64(v) != 0
	}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// asTime parses driver time values and the textual formats SQLite stores.
// Text without a zone is UTC, which is what CURRENT_TIMESTAMP produces.
func asTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	case []byte:
		return asTime(string(x))
	default:
		return time.Time{}, false
	}
}

func scanRows(rows *sql.Rows, limit int) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = strings.ToLower(c)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, k := range keys {
			row[k] = normalize(values[i])
		}
		out = append(out, row)

		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, rows.Err()
}
