package database

import (
	"fmt"
	"strings"
)

// bindPlaceholders rewrites every '?' outside single-quoted literals using
// mark, which receives the 1-based position. A nil mark keeps '?' and only
// counts. The number of placeholders must equal nargs.
func bindPlaceholders(query string, nargs int, mark func(n int) string) (string, error) {
	var b strings.Builder
	b.Grow(len(query) + nargs*3)

	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			// '' inside a literal toggles twice and stays inside.
			inLiteral = !inLiteral
			b.WriteByte(ch)
		case ch == '?' && !inLiteral:
			n++
			if mark != nil {
				b.WriteString(mark(n))
			} else {
				b.WriteByte(ch)
			}
		default:
			b.WriteByte(ch)
		}
	}

	if n != nargs {
		return "", fmt.Errorf("query has %d placeholders but %d arguments were given", n, nargs)
	}
	return b.String(), nil
}

func isInsert(query string) bool {
	q := strings.TrimSpace(query)
	return len(q) >= 6 && strings.EqualFold(q[:6], "INSERT")
}
