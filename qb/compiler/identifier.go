package compiler

import (
	"strings"

	"github.com/corvuslabs/sqlqb/qb/dialect"
)

// quoteIdentifier renders ident: a trailing " ASC"/" DESC" suffix is
// detected and stripped first, the remainder is passed through unquoted
// when it is "*", contains whitespace or parentheses, or is entirely
// digits, and otherwise is split on "." and each segment wrapped in the
// dialect's bracket pair before the suffix is reattached.
//
// This is not an escaping mechanism — a caller-supplied identifier
// containing a quote character or SQL metacharacters is passed through
// unchanged. Parameters are the only injection-safe channel; identifiers
// must come from a trusted source.
func quoteIdentifier(d dialect.Dialect, ident string) string {
	rest, suffix := splitOrderSuffix(ident)

	if passesThroughUnquoted(rest) {
		return rest + suffix
	}

	open, closeB := d.Brackets()
	segments := strings.Split(rest, ".")
	for i, seg := range segments {
		segments[i] = open + seg + closeB
	}
	return strings.Join(segments, ".") + suffix
}

func splitOrderSuffix(ident string) (rest, suffix string) {
	upper := strings.ToUpper(ident)
	switch {
	case strings.HasSuffix(upper, " ASC"):
		return ident[:len(ident)-4], ident[len(ident)-4:]
	case strings.HasSuffix(upper, " DESC"):
		return ident[:len(ident)-5], ident[len(ident)-5:]
	default:
		return ident, ""
	}
}

func passesThroughUnquoted(rest string) bool {
	if rest == "*" {
		return true
	}
	if strings.ContainsAny(rest, " \t\n()") {
		return true
	}
	return isAllDigits(rest)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
