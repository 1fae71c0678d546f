package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corvuslabs/sqlqb/qb"
)

const literalTimeLayout = "2006-01-02 15:04:05"

// formatLiteral renders v as an inlined SQL literal. Subquery values are
// never passed here — emitValue handles those by recursively compiling
// before a literal is ever considered.
func formatLiteral(v qb.Value) (string, error) {
	switch v.Kind() {
	case qb.KindNull:
		return "NULL", nil
	case qb.KindString:
		s, _ := v.Raw().(string)
		return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
	case qb.KindBool:
		b, _ := v.Raw().(bool)
		if b {
			return "1", nil
		}
		return "0", nil
	case qb.KindInt:
		n, _ := v.Raw().(int64)
		return strconv.FormatInt(n, 10), nil
	case qb.KindFloat:
		f, _ := v.Raw().(float64)
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case qb.KindDecimal:
		d, ok := v.Raw().(decimal.Decimal)
		if !ok {
			return "", qb.NewInternalInvariantError("decimal value missing decimal.Decimal")
		}
		return d.String(), nil
	case qb.KindTime:
		t, _ := v.Raw().(time.Time)
		return "'" + t.UTC().Format(literalTimeLayout) + "'", nil
	case qb.KindTimeOffset:
		// The offset component is discarded at emission time; only the
		// UTC-normalized instant is rendered.
		t, _ := v.Raw().(time.Time)
		return "'" + t.UTC().Format(literalTimeLayout) + "'", nil
	case qb.KindBytes:
		b, _ := v.Raw().([]byte)
		return fmt.Sprintf("0x%x", b), nil
	case qb.KindUUID:
		id, ok := v.Raw().(uuid.UUID)
		if !ok {
			return "", qb.NewInternalInvariantError("uuid value missing uuid.UUID")
		}
		return "'" + id.String() + "'", nil
	default:
		return "", qb.NewInternalInvariantError(fmt.Sprintf("cannot format literal for value kind %d", v.Kind()))
	}
}
