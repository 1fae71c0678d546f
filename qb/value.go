package qb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags the capability set a Value carries, so the compiler can switch
// on a closed set of cases instead of doing its own type assertions on a
// bare interface{}. Builder call sites still pass plain Go values
// (inferValue does the wrapping); the compiler itself only ever switches
// on Kind.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindDecimal
	KindBool
	KindTime
	KindTimeOffset
	KindBytes
	KindUUID
	KindSubquery
)

// Value is a polymorphic cell over every literal kind the compiler knows
// how to emit: string, integer, floating, decimal, boolean, date/time,
// date/time with offset, binary bytes, UUID, a null sentinel, and nested
// queries.
type Value struct {
	kind Kind
	raw  any
}

// Kind returns the value's capability tag.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the underlying Go value (a *Query for KindSubquery).
func (v Value) Raw() any { return v.raw }

// IsNull reports whether the value is the null sentinel.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsSubquery reports whether the value is a nested Query.
func (v Value) IsSubquery() bool { return v.kind == KindSubquery }

// String wraps a string value.
func String(s string) Value { return Value{kind: KindString, raw: s} }

// Int wraps an integer value.
func Int(n int64) Value { return Value{kind: KindInt, raw: n} }

// Float wraps a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, raw: f} }

// DecimalValue wraps a culture-invariant fixed-point decimal value.
func DecimalValue(d decimal.Decimal) Value { return Value{kind: KindDecimal, raw: d} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, raw: b} }

// Time wraps a date/time value with no offset (rendered in invariant/UTC form).
func Time(t time.Time) Value { return Value{kind: KindTime, raw: t} }

// TimeOffset wraps a date/time value whose offset component is discarded at
// literal-emission time. Callers who need the offset preserved must encode
// it in a separate column.
func TimeOffset(t time.Time) Value { return Value{kind: KindTimeOffset, raw: t} }

// Bytes wraps a binary blob.
func Bytes(b []byte) Value { return Value{kind: KindBytes, raw: b} }

// UUIDValue wraps a UUID value.
func UUIDValue(id uuid.UUID) Value { return Value{kind: KindUUID, raw: id} }

// Null is the null sentinel value.
func Null() Value { return Value{kind: KindNull} }

// Sub wraps a nested Query as a parenthesized subquery value. The nested
// Query is borrowed by reference from the parent; mutating it after it has
// been wrapped changes what gets compiled.
func Sub(q *Query) Value { return Value{kind: KindSubquery, raw: q} }

// inferValue coerces a bare Go value into a Value, so callers can pass plain
// literals without wrapping every argument. A *Query is promoted to a
// subquery value; a Value passed through is returned unchanged.
func inferValue(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case nil:
		return Null()
	case *Query:
		return Sub(x)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case decimal.Decimal:
		return DecimalValue(x)
	case []byte:
		return Bytes(x)
	case uuid.UUID:
		return UUIDValue(x)
	case time.Time:
		return Time(x)
	default:
		return Value{kind: KindString, raw: x}
	}
}

func inferValues(vs []any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = inferValue(v)
	}
	return out
}
