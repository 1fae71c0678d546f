package qb

import (
	"sort"
	"strings"
)

// Update begins an UPDATE statement against table.
func (q *Query) Update(table string) *Query {
	if q.failed() {
		return q
	}
	if strings.TrimSpace(table) == "" {
		q.fail(NewInvalidInputError("update table"))
		return q
	}
	q.updateSpec = &UpdateSpec{Table: table}
	return q
}

// Set appends a single "column = value" assignment to the current UPDATE.
func (q *Query) Set(column string, value any) *Query {
	if q.failed() {
		return q
	}
	if q.updateSpec == nil {
		q.fail(NewInvalidStateError("set called before update"))
		return q
	}
	if strings.TrimSpace(column) == "" {
		q.fail(NewInvalidInputError("set column"))
		return q
	}
	q.updateSpec.SetPairs = append(q.updateSpec.SetPairs, SetPair{Column: column, Value: inferValue(value)})
	return q
}

// SetMap appends one assignment per map entry, in ascending key order, so
// that compiled output is deterministic regardless of Go's randomized map
// iteration order.
func (q *Query) SetMap(values map[string]any) *Query {
	if q.failed() {
		return q
	}
	if q.updateSpec == nil {
		q.fail(NewInvalidStateError("set_map called before update"))
		return q
	}
	if len(values) == 0 {
		q.fail(NewInvalidInputError("set_map values"))
		return q
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, values[k])
	}
	return q
}
