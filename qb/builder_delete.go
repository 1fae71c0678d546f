package qb

import "strings"

// DeleteFrom begins a DELETE statement against table. WHERE tokens are
// attached the usual way via Where/WhereEq/etc.
func (q *Query) DeleteFrom(table string) *Query {
	if q.failed() {
		return q
	}
	if strings.TrimSpace(table) == "" {
		q.fail(NewInvalidInputError("delete table"))
		return q
	}
	q.deleteSpec = &DeleteSpec{Table: table}
	return q
}
