package qb

import "strings"

// InsertInto begins an INSERT statement against table with the given
// columns. Values rows are supplied separately via Values.
func (q *Query) InsertInto(table string, columns ...string) *Query {
	if q.failed() {
		return q
	}
	if strings.TrimSpace(table) == "" {
		q.fail(NewInvalidInputError("insert table"))
		return q
	}
	if len(columns) == 0 {
		q.fail(NewInvalidInputError("insert columns"))
		return q
	}
	q.insertSpec = &InsertSpec{Table: table, Columns: append([]string(nil), columns...)}
	return q
}

// Values appends a row of values to the current INSERT statement. row must
// have exactly as many elements as the column list passed to InsertInto; a
// mismatch fails with an ArityError. Calling Values before InsertInto fails
// with an InvalidStateError.
func (q *Query) Values(row ...any) *Query {
	if q.failed() {
		return q
	}
	if q.insertSpec == nil {
		q.fail(NewInvalidStateError("values called before insert_into"))
		return q
	}
	want := len(q.insertSpec.Columns)
	if len(row) != want {
		q.fail(NewArityError(want, len(row)))
		return q
	}
	q.insertSpec.Rows = append(q.insertSpec.Rows, inferValues(row))
	return q
}

// InsertOrUpdate marks the current INSERT as an upsert: on a conflict
// against conflictColumns, the row is updated instead of rejected. The
// dialect-specific form (ON CONFLICT, ON DUPLICATE KEY UPDATE, MERGE, or
// unsupported) is resolved at compile time.
func (q *Query) InsertOrUpdate(conflictColumns ...string) *Query {
	if q.failed() {
		return q
	}
	if q.insertSpec == nil {
		q.fail(NewInvalidStateError("insert_or_update called before insert_into"))
		return q
	}
	if len(conflictColumns) == 0 {
		q.fail(NewInvalidInputError("conflict columns"))
		return q
	}
	q.insertSpec.IsUpsert = true
	q.insertSpec.ConflictColumns = append([]string(nil), conflictColumns...)
	return q
}

// UpsertUpdateOnly restricts the columns updated on conflict to the given
// subset; without it, every column from the INSERT (conflict columns
// included) is updated.
func (q *Query) UpsertUpdateOnly(columns ...string) *Query {
	if q.failed() {
		return q
	}
	if q.insertSpec == nil || !q.insertSpec.IsUpsert {
		q.fail(NewInvalidStateError("upsert_update_only called before insert_or_update"))
		return q
	}
	if len(columns) == 0 {
		q.fail(NewInvalidInputError("upsert update columns"))
		return q
	}
	q.insertSpec.UpsertUpdateOnlyColumns = append([]string(nil), columns...)
	return q
}
