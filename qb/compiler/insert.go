package compiler

import (
	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

// compileInsert emits a plain INSERT or, when InsertSpec.IsUpsert is set,
// dispatches to the dialect-specific upsert form.
func (e *emitter) compileInsert(q *qb.Query) error {
	spec := q.InsertSpec()

	if len(spec.Rows) == 0 {
		return qb.NewInvalidStateError("insert has no values")
	}

	if spec.IsUpsert {
		if len(spec.Rows) != 1 {
			return qb.NewInvalidStateError("upsert requires exactly one row")
		}
		if len(spec.ConflictColumns) == 0 {
			return qb.NewInvalidInputError("conflict columns")
		}
		return e.compileUpsert(spec)
	}

	e.buf.WriteString("INSERT INTO ")
	e.buf.WriteString(e.quote(spec.Table))
	e.buf.WriteString(" (")
	e.writeQuotedList(spec.Columns)
	e.buf.WriteString(") VALUES ")
	for i, row := range spec.Rows {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := e.writeValueTuple(row); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) compileUpsert(spec *qb.InsertSpec) error {
	switch e.dialect.UpsertForm() {
	case dialect.UpsertOnConflict:
		return e.compileUpsertOnConflict(spec)
	case dialect.UpsertOnDuplicateKey:
		return e.compileUpsertOnDuplicateKey(spec)
	case dialect.UpsertMerge:
		return e.compileUpsertMerge(spec)
	default:
		return qb.ErrUnsupportedDialect
	}
}

// updateOnlyColumns returns the columns updated on conflict: the explicit
// restriction set if one was given, else every column from the INSERT.
func updateOnlyColumns(spec *qb.InsertSpec) []string {
	if len(spec.UpsertUpdateOnlyColumns) > 0 {
		return spec.UpsertUpdateOnlyColumns
	}
	return spec.Columns
}

func (e *emitter) compileUpsertOnConflict(spec *qb.InsertSpec) error {
	e.buf.WriteString("INSERT INTO ")
	e.buf.WriteString(e.quote(spec.Table))
	e.buf.WriteString(" (")
	e.writeQuotedList(spec.Columns)
	e.buf.WriteString(") VALUES ")
	if err := e.writeValueTuple(spec.Rows[0]); err != nil {
		return err
	}
	e.buf.WriteString(" ON CONFLICT (")
	e.writeQuotedList(spec.ConflictColumns)
	e.buf.WriteString(") DO UPDATE SET ")
	for i, c := range updateOnlyColumns(spec) {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		q := e.quote(c)
		e.buf.WriteString(q)
		e.buf.WriteString(" = EXCLUDED.")
		e.buf.WriteString(q)
	}
	return nil
}

func (e *emitter) compileUpsertOnDuplicateKey(spec *qb.InsertSpec) error {
	e.buf.WriteString("INSERT INTO ")
	e.buf.WriteString(e.quote(spec.Table))
	e.buf.WriteString(" (")
	e.writeQuotedList(spec.Columns)
	e.buf.WriteString(") VALUES ")
	if err := e.writeValueTuple(spec.Rows[0]); err != nil {
		return err
	}
	e.buf.WriteString(" ON DUPLICATE KEY UPDATE ")
	for i, c := range updateOnlyColumns(spec) {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		q := e.quote(c)
		e.buf.WriteString(q)
		e.buf.WriteString(" = VALUES(")
		e.buf.WriteString(q)
		e.buf.WriteString(")")
	}
	return nil
}

func (e *emitter) compileUpsertMerge(spec *qb.InsertSpec) error {
	e.buf.WriteString("MERGE INTO ")
	e.buf.WriteString(e.quote(spec.Table))
	e.buf.WriteString(" AS target USING (VALUES ")
	if err := e.writeValueTuple(spec.Rows[0]); err != nil {
		return err
	}
	e.buf.WriteString(") AS source (")
	e.writeQuotedList(spec.Columns)
	e.buf.WriteString(") ON (")
	for i, c := range spec.ConflictColumns {
		if i > 0 {
			e.buf.WriteString(" AND ")
		}
		q := e.quote(c)
		e.buf.WriteString("target.")
		e.buf.WriteString(q)
		e.buf.WriteString(" = source.")
		e.buf.WriteString(q)
	}
	e.buf.WriteString(") WHEN MATCHED THEN UPDATE SET ")
	for i, c := range updateOnlyColumns(spec) {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		q := e.quote(c)
		e.buf.WriteString("target.")
		e.buf.WriteString(q)
		e.buf.WriteString(" = source.")
		e.buf.WriteString(q)
	}
	e.buf.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	e.writeQuotedList(spec.Columns)
	e.buf.WriteString(") VALUES (")
	for i, c := range spec.Columns {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteString("source.")
		e.buf.WriteString(e.quote(c))
	}
	e.buf.WriteString(")")
	return nil
}

func (e *emitter) writeQuotedList(columns []string) {
	for i, c := range columns {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteString(e.quote(c))
	}
}

func (e *emitter) writeValueTuple(row []qb.Value) error {
	e.buf.WriteString("(")
	for i, v := range row {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := e.emitValue(v); err != nil {
			return err
		}
	}
	e.buf.WriteString(")")
	return nil
}
