package compiler

import "github.com/corvuslabs/sqlqb/qb"

// compileUpdate emits an UPDATE statement.
func (e *emitter) compileUpdate(q *qb.Query) error {
	spec := q.UpdateSpec()

	e.buf.WriteString("UPDATE ")
	e.buf.WriteString(e.quote(spec.Table))
	e.buf.WriteString(" SET ")
	for i, pair := range spec.SetPairs {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteString(e.quote(pair.Column))
		e.buf.WriteString(" = ")
		if err := e.emitValue(pair.Value); err != nil {
			return err
		}
	}

	if tokens := q.WhereTokens(); len(tokens) > 0 {
		e.buf.WriteString(" WHERE ")
		if err := e.compileWhereTokens(tokens); err != nil {
			return err
		}
	}
	return nil
}
