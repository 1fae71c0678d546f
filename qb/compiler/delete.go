package compiler

import "github.com/corvuslabs/sqlqb/qb"

// compileDelete emits a DELETE statement.
func (e *emitter) compileDelete(q *qb.Query) error {
	spec := q.DeleteSpec()

	e.buf.WriteString("DELETE FROM ")
	e.buf.WriteString(e.quote(spec.Table))

	if tokens := q.WhereTokens(); len(tokens) > 0 {
		e.buf.WriteString(" WHERE ")
		if err := e.compileWhereTokens(tokens); err != nil {
			return err
		}
	}
	return nil
}
