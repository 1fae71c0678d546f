package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

// emitter accumulates compiled SQL text and, in parameterized mode, the
// ordered parameter vector that placeholders bind to. One emitter is shared
// across a Query and every subquery it contains, so that nested subqueries
// contribute to the same buffer and parameter vector.
type emitter struct {
	dialect dialect.Dialect
	inline  bool
	buf     strings.Builder
	params  []qb.Value
}

func (e *emitter) quote(ident string) string {
	return quoteIdentifier(e.dialect, ident)
}

// emitValue renders a single Value: a subquery recurses into the shared
// buffer/parameter vector, an inlined-mode scalar is textualized via
// formatLiteral, and a parameterized-mode scalar emits the next "@pN"
// placeholder and appends to params.
func (e *emitter) emitValue(v qb.Value) error {
	if v.IsSubquery() {
		sub, ok := v.Raw().(*qb.Query)
		if !ok || sub == nil {
			return qb.NewInternalInvariantError("subquery value missing *qb.Query")
		}
		e.buf.WriteString("(")
		if err := e.compileStatement(sub); err != nil {
			return err
		}
		e.buf.WriteString(")")
		return nil
	}
	if e.inline {
		lit, err := formatLiteral(v)
		if err != nil {
			return err
		}
		e.buf.WriteString(lit)
		return nil
	}
	e.buf.WriteString("@p")
	e.buf.WriteString(strconv.Itoa(len(e.params)))
	e.params = append(e.params, v)
	return nil
}

// compileStatement is the recursive entry point used both for the top-level
// Query and for every nested subquery reached through a Condition value, a
// FROM subquery, or a compound clause. It repeats the preflight balance
// check and statement-shape selection for each Query it visits.
func (e *emitter) compileStatement(q *qb.Query) error {
	if err := q.Err(); err != nil {
		return err
	}
	if q.OpenGroups() != 0 {
		return qb.ErrUnbalanced
	}

	shapes := 0
	if q.InsertSpec() != nil {
		shapes++
	}
	if q.UpdateSpec() != nil {
		shapes++
	}
	if q.DeleteSpec() != nil {
		shapes++
	}
	if shapes > 1 {
		return qb.NewInternalInvariantError("more than one of insert/update/delete spec set")
	}

	switch {
	case q.InsertSpec() != nil:
		return e.compileInsert(q)
	case q.UpdateSpec() != nil:
		return e.compileUpdate(q)
	case q.DeleteSpec() != nil:
		return e.compileDelete(q)
	default:
		return e.compileSelect(q)
	}
}

func (e *emitter) compileWhereTokens(tokens []qb.WhereToken) error {
	for _, tok := range tokens {
		if err := e.compileWhereToken(tok); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) compileWhereToken(tok qb.WhereToken) error {
	switch t := tok.(type) {
	case qb.ConditionToken:
		e.buf.WriteString(e.quote(t.Column))
		e.buf.WriteString(" ")
		e.buf.WriteString(t.Op)
		e.buf.WriteString(" ")
		return e.emitValue(t.Value)
	case qb.OperatorToken:
		e.buf.WriteString(" ")
		e.buf.WriteString(t.Text)
		e.buf.WriteString(" ")
		return nil
	case qb.GroupStartToken:
		e.buf.WriteString("(")
		return nil
	case qb.GroupEndToken:
		e.buf.WriteString(")")
		return nil
	case qb.NullToken:
		e.buf.WriteString(e.quote(t.Column))
		e.buf.WriteString(" IS NULL")
		return nil
	case qb.NotNullToken:
		e.buf.WriteString(e.quote(t.Column))
		e.buf.WriteString(" IS NOT NULL")
		return nil
	case qb.InToken:
		return e.compileInList(t.Column, " IN (", t.Values)
	case qb.NotInToken:
		return e.compileInList(t.Column, " NOT IN (", t.Values)
	case qb.BetweenToken:
		return e.compileBetween(t.Column, " BETWEEN ", t.Start, t.End)
	case qb.NotBetweenToken:
		return e.compileBetween(t.Column, " NOT BETWEEN ", t.Start, t.End)
	default:
		return qb.NewInternalInvariantError(fmt.Sprintf("unhandled where token %T", tok))
	}
}

func (e *emitter) compileInList(column, keyword string, values []qb.Value) error {
	e.buf.WriteString(e.quote(column))
	e.buf.WriteString(keyword)
	for i, v := range values {
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

func (e *emitter) compileBetween(column, keyword string, start, end qb.Value) error {
	e.buf.WriteString(e.quote(column))
	e.buf.WriteString(keyword)
	if err := e.emitValue(start); err != nil {
		return err
	}
	e.buf.WriteString(" AND ")
	return e.emitValue(end)
}
