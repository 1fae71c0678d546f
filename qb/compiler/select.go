package compiler

import (
	"strconv"

	"github.com/corvuslabs/sqlqb/qb"
)

// compileSelect emits a SELECT statement.
func (e *emitter) compileSelect(q *qb.Query) error {
	e.buf.WriteString("SELECT ")

	if q.IsDistinct() {
		e.buf.WriteString("DISTINCT ")
	}

	pg := q.PaginationState()
	if e.dialect.SupportsTop() && (pg.Kind == qb.PaginationTop || pg.Kind == qb.PaginationLimit) {
		e.buf.WriteString("TOP ")
		e.buf.WriteString(strconv.Itoa(pg.N))
		e.buf.WriteString(" ")
	}

	cols := q.SelectColumns()
	if len(cols) == 0 {
		e.buf.WriteString("*")
	} else {
		for i, c := range cols {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.buf.WriteString(e.quote(c))
		}
	}

	if err := e.compileFrom(q.From()); err != nil {
		return err
	}

	for _, j := range q.Joins() {
		e.buf.WriteString(" ")
		e.buf.WriteString(joinKeyword(j.Kind))
		e.buf.WriteString(" ")
		e.buf.WriteString(e.quote(j.Table))
		if j.Kind != qb.JoinCross {
			e.buf.WriteString(" ON ")
			e.buf.WriteString(j.On)
		}
	}

	if tokens := q.WhereTokens(); len(tokens) > 0 {
		e.buf.WriteString(" WHERE ")
		if err := e.compileWhereTokens(tokens); err != nil {
			return err
		}
	}

	if gb := q.GroupBy(); len(gb) > 0 {
		e.buf.WriteString(" GROUP BY ")
		for i, c := range gb {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.buf.WriteString(e.quote(c))
		}
	}

	if having := q.Having(); len(having) > 0 {
		e.buf.WriteString(" HAVING ")
		for i, h := range having {
			if i > 0 {
				e.buf.WriteString(" AND ")
			}
			e.buf.WriteString(e.quote(h.Column))
			e.buf.WriteString(" ")
			e.buf.WriteString(h.Op)
			e.buf.WriteString(" ")
			if err := e.emitValue(h.Value); err != nil {
				return err
			}
		}
	}

	if ob := q.OrderBy(); len(ob) > 0 {
		e.buf.WriteString(" ORDER BY ")
		for i, o := range ob {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.buf.WriteString(e.quote(o.Expr))
		}
	}

	e.compilePaginationTail(pg)

	for _, c := range q.Compound() {
		e.buf.WriteString(" ")
		e.buf.WriteString(compoundKeyword(c.Kind))
		e.buf.WriteString(" ")
		if err := e.compileStatement(c.Query); err != nil {
			return err
		}
	}

	return nil
}

func (e *emitter) compileFrom(from qb.FromClause) error {
	if !from.IsSet() {
		return nil
	}
	e.buf.WriteString(" FROM ")
	if from.IsSubquery() {
		e.buf.WriteString("(")
		if err := e.compileStatement(from.Sub); err != nil {
			return err
		}
		e.buf.WriteString(") AS ")
		e.buf.WriteString(e.quote(from.Alias))
		return nil
	}
	e.buf.WriteString(e.quote(from.Table))
	return nil
}

// compilePaginationTail emits the dialect-specific trailing pagination
// clause. SQL Server's Top and Limit modes are rendered earlier, as TOP n in
// the SELECT-list prefix, so they have nothing left to emit here; its
// OFFSET/FETCH form only applies to the LimitOffset/OffsetOnly modes.
func (e *emitter) compilePaginationTail(pg qb.Pagination) {
	if e.dialect.SupportsTop() {
		switch pg.Kind {
		case qb.PaginationOffsetOnly:
			e.buf.WriteString(" OFFSET ")
			e.buf.WriteString(strconv.Itoa(pg.Off))
			e.buf.WriteString(" ROWS")
		case qb.PaginationLimitOffset:
			e.buf.WriteString(" OFFSET ")
			e.buf.WriteString(strconv.Itoa(pg.Off))
			e.buf.WriteString(" ROWS FETCH NEXT ")
			e.buf.WriteString(strconv.Itoa(pg.N))
			e.buf.WriteString(" ROWS ONLY")
		}
		return
	}

	switch pg.Kind {
	case qb.PaginationLimit:
		e.buf.WriteString(" LIMIT ")
		e.buf.WriteString(strconv.Itoa(pg.N))
	case qb.PaginationLimitOffset:
		e.buf.WriteString(" LIMIT ")
		e.buf.WriteString(strconv.Itoa(pg.N))
		e.buf.WriteString(" OFFSET ")
		e.buf.WriteString(strconv.Itoa(pg.Off))
	case qb.PaginationOffsetOnly:
		e.buf.WriteString(" OFFSET ")
		e.buf.WriteString(strconv.Itoa(pg.Off))
	}
}

func joinKeyword(k qb.JoinKind) string {
	switch k {
	case qb.JoinLeft:
		return "LEFT JOIN"
	case qb.JoinRight:
		return "RIGHT JOIN"
	case qb.JoinFullOuter:
		return "FULL OUTER JOIN"
	case qb.JoinCross:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

func compoundKeyword(k qb.CompoundKind) string {
	switch k {
	case qb.CompoundUnionAll:
		return "UNION ALL"
	case qb.CompoundIntersect:
		return "INTERSECT"
	default:
		return "UNION"
	}
}
