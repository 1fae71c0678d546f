package qb

import "strings"

// OrderBy appends ascending ORDER BY columns.
func (q *Query) OrderBy(columns ...string) *Query {
	if q.failed() {
		return q
	}
	for _, c := range columns {
		if strings.TrimSpace(c) == "" {
			q.fail(NewInvalidInputError("order by column"))
			return q
		}
		q.orderBy = append(q.orderBy, OrderByExpr{Expr: c})
	}
	return q
}

// OrderByDescending appends ORDER BY columns with a trailing " DESC"
// suffix stored directly on the expression string.
func (q *Query) OrderByDescending(columns ...string) *Query {
	if q.failed() {
		return q
	}
	for _, c := range columns {
		if strings.TrimSpace(c) == "" {
			q.fail(NewInvalidInputError("order by column"))
			return q
		}
		q.orderBy = append(q.orderBy, OrderByExpr{Expr: c + " DESC"})
	}
	return q
}

// OrderByRaw appends raw ORDER BY expressions, accepted verbatim. It shares
// the same identifier-quoting path as OrderBy/OrderByDescending at compile
// time, so an expression containing a '(' (e.g. a function call) passes
// through unquoted while a plain column name still gets quoted.
func (q *Query) OrderByRaw(exprs ...string) *Query {
	if q.failed() {
		return q
	}
	for _, e := range exprs {
		if strings.TrimSpace(e) == "" {
			q.fail(NewInvalidInputError("order by expression"))
			return q
		}
		q.orderBy = append(q.orderBy, OrderByExpr{Expr: e})
	}
	return q
}
