package qb

import "strings"

func (q *Query) addJoin(kind JoinKind, table, condition string) *Query {
	if q.failed() {
		return q
	}
	if strings.TrimSpace(table) == "" {
		q.fail(NewInvalidInputError("join table"))
		return q
	}
	if kind != JoinCross && strings.TrimSpace(condition) == "" {
		q.fail(NewInvalidInputError("join condition"))
		return q
	}
	q.joins = append(q.joins, JoinClause{Kind: kind, Table: table, On: condition})
	return q
}

// Join appends an INNER JOIN. condition is treated opaquely — it is never
// reparsed, only copied verbatim into the emitted ON clause.
func (q *Query) Join(table, condition string) *Query {
	return q.addJoin(JoinInner, table, condition)
}

// LeftJoin appends a LEFT JOIN.
func (q *Query) LeftJoin(table, condition string) *Query {
	return q.addJoin(JoinLeft, table, condition)
}

// RightJoin appends a RIGHT JOIN.
func (q *Query) RightJoin(table, condition string) *Query {
	return q.addJoin(JoinRight, table, condition)
}

// FullOuterJoin appends a FULL OUTER JOIN.
func (q *Query) FullOuterJoin(table, condition string) *Query {
	return q.addJoin(JoinFullOuter, table, condition)
}

// CrossJoin appends a CROSS JOIN. Unlike the other join kinds, it takes
// only a table — CROSS JOIN has no ON condition.
func (q *Query) CrossJoin(table string) *Query {
	return q.addJoin(JoinCross, table, "")
}
