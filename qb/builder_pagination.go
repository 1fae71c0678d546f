package qb

// Limit sets the LIMIT count. Combined with a prior Offset call it produces
// the LimitOffset mode; on its own it produces the Limit mode. Setting
// Limit always clears Top mode.
func (q *Query) Limit(n int) *Query {
	if q.failed() {
		return q
	}
	switch q.pagination.Kind {
	case PaginationOffsetOnly, PaginationLimitOffset:
		q.pagination = Pagination{Kind: PaginationLimitOffset, N: n, Off: q.pagination.Off}
	default:
		q.pagination = Pagination{Kind: PaginationLimit, N: n}
	}
	return q
}

// Offset sets the OFFSET count. Combined with a prior Limit call it
// produces the LimitOffset mode; on its own it produces the OffsetOnly
// mode. Setting Offset clears Top mode, mirroring Limit, since Top and
// Offset are mutually exclusive pagination modes.
func (q *Query) Offset(n int) *Query {
	if q.failed() {
		return q
	}
	switch q.pagination.Kind {
	case PaginationLimit, PaginationLimitOffset:
		q.pagination = Pagination{Kind: PaginationLimitOffset, N: q.pagination.N, Off: n}
	default:
		q.pagination = Pagination{Kind: PaginationOffsetOnly, Off: n}
	}
	return q
}

// Top sets SQL Server-style TOP n pagination, clearing any Limit/Offset
// state.
func (q *Query) Top(n int) *Query {
	if q.failed() {
		return q
	}
	q.pagination = Pagination{Kind: PaginationTop, N: n}
	return q
}
