// Package compiler renders a *qb.Query into dialect-specific SQL text,
// either with values inlined as literals or with ordered "@pN" placeholders
// and a companion parameter vector suitable for binding to a prepared
// statement.
//
// The compiler performs no I/O and holds no state between calls: Compile
// and CompileWithParameters are pure functions of (query, dialect), and the
// same Compiler value may be reused across goroutines.
package compiler

import (
	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

// Compiler renders a Query into SQL text for a given Dialect. Its zero
// value is ready to use.
type Compiler struct{}

// New returns a ready-to-use Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile renders q for d with every value inlined as a literal via
// formatLiteral. Use CompileWithParameters instead when the result will be
// bound to a prepared statement.
func (c *Compiler) Compile(q *qb.Query, d dialect.Dialect) (string, error) {
	e := &emitter{dialect: d, inline: true}
	if err := e.compileStatement(q); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

// CompileWithParameters renders q for d with "@p0, @p1, ..." placeholders
// in left-to-right emission order, returning the SQL text alongside the
// ordered parameter vector placeholders bind against. Parameter indices are
// monotonically increasing across nested subqueries, which share the same
// parameter vector as their parent.
func (c *Compiler) CompileWithParameters(q *qb.Query, d dialect.Dialect) (string, []qb.Value, error) {
	e := &emitter{dialect: d, inline: false}
	if err := e.compileStatement(q); err != nil {
		return "", nil, err
	}
	return e.buf.String(), e.params, nil
}
