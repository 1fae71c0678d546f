package compiler

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

// S1 — SQL Server SELECT with TOP, WHERE, ORDER BY.
func TestScenarioS1SQLServerTop(t *testing.T) {
	q := qb.NewQuery().
		Select("Id", "Name").From("Users").
		Where("Active", qb.OpEQ, true).
		OrderByDescending("Id").
		Top(10)

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.SQLServer)
	require.NoError(t, err)
	require.Equal(t, "SELECT TOP 10 [Id], [Name] FROM [Users] WHERE [Active] = @p0 ORDER BY [Id] DESC", sql)
	require.Equal(t, []qb.Value{qb.Bool(true)}, params)
}

// S2 — PostgreSQL SELECT with LIMIT/OFFSET, IN, grouped OR.
func TestScenarioS2PostgresGroupedOr(t *testing.T) {
	q := qb.NewQuery().
		Select("*").From("t").
		BeginGroup().Where("a", qb.OpEQ, 1).OrWhere("b", qb.OpEQ, 2).EndGroup().
		WhereIn("c", 3, 4, 5).
		Limit(20).Offset(40)

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.Postgres)
	require.NoError(t, err)
	require.Equal(t,
		`SELECT * FROM "t" WHERE ("a" = @p0 OR "b" = @p1) AND "c" IN (@p2, @p3, @p4) LIMIT 20 OFFSET 40`,
		sql)
	require.Equal(t, []qb.Value{qb.Int(1), qb.Int(2), qb.Int(3), qb.Int(4), qb.Int(5)}, params)
}

// S3 — MySQL upsert.
func TestScenarioS3MySQLUpsert(t *testing.T) {
	q := qb.NewQuery().
		InsertInto("t", "id", "name").
		Values(1, "x").
		InsertOrUpdate("id")

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.MySQL)
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO `t` (`id`, `name`) VALUES (@p0, @p1) ON DUPLICATE KEY UPDATE `id` = VALUES(`id`), `name` = VALUES(`name`)",
		sql)
	require.Equal(t, []qb.Value{qb.Int(1), qb.String("x")}, params)
}

// S4 — SQLite upsert with restricted update set.
func TestScenarioS4SQLiteUpsertUpdateOnly(t *testing.T) {
	q := qb.NewQuery().
		InsertInto("t", "id", "name", "ts").
		Values(1, "x", "2024-01-01").
		InsertOrUpdate("id").
		UpsertUpdateOnly("name", "ts")

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.SQLite)
	require.NoError(t, err)
	require.Equal(t,
		`INSERT INTO "t" ("id", "name", "ts") VALUES (@p0, @p1, @p2) ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name", "ts" = EXCLUDED."ts"`,
		sql)
	require.Equal(t, []qb.Value{qb.Int(1), qb.String("x"), qb.String("2024-01-01")}, params)
}

// S5 — SQL Server MERGE upsert.
func TestScenarioS5SQLServerMergeUpsert(t *testing.T) {
	q := qb.NewQuery().
		InsertInto("t", "id", "name").
		Values(1, "x").
		InsertOrUpdate("id")

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.SQLServer)
	require.NoError(t, err)
	require.Equal(t,
		"MERGE INTO [t] AS target USING (VALUES (@p0, @p1)) AS source ([id], [name]) "+
			"ON (target.[id] = source.[id]) "+
			"WHEN MATCHED THEN UPDATE SET target.[id] = source.[id], target.[name] = source.[name] "+
			"WHEN NOT MATCHED THEN INSERT ([id], [name]) VALUES (source.[id], source.[name])",
		sql)
	require.Equal(t, []qb.Value{qb.Int(1), qb.String("x")}, params)
}

// S6 — UPDATE with subquery predicate.
func TestScenarioS6UpdateWithSubquery(t *testing.T) {
	sub := qb.NewQuery().Select("id").From("s").Where("x", qb.OpGT, 0)
	q := qb.NewQuery().
		Update("u").Set("flag", true).
		Where("id", "IN", qb.Sub(sub))

	c := New()
	sql, params, err := c.CompileWithParameters(q, dialect.Postgres)
	require.NoError(t, err)
	require.Equal(t, `UPDATE "u" SET "flag" = @p0 WHERE "id" IN (SELECT "id" FROM "s" WHERE "x" > @p1)`, sql)
	require.Equal(t, []qb.Value{qb.Bool(true), qb.Int(0)}, params)
}

// Oracle rejects upsert requests outright.
func TestOracleUpsertUnsupported(t *testing.T) {
	q := qb.NewQuery().InsertInto("t", "id").Values(1).InsertOrUpdate("id")
	_, _, err := New().CompileWithParameters(q, dialect.Oracle)
	require.ErrorIs(t, err, qb.ErrUnsupportedDialect)
}

// Unbalanced groups fail at compile time even though the builder itself
// never panics.
func TestUnbalancedGroupsFailAtCompile(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").BeginGroup().Where("a", qb.OpEQ, 1)
	_, _, err := New().CompileWithParameters(q, dialect.Postgres)
	require.ErrorIs(t, err, qb.ErrUnbalanced)
}

func TestAmbiguousStatementShapeFailsInternalInvariant(t *testing.T) {
	q := qb.NewQuery().Update("t").Set("c", 1).DeleteFrom("t")
	_, _, err := New().CompileWithParameters(q, dialect.Postgres)
	require.True(t, qb.IsInternalInvariant(err))
}

func TestEmptySelectCompilesToStar(t *testing.T) {
	q := qb.NewQuery().From("t")
	sql, err := New().Compile(q, dialect.Postgres)
	require.NoError(t, err)
	require.Equal(t, `SELECT * FROM "t"`, sql)
}

func TestOrderByDescendingOnMySQL(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").OrderByDescending("c")
	sql, err := New().Compile(q, dialect.MySQL)
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM `t` ORDER BY `c` DESC", sql)
}

func TestSQLServerLimitThenOffsetRendersOffsetFetch(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").Limit(10).Offset(5)
	sql, err := New().Compile(q, dialect.SQLServer)
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM [t] OFFSET 5 ROWS FETCH NEXT 10 ROWS ONLY", sql)
}

func TestLimitOnNonSQLServerDialects(t *testing.T) {
	for _, d := range []dialect.Dialect{dialect.Postgres, dialect.MySQL, dialect.SQLite} {
		q := qb.NewQuery().Select("*").From("t").Limit(20)
		sql, err := New().Compile(q, d)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(sql, "LIMIT 20"), "dialect %s: %s", d, sql)
	}
}

// Quantified invariant 1: placeholder count matches parameter count, and
// indices cover {0..n-1} with no gaps.
func TestPlaceholderCountMatchesParameterCount(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").
		WhereIn("a", 1, 2, 3).
		WhereBetween("b", 10, 20)

	sql, params, err := New().CompileWithParameters(q, dialect.Postgres)
	require.NoError(t, err)

	matches := regexp.MustCompile(`@p(\d+)`).FindAllStringSubmatch(sql, -1)
	require.Len(t, matches, len(params))

	seen := make(map[string]bool)
	for _, m := range matches {
		seen[m[1]] = true
	}
	require.Len(t, seen, len(params))
	for i := range params {
		require.True(t, seen[fmt.Sprintf("%d", i)])
	}
}

// Quantified invariant 2: substituting each @pN with format_literal(ps[N])
// in the parameterized SQL reproduces the inlined SQL.
func TestParameterizedSubstitutionMatchesInlined(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").
		Where("a", qb.OpEQ, "x'y").
		Where("b", qb.OpEQ, 5)

	c := New()
	paramSQL, params, err := c.CompileWithParameters(q, dialect.Postgres)
	require.NoError(t, err)
	inlineSQL, err := c.Compile(q, dialect.Postgres)
	require.NoError(t, err)

	reconstructed := paramSQL
	for i, p := range params {
		lit, err := formatLiteral(p)
		require.NoError(t, err)
		reconstructed = strings.Replace(reconstructed, fmt.Sprintf("@p%d", i), lit, 1)
	}
	require.Equal(t, inlineSQL, reconstructed)
}

// Quantified invariant 3: identifier quoting is applied exactly to
// identifiers that don't match a pass-through predicate.
func TestIdentifierQuotingPredicate(t *testing.T) {
	require.Equal(t, `"col"`, quoteIdentifier(dialect.Postgres, "col"))
	require.Equal(t, `"a"."b"`, quoteIdentifier(dialect.Postgres, "a.b"))
	require.Equal(t, "*", quoteIdentifier(dialect.Postgres, "*"))
	require.Equal(t, "count(*)", quoteIdentifier(dialect.Postgres, "count(*)"))
	require.Equal(t, "123", quoteIdentifier(dialect.Postgres, "123"))
	require.Equal(t, `"col" DESC`, quoteIdentifier(dialect.Postgres, "col DESC"))
	require.Equal(t, `"col" asc`, quoteIdentifier(dialect.Postgres, "col asc"))
}

// Quantified invariant 4: n well-nested begin/end group pairs always close
// out with open_groups == 0 and a successful compile.
func TestWellNestedGroupsAlwaysBalance(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t")
	for i := 0; i < 3; i++ {
		q.BeginGroup().Where("a", qb.OpEQ, i)
	}
	for i := 0; i < 3; i++ {
		q.EndGroup()
	}
	require.Equal(t, 0, q.OpenGroups())
	_, err := New().Compile(q, dialect.Postgres)
	require.NoError(t, err)
}

// Quantified invariant 5: the same Query compiled against two dialects
// carries the same ordered literal values; only the surrounding syntax
// differs.
func TestSameQueryAcrossDialectsPreservesParameterOrder(t *testing.T) {
	q := qb.NewQuery().Select("*").From("t").
		Where("a", qb.OpEQ, 1).
		WhereIn("b", 2, 3)

	_, p1, err := New().CompileWithParameters(q, dialect.Postgres)
	require.NoError(t, err)
	_, p2, err := New().CompileWithParameters(q, dialect.SQLServer)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestQueryIsReusableAcrossCompiles(t *testing.T) {
	q := qb.NewQuery().Select("id").From("t")
	c := New()
	sql1, err := c.Compile(q, dialect.Postgres)
	require.NoError(t, err)
	sql2, err := c.Compile(q, dialect.Postgres)
	require.NoError(t, err)
	require.Equal(t, sql1, sql2)
}
