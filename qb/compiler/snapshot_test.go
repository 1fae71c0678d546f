package compiler

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

func TestMain(m *testing.M) {
	v := m.Run()

	dirty, err := snaps.Clean(m)
	if err != nil {
		fmt.Println("Error cleaning snaps:", err)
		os.Exit(1)
	}
	if dirty {
		fmt.Println("Some snapshots were outdated.")
		os.Exit(1)
	}

	os.Exit(v)
}

var allDialects = []dialect.Dialect{
	dialect.SQLServer,
	dialect.Postgres,
	dialect.MySQL,
	dialect.SQLite,
	dialect.Oracle,
}

// buildSelectQuery, buildUpdateQuery, buildDeleteQuery and buildUpsertQuery
// construct the representative SELECT/UPDATE/DELETE/upsert statements of the
// snapshot corpus; each dialect subtest builds its own fresh Query.
func buildSelectQuery() *qb.Query {
	return qb.NewQuery().
		Select("Id", "Name", "Email").
		From("Users").
		LeftJoin("Orders", "Orders.UserId = Users.Id").
		Where("Active", qb.OpEQ, true).
		WhereIn("Region", "east", "west").
		GroupBy("Region").
		Having("Region", qb.OpNEQ, "unknown").
		OrderByDescending("Id").
		Limit(25).
		Offset(50)
}

func buildUpdateQuery() *qb.Query {
	return qb.NewQuery().
		Update("Users").
		Set("LastSeen", "2024-01-01 00:00:00").
		WhereEq("Id", 42)
}

func buildDeleteQuery() *qb.Query {
	return qb.NewQuery().
		DeleteFrom("Sessions").
		WhereNull("UserId")
}

func buildUpsertQuery() *qb.Query {
	return qb.NewQuery().
		InsertInto("Accounts", "Id", "Balance").
		Values(7, 100).
		InsertOrUpdate("Id")
}

func TestSnapshotSelectAcrossDialects(t *testing.T) {
	for _, d := range allDialects {
		t.Run(d.String(), func(t *testing.T) {
			sql, params, err := New().CompileWithParameters(buildSelectQuery(), d)
			if err != nil {
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			snaps.MatchSnapshot(t, sql, params)
		})
	}
}

func TestSnapshotUpdateAcrossDialects(t *testing.T) {
	for _, d := range allDialects {
		t.Run(d.String(), func(t *testing.T) {
			sql, params, err := New().CompileWithParameters(buildUpdateQuery(), d)
			if err != nil {
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			snaps.MatchSnapshot(t, sql, params)
		})
	}
}

func TestSnapshotDeleteAcrossDialects(t *testing.T) {
	for _, d := range allDialects {
		t.Run(d.String(), func(t *testing.T) {
			sql, params, err := New().CompileWithParameters(buildDeleteQuery(), d)
			if err != nil {
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			snaps.MatchSnapshot(t, sql, params)
		})
	}
}

func TestSnapshotUpsertAcrossDialects(t *testing.T) {
	for _, d := range allDialects {
		t.Run(d.String(), func(t *testing.T) {
			sql, params, err := New().CompileWithParameters(buildUpsertQuery(), d)
			if err != nil {
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			snaps.MatchSnapshot(t, sql, params)
		})
	}
}
