// Package dialect enumerates the SQL flavors the compiler can target and
// holds the per-dialect metadata (identifier brackets, pagination style,
// upsert support) that the compiler branches on.
//
// It carries no behavior of its own beyond small lookup tables; the actual
// rendering lives in qb/compiler.
package dialect

// Dialect tags one of the five supported SQL flavors. The compiler
// branches on it for identifier quoting, row-limit syntax, and upsert form.
type Dialect int

const (
	// SQLServer targets Microsoft SQL Server (TOP, OFFSET/FETCH, MERGE upsert).
	SQLServer Dialect = iota
	// Postgres targets PostgreSQL (LIMIT/OFFSET, ON CONFLICT upsert).
	Postgres
	// MySQL targets MySQL/MariaDB (LIMIT/OFFSET, ON DUPLICATE KEY UPDATE).
	MySQL
	// SQLite targets SQLite (LIMIT/OFFSET, ON CONFLICT upsert, same as Postgres).
	SQLite
	// Oracle targets Oracle. Upsert is unsupported (see ErrUnsupportedDialect);
	// other shapes inherit double-quote identifiers and LIMIT/OFFSET emission,
	// which Oracle does not natively accept. Documented limitation, not a bug.
	Oracle
)

// String returns a human-readable dialect name, mostly for error messages
// and debug logging.
func (d Dialect) String() string {
	switch d {
	case SQLServer:
		return "sqlserver"
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	case Oracle:
		return "oracle"
	default:
		return "unknown"
	}
}

// Brackets returns the opening and closing identifier-quote characters for
// the dialect: SQL Server uses square brackets, MySQL uses backticks, and
// everything else uses ANSI double quotes.
func (d Dialect) Brackets() (open, close string) {
	switch d {
	case SQLServer:
		return "[", "]"
	case MySQL:
		return "`", "`"
	default:
		return `"`, `"`
	}
}

// SupportsTop reports whether the dialect renders pagination via a leading
// TOP n (SQL Server only); all others use trailing LIMIT/OFFSET.
func (d Dialect) SupportsTop() bool {
	return d == SQLServer
}

// UpsertForm identifies which upsert rendering strategy a dialect uses.
type UpsertForm int

const (
	// UpsertOnConflict renders INSERT ... ON CONFLICT (...) DO UPDATE SET ...
	UpsertOnConflict UpsertForm = iota
	// UpsertOnDuplicateKey renders INSERT ... ON DUPLICATE KEY UPDATE ...
	UpsertOnDuplicateKey
	// UpsertMerge renders a MERGE INTO ... USING (VALUES ...) statement.
	UpsertMerge
	// UpsertUnsupported means the dialect rejects upsert requests outright.
	UpsertUnsupported
)

// UpsertForm returns which upsert rendering strategy applies to the dialect.
func (d Dialect) UpsertForm() UpsertForm {
	switch d {
	case Postgres, SQLite:
		return UpsertOnConflict
	case MySQL:
		return UpsertOnDuplicateKey
	case SQLServer:
		return UpsertMerge
	default:
		return UpsertUnsupported
	}
}
