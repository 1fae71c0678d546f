package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/corvuslabs/sqlqb/internal/config"
	"github.com/corvuslabs/sqlqb/qb"
	"github.com/corvuslabs/sqlqb/qb/compiler"
	"github.com/corvuslabs/sqlqb/qb/dialect"
)

var (
	dialectFlag string
	inlineFlag  bool
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a JSON query description to SQL",
		Long: `Compile reads a queryDescription JSON document from a file argument, or
from stdin when no file is given, and prints the compiled SQL.

Example document:

  {
    "from": "Users",
    "columns": ["Id", "Name"],
    "where": [{"column": "Active", "op": "=", "value": true}],
    "order_by_desc": ["Id"],
    "top": 10
  }`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompile,
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "target dialect (sqlserver, postgres, mysql, sqlite, oracle)")
	cmd.Flags().BoolVar(&inlineFlag, "inline", false, "inline literal values instead of emitting placeholders")
	return cmd
}

// queryDescription is the JSON shape a caller supplies to describe a SELECT.
// It covers the common fluent-builder surface (source, where equality/
// comparison predicates, ordering, pagination) rather than the entire
// qb.Query surface — callers who need INSERT/UPDATE/DELETE or compound
// queries use the qb package directly.
type queryDescription struct {
	Dialect     string      `json:"dialect"`
	From        string      `json:"from"`
	Columns     []string    `json:"columns"`
	Distinct    bool        `json:"distinct"`
	Where       []whereJSON `json:"where"`
	OrderBy     []string    `json:"order_by"`
	OrderByDesc []string    `json:"order_by_desc"`
	GroupBy     []string    `json:"group_by"`
	Limit       *int        `json:"limit"`
	Offset      *int        `json:"offset"`
	Top         *int        `json:"top"`
}

type whereJSON struct {
	Column string `json:"column"`
	Op     string `json:"op"`
	Value  any    `json:"value"`
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	raw, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading query description: %w", err)
	}

	var desc queryDescription
	if err := json.Unmarshal(raw, &desc); err != nil {
		return fmt.Errorf("parsing query description: %w", err)
	}

	d, err := resolveDialect(desc.Dialect, cfg)
	if err != nil {
		return err
	}

	inline := inlineFlag || (!cmd.Flags().Changed("inline") && cfg.Inline)

	q, err := buildQuery(desc)
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	c := compiler.New()
	if inline {
		sql, err := c.Compile(q, d)
		if err != nil {
			return fmt.Errorf("compiling query: %w", err)
		}
		fmt.Println(sql)
		return nil
	}

	sql, params, err := c.CompileWithParameters(q, d)
	if err != nil {
		return fmt.Errorf("compiling query: %w", err)
	}
	log.Info("compiled query", zap.String("dialect", d.String()), zap.Int("param_count", len(params)))
	fmt.Println(sql)
	for i, p := range params {
		fmt.Printf("@p%d = %v\n", i, p.Raw())
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func resolveDialect(name string, cfg *config.Config) (dialect.Dialect, error) {
	if name == "" {
		name = dialectFlag
	}
	if name == "" {
		name = cfg.DefaultDialect
	}
	switch name {
	case "sqlserver", "mssql":
		return dialect.SQLServer, nil
	case "postgres", "postgresql":
		return dialect.Postgres, nil
	case "mysql":
		return dialect.MySQL, nil
	case "sqlite":
		return dialect.SQLite, nil
	case "oracle":
		return dialect.Oracle, nil
	default:
		return dialect.Dialect(0), fmt.Errorf("unknown dialect %q", name)
	}
}

func buildQuery(desc queryDescription) (*qb.Query, error) {
	q := qb.NewQuery()
	q.Select(desc.Columns...)
	if desc.Distinct {
		q.Distinct()
	}
	if desc.From != "" {
		q.From(desc.From)
	}
	for _, w := range desc.Where {
		op := w.Op
		if op == "" {
			op = qb.OpEQ
		}
		q.Where(w.Column, op, w.Value)
	}
	if len(desc.GroupBy) > 0 {
		q.GroupBy(desc.GroupBy...)
	}
	if len(desc.OrderBy) > 0 {
		q.OrderBy(desc.OrderBy...)
	}
	if len(desc.OrderByDesc) > 0 {
		q.OrderByDescending(desc.OrderByDesc...)
	}
	if desc.Top != nil {
		q.Top(*desc.Top)
	} else {
		if desc.Limit != nil {
			q.Limit(*desc.Limit)
		}
		if desc.Offset != nil {
			q.Offset(*desc.Offset)
		}
	}
	if err := q.Err(); err != nil {
		return nil, err
	}
	return q, nil
}
