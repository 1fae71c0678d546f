// Command qbfmt compiles a JSON-described query into SQL text for a chosen
// dialect. It is a thin convenience wrapper around the qb and qb/compiler
// packages, not part of their core contract.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qbfmt: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := Execute(logger); err != nil {
		logger.Error("qbfmt failed", zap.Error(err))
		os.Exit(1)
	}
}
