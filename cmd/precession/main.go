package main

import (
	"context"
	"fmt"
	"os"

	"precession/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer shutdown(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
