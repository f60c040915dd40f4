package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var VERSION = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:          "navzone",
		Short:        "navigation mesh zone service",
		Version:      VERSION,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		ServeCmd(),
		BuildCmd(),
		PathCmd(),
		NatsCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
