package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/scribe/internal/cli"
	"github.com/example/scribe/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "scribe",
		Short:   "Scribe - legacy historical-records importer",
		Version: version.String(),
		Long: `Scribe migrates a decade of legacy organizational records from the old
database's text export into the current data store: accounts, events,
short links, quotes, officer position assignments, and recognitions.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
