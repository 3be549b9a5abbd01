package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/scribe/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show record counts in the target store",
		Long:  `Show per-category record counts and the per-position historical breakdown without running an import.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			totals, err := wire.ImportService().Totals(ctx)
			if err != nil {
				return fmt.Errorf("failed to read store totals: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tCOUNT")
			fmt.Fprintln(w, "--------\t-----")
			fmt.Fprintf(w, "Accounts\t%d\n", totals.Accounts)
			fmt.Fprintf(w, "Events\t%d\n", totals.Events)
			fmt.Fprintf(w, "Short links\t%d\n", totals.ShortLinks)
			fmt.Fprintf(w, "Quotes\t%d\n", totals.Quotes)
			fmt.Fprintf(w, "Positions\t%d\n", totals.Positions)
			fmt.Fprintf(w, "Assignments\t%d\n", totals.Assignments)
			fmt.Fprintf(w, "Recognitions\t%d\n", totals.Recognitions)
			w.Flush()

			positions, err := wire.ImportService().Positions(ctx)
			if err != nil {
				return fmt.Errorf("failed to read position breakdown: %w", err)
			}
			if len(positions) == 0 {
				return nil
			}

			fmt.Println("\nPositions:")
			for _, p := range positions {
				tag := ""
				if p.Retired {
					tag = " " + color.New(color.FgRed).Sprint("[RETIRED]")
				}
				fmt.Printf("  %-28s %3d historical assignments%s\n", p.Title, p.Historical, tag)
			}
			return nil
		},
	}

	return cmd
}
