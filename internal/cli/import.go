package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/scribe/internal/ports/primary"
	"github.com/example/scribe/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [dump-file]",
		Short: "Import the legacy database dump into the target store",
		Long: `Import a decade of legacy records from the old database's text
export into the target store.

Officer titles are normalized so legacy variations (e.g. "Events",
"Events Head", "PR", "Public Relations") all map to a single canonical
position. Positions that no longer exist in the current org are created
as retired so they appear in historical views but not as fillable
current positions.

Safe to run multiple times: every write is idempotent.

Examples:
  scribe import ~/Downloads/postgres-2025-04-09.sql
  scribe import ./dump.sql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("dump file not found: %s", path)
			}

			ctx := context.Background()
			if _, err := wire.ImportService().Run(ctx, primary.ImportRequest{DumpPath: path}); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// expandPath resolves a leading ~ against the home directory and makes the
// path absolute.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}
