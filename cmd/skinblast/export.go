package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/cjnoack/skinblast/internal/iodb"
)

// getExportCmd returns the export command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getExportCmd() *cobra.Command {
	var dbPath string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the joined table to SQLite",
		Long: `Run the pipeline through the left join and write the result
to a SQLite database file.

The database holds a samples table mirroring the metadata columns, a
hits table with the normalized alignment records, and a joined view
reproducing the left join. Hit IDs are deterministic UUID v5 values
derived from record content, so re-exporting unchanged input produces
identical rows.

Examples:
  skinblast export
  skinblast export --db skin_communities.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(dbPath)
		},
	}

	exportCmd.Flags().StringVarP(&dbPath, "db", "d", "skinblast.sqlite",
		"path of the SQLite database to write")

	return exportCmd
}

func runExport(dbPath string) error {
	ctx := context.Background()

	joined, err := buildJoined(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	exp := iodb.New(cfg)
	if err = exp.Export(ctx, joined, dbPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Exported joined table to <em>%s</em>", dbPath)

	return nil
}
