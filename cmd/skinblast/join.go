package main

import (
	"context"
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/cjnoack/skinblast/internal/iofs"
	"github.com/cjnoack/skinblast/internal/ioreport"
)

// getJoinCmd returns the join command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getJoinCmd() *cobra.Command {
	var (
		format string
		output string
	)

	joinCmd := &cobra.Command{
		Use:   "join",
		Short: "Dump the joined table",
		Long: `Run the pipeline through the left join and dump the joined
table.

Every metadata row appears at least once: once per matching BLAST hit,
or once with empty alignment fields when no hit matched. Hits for
samples absent from metadata are dropped. Output row order is
deterministic, so dumping unchanged input twice yields identical bytes.

Examples:
  skinblast join
  skinblast join --format tsv
  skinblast join --format json --output joined.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(format, output)
		},
	}

	joinCmd.Flags().StringVarP(&format, "format", "f", "csv",
		"output format: csv, tsv or json")
	joinCmd.Flags().StringVarP(&output, "output", "o", "",
		"output file (default: stdout)")

	return joinCmd
}

func runJoin(format, output string) error {
	ctx := context.Background()

	joined, err := buildJoined(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			err = iofs.WriteFileError(output, err)
			gn.PrintErrorMessage(err)
			return err
		}
		defer f.Close()
		w = f
	}

	if err = ioreport.Dump(joined, format, w); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}
