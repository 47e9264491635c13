package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/hotel-booking/internal/hotel"
	"github.com/beesaferoot/hotel-booking/internal/schema"
)

func SchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Describe the tables of a booking session",
		RunE: func(cmd *cobra.Command, args []string) error {
			verify, _ := cmd.Flags().GetBool("verify")
			if verify {
				return verifySchema(cmd)
			}

			tables, err := schema.Describe(hotel.Models()...)
			if err != nil {
				return fmt.Errorf("failed to describe session tables: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, table := range tables {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", table.TableName())
				for _, column := range table.TableColumns() {
					fmt.Fprintf(out, "  %-22s  %-8s  %s\n", column.ColumnName(), column.Type(), column.Constraints())
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("verify", false, "Migrate a fresh session and compare its tables with the models")

	return cmd
}

func verifySchema(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	diffs, err := schema.Compare(s.db, hotel.Models()...)
	if err != nil {
		return fmt.Errorf("failed to compare session tables: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(diffs) == 0 {
		fmt.Fprintln(out, "Session tables match the models.")
		return nil
	}

	printDiffs(out, diffs)
	return fmt.Errorf("%d session tables differ from the models", len(diffs))
}

func printDiffs(w io.Writer, diffs []schema.TableDiff) {
	for _, diff := range diffs {
		if diff.Missing {
			fmt.Fprintf(w, "%s: missing\n", diff.Table)
			continue
		}
		if len(diff.ColumnsToAdd) > 0 {
			fmt.Fprintf(w, "%s: missing columns %s\n", diff.Table, strings.Join(diff.ColumnsToAdd, ", "))
		}
		if len(diff.ColumnsToDrop) > 0 {
			fmt.Fprintf(w, "%s: unexpected columns %s\n", diff.Table, strings.Join(diff.ColumnsToDrop, ", "))
		}
	}
}
