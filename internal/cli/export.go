package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/export"
)

func newExportCmd(a *app.App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export employees, allocations and leaves to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			employees, err := a.Employees.GetAll(ctx)
			if err != nil {
				return err
			}
			allocations, err := a.Allocations.GetAll(ctx)
			if err != nil {
				return err
			}
			leaves, err := a.Leaves.GetAll(ctx)
			if err != nil {
				return err
			}

			wb := export.NewWorkbook()
			defer wb.Close()

			if err := wb.AddEmployees(employees); err != nil {
				return err
			}
			if err := wb.AddAllocations(allocations); err != nil {
				return err
			}
			if err := wb.AddLeaves(leaves); err != nil {
				return err
			}
			if err := wb.Save(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d employees, %d allocations, %d leaves to %s\n",
				len(employees), len(allocations), len(leaves), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "hris-export.xlsx", "output file path")
	return cmd
}
