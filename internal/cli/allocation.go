package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/shared/validate"
)

func newAllocationCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "allocation",
		Aliases: []string{"alloc"},
		Short:   "Manage leave allocations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all allocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			allocations, err := a.Allocations.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			renderAllocations(cmd.OutOrStdout(), allocations)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alloc, err := a.Allocations.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderAllocations(cmd.OutOrStdout(), []leaveallocation.Allocation{alloc})
			return nil
		},
	}

	var byEmployeeYear int
	byEmployee := &cobra.Command{
		Use:   "by-employee <employee-id>",
		Short: "List one employee's allocations, optionally for one year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allocations, err := a.Allocations.GetByEmployee(cmd.Context(), args[0], byEmployeeYear)
			if err != nil {
				return err
			}
			renderAllocations(cmd.OutOrStdout(), allocations)
			return nil
		},
	}
	byEmployee.Flags().IntVar(&byEmployeeYear, "year", 0, "restrict to one calendar year")

	var balanceYear int
	balance := &cobra.Command{
		Use:   "balance <employee-id>",
		Short: "Show an employee's per-type leave balance for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := balanceYear
			if year == 0 {
				year = time.Now().Year()
			}
			summary, err := a.Allocations.GetBalanceSummary(cmd.Context(), args[0], year)
			if err != nil {
				return err
			}
			renderBalanceSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	balance.Flags().IntVar(&balanceYear, "year", 0, "calendar year (default: current)")

	var createReq leaveallocation.CreateAllocationRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an allocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if createReq.Year == 0 {
				createReq.Year = time.Now().Year()
			}
			if err := validate.Struct(createReq); err != nil {
				return err
			}
			alloc, err := a.Allocations.Create(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Allocated %d day(s) for %d\n", alloc.AllocatedDays, alloc.Year)
			return nil
		},
	}
	create.Flags().StringVar(&createReq.EmployeeID, "employee", "", "employee id")
	create.Flags().StringVar(&createReq.LeaveTypeID, "type", "", "leave type id")
	create.Flags().IntVar(&createReq.AllocatedDays, "days", 0, "allocated days")
	create.Flags().IntVar(&createReq.Year, "year", 0, "calendar year (default: current)")
	create.Flags().StringVar(&createReq.Notes, "notes", "", "notes")

	var updateReq leaveallocation.UpdateAllocationRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			if _, err := a.Allocations.Update(cmd.Context(), args[0], updateReq); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Allocation updated")
			return nil
		},
	}
	update.Flags().IntVar(&updateReq.AllocatedDays, "days", 0, "allocated days")
	update.Flags().StringVar(&updateReq.Notes, "notes", "", "notes")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Allocations.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Allocation deleted")
			return nil
		},
	}

	var autoYear int
	auto := &cobra.Command{
		Use:   "auto-allocate",
		Short: "Auto-allocate leave for every active employee (HR)",
		RunE: func(cmd *cobra.Command, args []string) error {
			year := autoYear
			if year == 0 {
				year = time.Now().Year()
			}
			out := cmd.OutOrStdout()
			result, err := a.Allocator.Run(cmd.Context(), year, func(p leaveallocation.Progress) {
				fmt.Fprintf(out, "\rAllocating leave... %d/%d", p.Current, p.Total)
			})
			if result.Total > 0 {
				fmt.Fprintln(out)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result.Summary())
			return nil
		},
	}
	auto.Flags().IntVar(&autoYear, "year", 0, "calendar year (default: current)")

	cmd.AddCommand(list, get, byEmployee, balance, create, update, del, auto)
	return cmd
}
