package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/shared/validate"
)

func newLeaveTypeCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leavetype",
		Short: "Manage leave types",
	}

	var activeOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List leave types",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				types []leavetype.LeaveType
				err   error
			)
			if activeOnly {
				types, err = a.LeaveTypes.GetActive(cmd.Context())
			} else {
				types, err = a.LeaveTypes.GetAll(cmd.Context())
			}
			if err != nil {
				return err
			}
			renderLeaveTypes(cmd.OutOrStdout(), types)
			return nil
		},
	}
	list.Flags().BoolVar(&activeOnly, "active", false, "only active leave types")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one leave type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lt, err := a.LeaveTypes.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderLeaveTypes(cmd.OutOrStdout(), []leavetype.LeaveType{lt})
			return nil
		},
	}

	var createReq leavetype.CreateLeaveTypeRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a leave type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(createReq); err != nil {
				return err
			}
			lt, err := a.LeaveTypes.Create(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leave type %s created\n", lt.Code)
			return nil
		},
	}
	create.Flags().StringVar(&createReq.Name, "name", "", "leave type name")
	create.Flags().StringVar(&createReq.Code, "code", "", "unique leave type code")
	create.Flags().StringVar(&createReq.Description, "description", "", "description")
	create.Flags().IntVar(&createReq.DefaultDays, "default-days", 0, "days granted by auto-allocation")
	create.Flags().BoolVar(&createReq.IsPaid, "paid", true, "paid leave")
	create.Flags().BoolVar(&createReq.RequiresApproval, "requires-approval", true, "requires HR approval")

	var updateReq leavetype.UpdateLeaveTypeRequest
	var updateActive bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a leave type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("active") {
				updateReq.IsActive = &updateActive
			}
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			if _, err := a.LeaveTypes.Update(cmd.Context(), args[0], updateReq); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave type updated")
			return nil
		},
	}
	update.Flags().StringVar(&updateReq.Name, "name", "", "leave type name")
	update.Flags().StringVar(&updateReq.Code, "code", "", "unique leave type code")
	update.Flags().StringVar(&updateReq.Description, "description", "", "description")
	update.Flags().IntVar(&updateReq.DefaultDays, "default-days", 0, "days granted by auto-allocation")
	update.Flags().BoolVar(&updateReq.IsPaid, "paid", true, "paid leave")
	update.Flags().BoolVar(&updateReq.RequiresApproval, "requires-approval", true, "requires HR approval")
	update.Flags().BoolVar(&updateActive, "active", true, "leave type is active")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a leave type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.LeaveTypes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave type deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
