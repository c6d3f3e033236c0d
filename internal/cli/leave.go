package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/session"
	"go-hris-cli/internal/shared/validate"
)

func newLeaveCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Manage leave requests",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List leave requests (own requests in the Employee view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Session.Role() == session.RoleEmployee {
				id := a.Session.EmployeeID()
				if id == "" {
					return fmt.Errorf("no employee selected, run: hris role employee")
				}
				leaves, err := a.Leaves.GetByEmployee(cmd.Context(), id)
				if err != nil {
					return err
				}
				renderLeaves(cmd.OutOrStdout(), leaves)
				return nil
			}
			leaves, err := a.Leaves.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			renderLeaves(cmd.OutOrStdout(), leaves)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lv, err := a.Leaves.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderLeave(cmd.OutOrStdout(), lv)
			return nil
		},
	}

	byEmployee := &cobra.Command{
		Use:   "by-employee <employee-id>",
		Short: "List one employee's leave requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := a.Leaves.GetByEmployee(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderLeaves(cmd.OutOrStdout(), leaves)
			return nil
		},
	}

	byStatus := &cobra.Command{
		Use:   "by-status <status>",
		Short: "List leave requests by status (Pending, Approved, Rejected, Cancelled)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := a.Leaves.GetByStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderLeaves(cmd.OutOrStdout(), leaves)
			return nil
		},
	}

	var submitReq leave.CreateLeaveRequest
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit a leave request (balance is checked before sending)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if submitReq.EmployeeID == "" && a.Session.Role() == session.RoleEmployee {
				submitReq.EmployeeID = a.Session.EmployeeID()
			}
			lv, err := a.Planner.Submit(cmd.Context(), submitReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leave request submitted, %d day(s)\n", lv.TotalDays)
			renderLeave(cmd.OutOrStdout(), lv)
			return nil
		},
	}
	submit.Flags().StringVar(&submitReq.EmployeeID, "employee", "", "employee id (defaults to the selected employee)")
	submit.Flags().StringVar(&submitReq.LeaveTypeID, "type", "", "leave type id")
	submit.Flags().StringVar(&submitReq.StartDate, "from", "", "start date (YYYY-MM-DD)")
	submit.Flags().StringVar(&submitReq.EndDate, "to", "", "end date (YYYY-MM-DD)")
	submit.Flags().StringVar(&submitReq.Reason, "reason", "", "reason for the leave")

	var updateReq leave.UpdateLeaveRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a pending leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			start, err := leave.ParseDate(updateReq.StartDate)
			if err != nil {
				return err
			}
			end, err := leave.ParseDate(updateReq.EndDate)
			if err != nil {
				return err
			}
			updateReq.TotalDays = leave.TotalDays(start, end)
			lv, err := a.Leaves.Update(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave request updated")
			renderLeave(cmd.OutOrStdout(), lv)
			return nil
		},
	}
	update.Flags().StringVar(&updateReq.StartDate, "from", "", "start date (YYYY-MM-DD)")
	update.Flags().StringVar(&updateReq.EndDate, "to", "", "end date (YYYY-MM-DD)")
	update.Flags().StringVar(&updateReq.Reason, "reason", "", "reason for the leave")

	var approveComments string
	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending leave request (HR)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lv, err := a.Leaves.Approve(cmd.Context(), args[0], leave.ApprovalRequest{
				Status:   leave.StatusApproved,
				Comments: approveComments,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leave request approved, %d day(s) booked\n", lv.TotalDays)
			return nil
		},
	}
	approve.Flags().StringVar(&approveComments, "comments", "", "approver comments")

	var rejectReason string
	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending leave request (HR)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Leaves.Approve(cmd.Context(), args[0], leave.ApprovalRequest{
				Status:          leave.StatusRejected,
				RejectionReason: rejectReason,
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave request rejected")
			return nil
		},
	}
	reject.Flags().StringVar(&rejectReason, "reason", "", "rejection reason (required)")

	var cancelReason string
	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an approved leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Leaves.Cancel(cmd.Context(), args[0], cancelReason); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave request cancelled")
			return nil
		},
	}
	cancel.Flags().StringVar(&cancelReason, "reason", "", "cancellation reason (required)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a leave request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Leaves.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Leave request deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, byEmployee, byStatus, submit, update, approve, reject, cancel, del)
	return cmd
}
