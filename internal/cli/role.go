package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/session"
)

func newRoleCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Show or change the acting role",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current role and selected employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Role: %s\n", a.Session.Role())
			if a.Session.Role() == session.RoleEmployee {
				id := a.Session.EmployeeID()
				if id == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Employee: none selected")
					return nil
				}
				for _, e := range a.Session.Employees() {
					if e.ID == id {
						fmt.Fprintf(cmd.OutOrStdout(), "Employee: %s (%s)\n", e.Name, e.EmployeeNumber)
						return nil
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Employee: %s\n", id)
			}
			return nil
		},
	}

	switchCmd := &cobra.Command{
		Use:   "switch <HR|Employee>",
		Short: "Switch between the HR and Employee view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := session.Role(args[0])
			if err := a.Session.SetRole(cmd.Context(), role); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now acting as %s\n", role)
			if role == session.RoleEmployee {
				renderEmployeePicker(cmd, a)
			}
			return nil
		},
	}

	employeeCmd := &cobra.Command{
		Use:   "employee [id-or-number]",
		Short: "List selectable employees, or pick one by id or employee number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Session.Role() != session.RoleEmployee {
				return fmt.Errorf("switch to the Employee role first")
			}
			if len(args) == 0 {
				renderEmployeePicker(cmd, a)
				return nil
			}
			for _, e := range a.Session.Employees() {
				if e.ID == args[0] || e.EmployeeNumber == args[0] {
					a.Session.SetEmployee(e.ID)
					fmt.Fprintf(cmd.OutOrStdout(), "Acting as %s (%s)\n", e.Name, e.EmployeeNumber)
					return nil
				}
			}
			return fmt.Errorf("no employee matches %q", args[0])
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Reload the employee picker from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Session.Refresh(cmd.Context())
			renderEmployeePicker(cmd, a)
			return nil
		},
	}

	cmd.AddCommand(status, switchCmd, employeeCmd, refresh)
	return cmd
}

func renderEmployeePicker(cmd *cobra.Command, a *app.App) {
	employees := a.Session.Employees()
	if len(employees) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No employees available")
		return
	}
	current := a.Session.EmployeeID()
	for _, e := range employees {
		marker := "  "
		if e.ID == current {
			marker = "* "
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s (%s)\n", marker, e.ID, e.Name, e.EmployeeNumber)
	}
}
