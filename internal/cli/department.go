package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/department"
	"go-hris-cli/internal/shared/validate"
)

func newDepartmentCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			departments, err := a.Departments.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			renderDepartments(cmd.OutOrStdout(), departments)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dept, err := a.Departments.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderDepartment(cmd.OutOrStdout(), dept)
			return nil
		},
	}

	members := &cobra.Command{
		Use:   "employees <id>",
		Short: "List a department's employees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := a.Departments.GetEmployees(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderEmployees(cmd.OutOrStdout(), employees)
			return nil
		},
	}

	var createReq department.CreateDepartmentRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(createReq); err != nil {
				return err
			}
			dept, err := a.Departments.Create(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Department %s created\n", dept.Code)
			renderDepartment(cmd.OutOrStdout(), dept)
			return nil
		},
	}
	create.Flags().StringVar(&createReq.Name, "name", "", "department name")
	create.Flags().StringVar(&createReq.Code, "code", "", "unique department code")
	create.Flags().StringVar(&createReq.Description, "description", "", "description")
	create.Flags().StringVar(&createReq.ManagerID, "manager", "", "manager employee id")

	var updateReq department.UpdateDepartmentRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			dept, err := a.Departments.Update(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Department updated")
			renderDepartment(cmd.OutOrStdout(), dept)
			return nil
		},
	}
	update.Flags().StringVar(&updateReq.Name, "name", "", "department name")
	update.Flags().StringVar(&updateReq.Code, "code", "", "unique department code")
	update.Flags().StringVar(&updateReq.Description, "description", "", "description")
	update.Flags().StringVar(&updateReq.ManagerID, "manager", "", "manager employee id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Departments.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Department deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, members, create, update, del)
	return cmd
}
