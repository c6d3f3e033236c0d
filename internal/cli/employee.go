package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/shared/validate"
)

func newEmployeeCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Manage employees",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := a.Employees.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			renderEmployees(cmd.OutOrStdout(), employees)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emp, err := a.Employees.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderEmployee(cmd.OutOrStdout(), emp)
			return nil
		},
	}

	search := &cobra.Command{
		Use:   "search <term>",
		Short: "Search employees by name or number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := a.Employees.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderEmployees(cmd.OutOrStdout(), employees)
			return nil
		},
	}

	var createReq employee.CreateEmployeeRequest
	var createSalary string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if createSalary != "" {
				salary, err := decimal.NewFromString(createSalary)
				if err != nil {
					return fmt.Errorf("invalid salary %q", createSalary)
				}
				createReq.Salary = salary
			}
			if err := validate.Struct(createReq); err != nil {
				return err
			}
			emp, err := a.Employees.Create(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employee %s created\n", emp.EmployeeNumber)
			renderEmployee(cmd.OutOrStdout(), emp)
			return nil
		},
	}
	create.Flags().StringVar(&createReq.EmployeeNumber, "number", "", "employee number")
	create.Flags().StringVar(&createReq.FirstName, "first-name", "", "first name")
	create.Flags().StringVar(&createReq.LastName, "last-name", "", "last name")
	create.Flags().StringVar(&createReq.Email, "email", "", "email address")
	create.Flags().StringVar(&createReq.Phone, "phone", "", "phone number")
	create.Flags().StringVar(&createReq.Position, "position", "", "job position")
	create.Flags().StringVar(&createSalary, "salary", "", "monthly salary")
	create.Flags().StringVar(&createReq.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	create.Flags().StringVar(&createReq.DepartmentID, "department", "", "department id")
	create.Flags().StringVar(&createReq.EmploymentStatus, "status", employee.StatusActive, "employment status")

	var updateReq employee.UpdateEmployeeRequest
	var updateSalary string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if updateSalary != "" {
				salary, err := decimal.NewFromString(updateSalary)
				if err != nil {
					return fmt.Errorf("invalid salary %q", updateSalary)
				}
				updateReq.Salary = salary
			}
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			emp, err := a.Employees.Update(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee updated")
			renderEmployee(cmd.OutOrStdout(), emp)
			return nil
		},
	}
	update.Flags().StringVar(&updateReq.FirstName, "first-name", "", "first name")
	update.Flags().StringVar(&updateReq.LastName, "last-name", "", "last name")
	update.Flags().StringVar(&updateReq.Email, "email", "", "email address")
	update.Flags().StringVar(&updateReq.Phone, "phone", "", "phone number")
	update.Flags().StringVar(&updateReq.Position, "position", "", "job position")
	update.Flags().StringVar(&updateSalary, "salary", "", "monthly salary")
	update.Flags().StringVar(&updateReq.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	update.Flags().StringVar(&updateReq.DepartmentID, "department", "", "department id")
	update.Flags().StringVar(&updateReq.EmploymentStatus, "status", "", "employment status")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Employees.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee deleted")
			return nil
		},
	}

	cmd.AddCommand(list, get, search, create, update, del)
	return cmd
}
