package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/shared/validate"
)

func newInfoCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Manage extended employee information",
	}

	get := &cobra.Command{
		Use:   "get <employee-id>",
		Short: "Show an employee's extended information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.EmployeeInfo.GetByEmployee(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderInformation(cmd.OutOrStdout(), info)
			return nil
		},
	}

	var createReq employeeinfo.CreateInformationRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an employee's extended information record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(createReq); err != nil {
				return err
			}
			info, err := a.EmployeeInfo.Create(cmd.Context(), createReq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee information created")
			renderInformation(cmd.OutOrStdout(), info)
			return nil
		},
	}
	create.Flags().StringVar(&createReq.EmployeeID, "employee", "", "employee id")
	create.Flags().StringVar(&createReq.Address, "address", "", "street address")
	create.Flags().StringVar(&createReq.City, "city", "", "city")
	create.Flags().StringVar(&createReq.Country, "country", "", "country")
	create.Flags().StringVar(&createReq.PhoneNumber, "phone", "", "phone number")
	create.Flags().StringVar(&createReq.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	create.Flags().StringVar(&createReq.EmergencyContactName, "emergency-name", "", "emergency contact name")
	create.Flags().StringVar(&createReq.EmergencyContactRelationship, "emergency-relationship", "", "emergency contact relationship")
	create.Flags().StringVar(&createReq.EmergencyContactPhone, "emergency-phone", "", "emergency contact phone")
	create.Flags().StringVar(&createReq.BankName, "bank", "", "bank name")
	create.Flags().StringVar(&createReq.BankAccountNumber, "bank-account", "", "bank account number")

	var updateReq employeeinfo.UpdateInformationRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee's extended information record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(updateReq); err != nil {
				return err
			}
			info, err := a.EmployeeInfo.Update(cmd.Context(), args[0], updateReq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee information updated")
			renderInformation(cmd.OutOrStdout(), info)
			return nil
		},
	}
	update.Flags().StringVar(&updateReq.Address, "address", "", "street address")
	update.Flags().StringVar(&updateReq.City, "city", "", "city")
	update.Flags().StringVar(&updateReq.Country, "country", "", "country")
	update.Flags().StringVar(&updateReq.PhoneNumber, "phone", "", "phone number")
	update.Flags().StringVar(&updateReq.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	update.Flags().StringVar(&updateReq.EmergencyContactName, "emergency-name", "", "emergency contact name")
	update.Flags().StringVar(&updateReq.EmergencyContactRelationship, "emergency-relationship", "", "emergency contact relationship")
	update.Flags().StringVar(&updateReq.EmergencyContactPhone, "emergency-phone", "", "emergency contact phone")
	update.Flags().StringVar(&updateReq.BankName, "bank", "", "bank name")
	update.Flags().StringVar(&updateReq.BankAccountNumber, "bank-account", "", "bank account number")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee's extended information record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.EmployeeInfo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee information deleted")
			return nil
		},
	}

	cmd.AddCommand(get, create, update, del)
	return cmd
}
