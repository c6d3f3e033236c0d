package cli

import (
	"github.com/spf13/cobra"

	"go-hris-cli/internal/app"
)

// New assembles the hris command tree on top of a wired App.
func New(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hris",
		Short: "HR dashboard console",
		Long: "hris is a terminal console for the HRIS backend: employees,\n" +
			"departments, leave types, leave requests and leave allocations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRoleCmd(a),
		newEmployeeCmd(a),
		newDepartmentCmd(a),
		newLeaveTypeCmd(a),
		newLeaveCmd(a),
		newAllocationCmd(a),
		newInfoCmd(a),
		newExportCmd(a),
	)
	return root
}
