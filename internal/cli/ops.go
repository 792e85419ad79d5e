package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/b-rodrigues/cronista/internal/ops"
)

// opsCmd lists the operations available to run.
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List available operations",
	RunE:  runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	reg := ops.NewRegistry()
	ops.RegisterAll(reg)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Description")
	for _, name := range reg.Names() {
		op, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		table.Append(op.Name(), op.Description())
	}
	table.Render()
	return nil
}
