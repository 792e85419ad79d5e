package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b-rodrigues/cronista/internal/trail"
)

var auditCount int

// auditCmd groups the trail subcommands.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the audit trail",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the trail's hash chain integrity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trail.Verify(cfg.Audit.Path); err != nil {
			return fmt.Errorf("audit verification FAILED: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "audit trail integrity verified")
		return nil
	},
}

var auditTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the last trail entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := trail.Tail(cfg.Audit.Path, auditCount)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no audit entries")
			return nil
		}
		for _, e := range entries {
			data, _ := json.MarshalIndent(e, "", "  ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		}
		return nil
	},
}

func init() {
	auditTailCmd.Flags().IntVarP(&auditCount, "count", "n", 20, "entries to show")
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTailCmd)
	rootCmd.AddCommand(auditCmd)
}
