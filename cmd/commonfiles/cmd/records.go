package cmd

import (
	"github.com/spf13/cobra"
)

// recordsCmd represents the file records related commands
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Commands to manage the file records of the open case",
	Long: `Commands to manage the file records of the open case.

File records are the concrete files known by the record store of the open case.`,
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
