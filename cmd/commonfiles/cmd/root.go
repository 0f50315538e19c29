// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/commonfiles/pkg/dlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "commonfiles",
	Short: "commonfiles resolves identical file instances across cases",
	Long: `commonfiles resolves the instances of identical files found across cases, data sources and paths
against the file records of the open case.

Each instance is either matched to an existing record of the open case, or kept as a reference
to a cross-case instance, backed by some arbitrary identical record of the open case.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := dlogger.GetLogger(config.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	config = &CLIConfig{}
	logger = zap.NewNop()

	// used to patch over calls to os.Exit() during test
	osExit = os.Exit
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addStoreFlag(rootCmd)
	addCaseFlag(rootCmd)
	addLogLevelFlag(rootCmd)
}
