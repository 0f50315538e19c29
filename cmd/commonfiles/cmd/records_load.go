package cmd

import (
	"fmt"

	"github.com/oneconcern/commonfiles/pkg/recordstore"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recordsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load file records into the record store",
	Long:  `Load file records described by a YAML file into the record store of the open case.`,
	Example: `% commonfiles records load --store ./case-a --file records.yaml
loaded 12 records into badger:./case-a`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		n, err := recordstore.Load(ctx, store, afero.NewOsFs(), cliFlags.records.File)
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}
		logger.Info("records loaded", zap.Int("records", n), zap.String("file", cliFlags.records.File))
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %d records into %s\n", n, store)
		return nil
	},
}

func init() {
	requireFlags(recordsLoadCmd, addRecordsFileFlag(recordsLoadCmd))
	recordsCmd.AddCommand(recordsLoadCmd)
}
