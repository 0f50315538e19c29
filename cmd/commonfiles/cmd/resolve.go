package cmd

import (
	"fmt"

	"github.com/oneconcern/commonfiles/pkg/correlation"
	"github.com/oneconcern/commonfiles/pkg/errors"
	"github.com/oneconcern/commonfiles/pkg/filecache"
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"github.com/oneconcern/commonfiles/pkg/resolver"
	"github.com/oneconcern/commonfiles/pkg/resolver/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var resolveFormatters = map[string]Formatter{
	"list": resultsListFormatter,
	"yaml": yamlFormatter,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve instances of identical files against the open case",
	Long: `Resolve the instances of identical files described by a correlation file against
the file records of the open case.

Instances which cannot be resolved are reported and skipped.`,
	Example: `% commonfiles resolve --store ./case-a --case CaseA --correlation groups.yaml
0cc175b9c0f1b6a831c399e269772661
	local	10	CaseA: usb1
	cross-case	10	CaseB: phone	/sdcard/doc.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, ok := resolveFormatters[cliFlags.resolve.Format]
		if !ok {
			return fmt.Errorf("unknown format %q, expected one of: %s", cliFlags.resolve.Format, formatterNames(resolveFormatters))
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		doc, err := correlation.NewFileSource(afero.NewOsFs(), cliFlags.resolve.Correlation).Read(ctx)
		if err != nil {
			return err
		}

		openCase := config.Case
		if openCase == "" {
			openCase = doc.Case
		}
		if openCase == "" {
			return fmt.Errorf("the open case is required, either with --case or in %s", cliFlags.resolve.Correlation)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		cache := filecache.New(store,
			filecache.WithLogger(logger),
			filecache.WithMetrics(cliFlags.resolve.Metrics),
		)
		r := resolver.New(openCase, cache,
			resolver.WithLogger(logger),
			resolver.WithMetrics(cliFlags.resolve.Metrics),
		)

		results, err := r.ResolveGroups(ctx, doc.Groups)
		if err != nil {
			if errors.Is(err, status.ErrInterrupted) {
				return err
			}
			logger.Warn("some instances were skipped", zap.Int("skipped", len(multierr.Errors(err))))
		}
		logger.Debug("resolution complete", zap.Int("groups", len(results)), zap.Int("lookups", cache.Len()))

		if err = formatter.Format(cmd.OutOrStdout(), results); err != nil {
			return err
		}

		if cliFlags.resolve.Metrics {
			return metrics.WriteText(cmd.ErrOrStderr(), prometheus.DefaultGatherer)
		}
		return nil
	},
}

func init() {
	requireFlags(resolveCmd, addCorrelationFlag(resolveCmd))
	addFormatFlag(resolveCmd, resolveFormatters)
	addMetricsFlag(resolveCmd)
	rootCmd.AddCommand(resolveCmd)
}
