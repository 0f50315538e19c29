package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type flagsT struct {
	records struct {
		File string
	}
	resolve struct {
		Correlation string
		Format      string
		Metrics     bool
	}
}

var cliFlags = flagsT{}

func bindFlag(cmd *cobra.Command, name string) {
	if err := viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

func addStoreFlag(cmd *cobra.Command) string {
	store := "store"
	cmd.PersistentFlags().String(store, "", "The directory of the record store of the open case")
	bindFlag(cmd, store)
	return store
}

func addCaseFlag(cmd *cobra.Command) string {
	caseName := "case"
	cmd.PersistentFlags().String(caseName, "", "The display name of the open case")
	bindFlag(cmd, caseName)
	return caseName
}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().String(logLevel, "info", "The log level: debug, info, warn, error or none")
	bindFlag(cmd, logLevel)
	return logLevel
}

func addRecordsFileFlag(cmd *cobra.Command) string {
	file := "file"
	cmd.Flags().StringVar(&cliFlags.records.File, file, "", "The YAML file describing the file records to load")
	return file
}

func addCorrelationFlag(cmd *cobra.Command) string {
	correlation := "correlation"
	cmd.Flags().StringVar(&cliFlags.resolve.Correlation, correlation, "", "The YAML file describing the instances of identical files")
	return correlation
}

func addFormatFlag(cmd *cobra.Command, formatters map[string]Formatter) string {
	format := "format"
	cmd.Flags().StringVar(&cliFlags.resolve.Format, format, "list", "The output format: "+formatterNames(formatters))
	return format
}

func addMetricsFlag(cmd *cobra.Command) string {
	m := "metrics"
	cmd.Flags().BoolVar(&cliFlags.resolve.Metrics, m, false, "Collect prometheus metrics for lookups and resolutions, and print them on stderr when done")
	return m
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}
