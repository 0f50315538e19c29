package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of the CLI
type VersionInfo struct {
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty" yaml:"gitState,omitempty"`
}

// NewVersionInfo from the build-time variables
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

// String renders the version info as yaml, omitting unknown fields
func (v VersionInfo) String() string {
	var buf strings.Builder
	if err := yamlFormatter.Format(&buf, v); err != nil {
		return v.Version
	}
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of commonfiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return yamlFormatter.Format(cmd.OutOrStdout(), NewVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
