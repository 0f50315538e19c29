package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "COMMONFILES"

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// keep names of fields the same as the serialized names, for viper
	Store    string `json:"store" yaml:"store"`       // Directory of the record store
	Case     string `json:"case" yaml:"case"`         // Display name of the open case
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Log level
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("store", ".commonfiles")
	viper.SetDefault("loglevel", "info")

	if cfg := os.Getenv(envPrefix + "_CONFIG"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.commonfiles")
		viper.SetConfigName("commonfiles")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	c, err := newConfig()
	if err != nil {
		log.Fatalln(err)
	}
	config = c
}

func newConfig() (*CLIConfig, error) {
	var c CLIConfig
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
