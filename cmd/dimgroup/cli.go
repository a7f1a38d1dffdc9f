// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Configuration keys; each is also a persistent flag and a DIMGROUP_* variable.
const (
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyOutput    = "output"
	keyWorkers   = "workers"
	keyReduce    = "reduce"
)

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// cli wires the cobra command tree to one viper instance.
type cli struct {
	root *cobra.Command
	v    *viper.Viper
}

func newCLI() *cli {
	c := &cli{v: viper.New()}
	c.setupViper()
	c.createRoot()
	c.root.AddCommand(c.groupCommand(), c.versionCommand())

	return c
}

// setupViper configures config file discovery and environment overrides.
func (c *cli) setupViper() {
	if path := os.Getenv("DIMGROUP_CONFIG"); path != "" {
		c.v.SetConfigFile(path)
	} else {
		c.v.SetConfigName("dimgroup")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.config/dimgroup")
	}
	c.v.SetEnvPrefix("DIMGROUP")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault(keyLogLevel, "warn")
	c.v.SetDefault(keyLogFormat, "text")
	c.v.SetDefault(keyOutput, outputText)
	c.v.SetDefault(keyWorkers, 1)
}

func (c *cli) createRoot() {
	c.root = &cobra.Command{
		Use:   "dimgroup",
		Short: "Group labeled arrays by dimension values",
		Long: `dimgroup partitions a labeled array along one or more dimensions and
reports every group, optionally reduced to a single value.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (DIMGROUP_*)
  3. Configuration file (DIMGROUP_CONFIG, ./dimgroup.yaml, ~/.config/dimgroup/dimgroup.yaml)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := c.v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return fmt.Errorf("config: %w", err)
				}
			}

			return nil
		},
	}

	pf := c.root.PersistentFlags()
	pf.String(keyLogLevel, "warn", "Log level: debug|info|warn|error")
	pf.String(keyLogFormat, "text", "Log format: text|json")
	pf.StringP(keyOutput, "o", outputText, "Output format: text|yaml")
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dimgroup version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "dimgroup %s\n", version)
			return err
		},
	}
}
