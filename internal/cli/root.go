// Package cli implements the tuuid command line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	cliName        = "tuuid"
	logLevelEnvVar = "TUUID_LOG_LEVEL"
)

// Execute is the entry point for the CLI.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd wires the cobra tree. Command output goes to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		logLevel string
		logger   = hclog.NewNullLogger()
	)

	root := &cobra.Command{
		Use:           cliName,
		Short:         "Generate version-1 UUIDs and convert between string and byte forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				logLevel = os.Getenv(logLevelEnvVar)
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   cliName,
				Level:  hclog.Info,
				Output: errOut,
			})
			if logLevel == "" {
				return nil
			}
			level := hclog.LevelFromString(logLevel)
			if level == hclog.NoLevel {
				err := fmt.Errorf("invalid log level %q", logLevel)
				logger.Error("invalid flag", "error", err)
				return err
			}
			logger.SetLevel(level)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error); defaults to $"+logLevelEnvVar+" or info")

	loggerFn := func() hclog.Logger { return logger }
	root.AddCommand(
		newGenerateCmd(loggerFn),
		newToBytesCmd(loggerFn),
		newFromBytesCmd(loggerFn),
		newInspectCmd(loggerFn),
	)
	return root
}
