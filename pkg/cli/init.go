package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/macreleaser/macpack/pkg/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate example macpack configuration",
	Long: `Generate an example .macpack.yaml configuration file in the current directory.
An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

// runInit executes the init command
func runInit(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := GetConfigPath()

	created, err := writeExampleConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to save configuration: %v", err)
	}
	if !created {
		logger.Infof("Configuration file %s already exists", configPath)
		return
	}

	logger.Infof("Example configuration created: %s", configPath)
	logger.Info("Edit this file to match your project requirements")
}

// writeExampleConfig writes the example configuration to path unless a file
// already exists there. It reports whether a file was written.
func writeExampleConfig(path string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := config.SaveConfig(path, config.ExampleConfig()); err != nil {
		return false, err
	}
	return true, nil
}
