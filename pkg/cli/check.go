package cli

import (
	"github.com/macreleaser/macpack/pkg/pipeline"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration file",
	Long: `Validate the .macpack.yaml configuration file.
This command checks for syntax errors, unknown keys, required fields,
and unresolved env(...) references without running any external tool.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	stdCtx, stop := signalContext()
	defer stop()

	ctx := loadContext(stdCtx, logger)
	if err := pipeline.RunValidation(ctx); err != nil {
		ExitWithErrorf(logger, "Configuration validation failed: %v", err)
	}

	logger.Info("Configuration is valid")
}
