package cli

import (
	"github.com/macreleaser/macpack/pkg/pipeline"
	"github.com/spf13/cobra"
)

// bundleCmd represents the bundle command
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Package the prebuilt executable into a .app and .dmg",
	Long: `Assemble <Name>.app from the configured prebuilt executable, write its
Info.plist, optionally bundle an icon and code-sign it, then image it
into a compressed <Name>.dmg with an Applications shortcut. When notarize
credentials are configured the image is notarized and stapled.`,
	Args: cobra.NoArgs,
	Run:  runBundle,
}

// runBundle executes the bundle command
func runBundle(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	stdCtx, stop := signalContext()
	defer stop()

	ctx := loadContext(stdCtx, logger)
	ctx.Version, _ = cmd.Flags().GetString("app-version")
	ctx.KeepStaging, _ = cmd.Flags().GetBool("keep-staging")
	ctx.SkipDMG, _ = cmd.Flags().GetBool("skip-dmg")
	ctx.SkipNotarize, _ = cmd.Flags().GetBool("skip-notarize")
	ctx.Clean, _ = cmd.Flags().GetBool("clean")

	runPipelineCommand("Bundle", ctx, pipeline.RunAll)
}
