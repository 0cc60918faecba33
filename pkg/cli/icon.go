package cli

import (
	"fmt"
	"io"

	macContext "github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/pipeline"
	"github.com/spf13/cobra"
)

// iconUsage is printed when icon is not given exactly two arguments.
const iconUsage = "usage: macpack icon <input.png> <output.icns>"

// iconCmd represents the icon command
var iconCmd = &cobra.Command{
	Use:   "icon <input.png> <output.icns>",
	Short: "Convert a PNG into a macOS .icns icon",
	Long: `Convert a source image into a multi-resolution .icns file.
The image is resized with sips to the ten sizes of a standard iconset
(16 to 1024 pixels) and assembled with iconutil. No configuration file
is needed.`,
	Args: iconArgs,
	Run:  runIcon,
}

// iconArgs rejects anything but exactly an input and an output path.
func iconArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%s (got %d arguments)", iconUsage, len(args))
	}
	return nil
}

// runIcon executes the icon command
func runIcon(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	stdCtx, stop := signalContext()
	defer stop()

	ctx := macContext.NewContext(stdCtx, nil, logger)
	ctx.Icon = macContext.IconJob{Input: args[0], Output: args[1]}
	ctx.KeepStaging, _ = cmd.Flags().GetBool("keep-staging")

	if err := convertIcon(ctx, cmd.OutOrStdout()); err != nil {
		ExitWithErrorf(logger, "%v", err)
	}
}

// convertIcon runs the icon pipeline and prints "Done: <output>" to out.
func convertIcon(ctx *macContext.Context, out io.Writer) error {
	if err := timedPipeline("Icon", ctx, pipeline.RunIcon); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Done: %s\n", ctx.Artifacts.IconPath)
	return err
}
