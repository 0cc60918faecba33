package cli

import (
	"fmt"
	"os"

	"github.com/macreleaser/macpack/pkg/config"
	"github.com/macreleaser/macpack/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "macpack",
	Short:   "macOS icon and app bundle packaging",
	Version: version.VersionInfo(),
	Long: `macpack turns a PNG into a macOS .icns icon and packages a prebuilt
executable into a .app bundle and a distributable .dmg disk image.
The heavy lifting is done by sips, iconutil, codesign, ditto, xattr,
hdiutil and notarytool.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying help: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	registerCommands()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	return rootCmd.Execute()
}

// registerCommands initializes flags and registers all subcommands
func registerCommands() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug mode")

	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)

	// --keep-staging is available on icon and bundle
	iconCmd.Flags().Bool("keep-staging", false, "keep the temporary .iconset directory for inspection")
	bundleCmd.Flags().Bool("keep-staging", false, "keep temporary iconset and disk image staging directories")

	bundleCmd.Flags().Bool("clean", false, "remove the output directory before bundling")
	bundleCmd.Flags().Bool("skip-dmg", false, "build and sign the .app only")
	bundleCmd.Flags().Bool("skip-notarize", false, "do not notarize the disk image even when notarize is configured")
	bundleCmd.Flags().String("app-version", "", "bundle version (overrides project.version and git tags)")
}

// GetConfigPath returns the config file path from flags
func GetConfigPath() string {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	return configPath
}

// GetDebugMode returns debug mode flag value
func GetDebugMode() bool {
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	return debug
}
