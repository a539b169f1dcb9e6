// Odintv is a terminal rendition of the Odin TV browser shell.
//
// It shows the Smart TV dashboard (sidebar, speed-dial grid, trending topics)
// and a simulated video player, all driven by directional key events. Keys
// come from the keyboard or, with --remote, from phones and scripts over a
// WebSocket that is advertised on the local network with mDNS.
//
// Usage:
//
//	odintv [command] [flags]
//
// Running without arguments launches the browser.
// See 'odintv --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/odintv/internal/urls"
	"github.com/muurk/odintv/internal/version"
)

// errReported marks failures already shown to the user in a result box
var errReported = errors.New("reported")

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "odintv",
	Short: "Odin TV Browser",
	Long: `A Smart TV style browser shell for the terminal.

Navigate the dashboard, the speed-dial sites and the video player with the
arrow keys, Enter and Escape. Trending topics and video detection are powered
by Gemini when an API key is configured.

If no command is specified, the browser launches automatically.

Project home: ` + urls.ProjectHome,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowser,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: <config dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().String("catalog", "", "Sites catalog file (default: <config dir>/sites.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Gemini API key (default: $GEMINI_API_KEY)")
	rootCmd.PersistentFlags().String("model", "", "Gemini model name")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("odintv %s\n", version.Full())
	},
}
