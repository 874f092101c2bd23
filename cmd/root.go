// Package cmd (root.go) defines the root command for the onedrive-live CLI.
// It sets up global flags and registers the subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "onedrive-live",
	Short: "A CLI client for OneDrive photos and albums",
	Long: `onedrive-live is a command-line interface to the OneDrive photo API.

Current capabilities include:
  - Signing in through the browser, with an optional PKCE challenge
  - Exchanging authorization codes and refresh tokens
  - Listing, uploading, describing and deleting photos
  - Listing, creating and deleting albums
  - Inspecting the drive root and storage quota

Tokens are printed, never stored. Pass the access token to later commands
with --token or the ONEDRIVE_ACCESS_TOKEN environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// A .env file in the working directory may carry ONEDRIVE_ACCESS_TOKEN
	// or ONEDRIVE_CONFIG_PATH. Variables already set win.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(".env")
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging for SDK and internal operations")
	rootCmd.PersistentFlags().String("token", "", "Access token to act with (default $ONEDRIVE_ACCESS_TOKEN)")
}
