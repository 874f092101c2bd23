// Package cmd (drive.go) defines the 'drive' commands for inspecting the
// root folder of the user's storage and its quota.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/ui"
)

// driveCmd represents the base 'drive' command.
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Inspect the storage root and quota",
}

var driveRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Show the root folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'drive root': %w", err)
		}
		return driveRootLogic(a, cmd)
	},
}

// driveQuotaCmd handles 'drive quota'.
// It displays total, used and available storage.
var driveQuotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Get storage quota",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'drive quota': %w", err)
		}
		return driveQuotaLogic(a, cmd)
	},
}

func driveRootLogic(a *app.App, cmd *cobra.Command) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	drive, err := a.SDK.GetRoot(cmd.Context(), token)
	if err != nil {
		return wrapAPIError("getting root folder", err)
	}
	ui.DisplayDrive(drive)
	return nil
}

func driveQuotaLogic(a *app.App, cmd *cobra.Command) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	quota, err := a.SDK.GetQuota(cmd.Context(), token)
	if err != nil {
		return wrapAPIError("getting quota", err)
	}
	ui.DisplayQuota(quota)
	return nil
}

func init() {
	rootCmd.AddCommand(driveCmd)
	driveCmd.AddCommand(driveRootCmd)
	driveCmd.AddCommand(driveQuotaCmd)
}
