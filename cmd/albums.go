// Package cmd (albums.go) defines the 'albums' commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/ui"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "Manage albums",
	Long:  `Provides commands to list, inspect, create and delete photo albums.`,
}

var albumsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your albums",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'albums list': %w", err)
		}
		opts, err := ui.ParsePagingFlags(cmd)
		if err != nil {
			return fmt.Errorf("parsing pagination flags for 'albums list': %w", err)
		}
		return albumsListLogic(a, cmd, opts...)
	},
}

var albumsGetCmd = &cobra.Command{
	Use:   "get <album-id>",
	Short: "Show an album's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'albums get': %w", err)
		}
		return albumsGetLogic(a, cmd, args[0])
	},
}

var albumsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an album",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'albums create': %w", err)
		}
		description, _ := cmd.Flags().GetString("description")
		return albumsCreateLogic(a, cmd, args[0], description)
	},
}

var albumsRmCmd = &cobra.Command{
	Use:   "rm <album-id>",
	Short: "Delete an album and its photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'albums rm': %w", err)
		}
		return albumsRmLogic(a, cmd, args[0])
	},
}

func albumsListLogic(a *app.App, cmd *cobra.Command, opts ...onedrive.ListOption) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	albums, err := a.SDK.ListAlbums(cmd.Context(), token, opts...)
	if err != nil {
		return wrapAPIError("listing albums", err)
	}
	ui.DisplayAlbums(albums)
	return nil
}

func albumsGetLogic(a *app.App, cmd *cobra.Command, albumID string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	album, err := a.SDK.GetAlbum(cmd.Context(), token, albumID)
	if err != nil {
		return wrapAPIError("getting album", err)
	}
	ui.DisplayAlbum(album)
	return nil
}

func albumsCreateLogic(a *app.App, cmd *cobra.Command, name, description string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	album, err := a.SDK.CreateAlbum(cmd.Context(), token, name, description)
	if err != nil {
		return wrapAPIError("creating album", err)
	}
	ui.DisplayAlbum(album)
	return nil
}

func albumsRmLogic(a *app.App, cmd *cobra.Command, albumID string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	if err := a.SDK.DeleteAlbum(cmd.Context(), token, albumID); err != nil {
		return wrapAPIError("deleting album", err)
	}
	ui.Success(fmt.Sprintf("Album %s deleted.", albumID))
	return nil
}

func init() {
	rootCmd.AddCommand(albumsCmd)
	albumsCmd.AddCommand(albumsListCmd)
	albumsCmd.AddCommand(albumsGetCmd)
	albumsCmd.AddCommand(albumsCreateCmd)
	albumsCmd.AddCommand(albumsRmCmd)

	ui.AddPagingFlags(albumsListCmd)
	albumsCreateCmd.Flags().String("description", "", "Description of the new album")
}
