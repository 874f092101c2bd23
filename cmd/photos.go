// Package cmd (photos.go) defines the 'photos' commands: listing the photos
// of an album, inspecting one, uploading, describing and deleting.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/ui"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Manage photos",
	Long:  `Provides commands to list the photos in an album, show one photo, upload a photo, change its description and delete it.`,
}

var photosListCmd = &cobra.Command{
	Use:   "list <album-id>",
	Short: "List the photos in an album",
	Long:  `Lists the photos in an album. Entries that are not photos are skipped. Use --limit and --offset to page through large albums.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'photos list': %w", err)
		}
		opts, err := ui.ParsePagingFlags(cmd)
		if err != nil {
			return fmt.Errorf("parsing pagination flags for 'photos list': %w", err)
		}
		return photosListLogic(a, cmd, args[0], opts...)
	},
}

var photosGetCmd = &cobra.Command{
	Use:   "get <photo-id>",
	Short: "Show a photo's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'photos get': %w", err)
		}
		return photosGetLogic(a, cmd, args[0])
	},
}

var photosUploadCmd = &cobra.Command{
	Use:   "upload <local-file> <album-id>",
	Short: "Upload a photo into an album",
	Long: `Uploads a local image into an album. The remote name is generated; its
extension follows the image type found in the file, or the local file
extension when the type is not recognized. With --description the new photo's
description is set right after the upload.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'photos upload': %w", err)
		}
		description, _ := cmd.Flags().GetString("description")
		return photosUploadLogic(a, cmd, args[0], args[1], description)
	},
}

var photosDescribeCmd = &cobra.Command{
	Use:   "describe <photo-id> <description>",
	Short: "Set a photo's description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'photos describe': %w", err)
		}
		return photosDescribeLogic(a, cmd, args[0], args[1])
	},
}

var photosRmCmd = &cobra.Command{
	Use:   "rm <photo-id>",
	Short: "Delete a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'photos rm': %w", err)
		}
		return photosRmLogic(a, cmd, args[0])
	},
}

func photosListLogic(a *app.App, cmd *cobra.Command, albumID string, opts ...onedrive.ListOption) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	photos, err := a.SDK.ListPhotos(cmd.Context(), token, albumID, opts...)
	if err != nil {
		return wrapAPIError("listing photos", err)
	}
	ui.DisplayPhotos(photos, albumID)
	return nil
}

func photosGetLogic(a *app.App, cmd *cobra.Command, photoID string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	photo, err := a.SDK.GetPhoto(cmd.Context(), token, photoID)
	if err != nil {
		return wrapAPIError("getting photo", err)
	}
	ui.DisplayPhoto(photo)
	return nil
}

func photosUploadLogic(a *app.App, cmd *cobra.Command, localFile, albumID, description string) error {
	path, err := onedrive.SanitizeLocalPath(localFile)
	if err != nil {
		return err
	}
	data, err := readWithProgress(path)
	if err != nil {
		return err
	}
	format, err := detectFormat(path, data)
	if err != nil {
		return err
	}

	token, err := a.AccessToken()
	if err != nil {
		return err
	}

	var photo *onedrive.Photo
	if description != "" {
		photo, err = a.SDK.UploadPhotoWithDescription(cmd.Context(), token, albumID, format, description, data)
	} else {
		photo, err = a.SDK.UploadPhoto(cmd.Context(), token, albumID, format, data)
	}
	if err != nil {
		return wrapAPIError("uploading photo", err)
	}
	if photo == nil {
		ui.Success(fmt.Sprintf("Uploaded %s; the service returned no photo details.", filepath.Base(path)))
		return nil
	}
	ui.Success(fmt.Sprintf("Uploaded %s as %s (ID: %s).", filepath.Base(path), photo.Name, photo.ID))
	return nil
}

// readWithProgress loads a local file into memory, reporting progress on stderr.
func readWithProgress(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening local file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting local file info: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", onedrive.ErrInvalidPath, path)
	}

	bar := ui.NewProgressBar(info.Size(), "Reading "+filepath.Base(path))
	data, err := io.ReadAll(io.TeeReader(f, bar))
	if err != nil {
		return nil, fmt.Errorf("reading local file: %w", err)
	}
	_ = bar.Finish()
	return data, nil
}

// detectFormat names the upload after the image type found in data. When the
// content is not recognized the file extension is used instead.
func detectFormat(path string, data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown {
		return onedrive.FormatFromFileName(path)
	}
	if !filetype.IsImage(data) {
		return "", fmt.Errorf("%w: %s holds %s data, not an image", onedrive.ErrInvalidFormat, filepath.Base(path), kind.MIME.Value)
	}
	if err := onedrive.ValidateFormat(kind.Extension); err != nil {
		return "", err
	}
	return kind.Extension, nil
}

func photosDescribeLogic(a *app.App, cmd *cobra.Command, photoID, description string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	photo, err := a.SDK.UpdatePhotoDescription(cmd.Context(), token, photoID, description)
	if err != nil {
		return wrapAPIError("updating photo description", err)
	}
	ui.DisplayPhoto(photo)
	return nil
}

func photosRmLogic(a *app.App, cmd *cobra.Command, photoID string) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	if err := a.SDK.DeletePhoto(cmd.Context(), token, photoID); err != nil {
		return wrapAPIError("deleting photo", err)
	}
	ui.Success(fmt.Sprintf("Photo %s deleted.", photoID))
	return nil
}

func init() {
	rootCmd.AddCommand(photosCmd)
	photosCmd.AddCommand(photosListCmd)
	photosCmd.AddCommand(photosGetCmd)
	photosCmd.AddCommand(photosUploadCmd)
	photosCmd.AddCommand(photosDescribeCmd)
	photosCmd.AddCommand(photosRmCmd)

	ui.AddPagingFlags(photosListCmd)
	photosUploadCmd.Flags().String("description", "", "Description to set on the uploaded photo")
}
