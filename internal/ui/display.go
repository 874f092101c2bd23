// Package ui (display.go) provides functions for formatting and printing
// photos, albums, the drive root, quota, user profile and tokens to the
// console. It also includes the progress bar and standardized
// success/error messages.
package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// Success prints a simple success message to standard output.
func Success(msg string) {
	fmt.Println(msg)
}

// PrintError prints an error message to standard error.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// formatBytes converts a size in bytes (int64) to a human-readable string
// using IEC units (KiB, MiB, GiB, etc.).
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// truncateName shortens long names so table columns stay aligned.
func truncateName(name string) string {
	if len(name) <= onedrive.MaxNameDisplayLength {
		return name
	}
	return name[:onedrive.MaxNameDisplayLength-3] + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.RFC1123)
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// DisplayPhotos prints a table of photos, showing name, size, dimensions and id.
func DisplayPhotos(photos []onedrive.Photo, albumID string) {
	if len(photos) == 0 {
		fmt.Printf("No photos found in album %s.\n", albumID)
		return
	}

	fmt.Printf("Photos in album %s:\n", albumID)
	fmt.Printf("%-57s %12s %11s  %s\n", "Name", "Size", "Dimensions", "ID")
	fmt.Println(strings.Repeat("-", 100))
	for _, p := range photos {
		dims := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("%-57s %12s %11s  %s\n", truncateName(p.Name), formatBytes(p.Size), dims, p.ID)
	}
}

// DisplayPhoto prints detailed metadata for a single photo.
func DisplayPhoto(p *onedrive.Photo) {
	if p == nil {
		fmt.Println("No photo returned.")
		return
	}

	fmt.Println("Photo Metadata:")
	fmt.Printf("  Name:             %s\n", p.Name)
	fmt.Printf("  ID:               %s\n", p.ID)
	if p.Link != "" {
		fmt.Printf("  Link:             %s\n", p.Link)
	}
	if p.Description != nil {
		fmt.Printf("  Description:      %s\n", *p.Description)
	}
	if p.Type == "" {
		// Upload results carry only id and name.
		return
	}
	fmt.Printf("  Album:            %s\n", p.ParentID)
	fmt.Printf("  Size:             %s (%d bytes)\n", formatBytes(p.Size), p.Size)
	fmt.Printf("  Dimensions:       %dx%d\n", p.Width, p.Height)
	fmt.Printf("  Shared With:      %s\n", p.SharedWith)
	if p.From != nil {
		fmt.Printf("  Owner:            %s\n", p.From.Name)
	}
	if p.WhenTaken != nil {
		fmt.Printf("  Taken:            %s\n", formatTime(*p.WhenTaken))
	}
	if p.CameraMake != nil || p.CameraModel != nil {
		fmt.Printf("  Camera:           %s %s\n", valueOr(p.CameraMake, ""), valueOr(p.CameraModel, ""))
	}
	if p.ExposureDenominator != 0 {
		fmt.Printf("  Exposure:         %g/%g s, f/%g, %gmm\n", p.ExposureNumerator, p.ExposureDenominator, p.FocalRatio, p.FocalLength)
	}
	if p.Location != nil {
		fmt.Printf("  Location:         %.5f, %.5f (alt %.1f m)\n", p.Location.Latitude, p.Location.Longitude, p.Location.Altitude)
	}
	fmt.Printf("  Comments:         %d\n", p.CommentsCount)
	fmt.Printf("  Tags:             %d\n", p.TagsCount)
	fmt.Printf("  Created:          %s\n", formatTime(p.CreatedTime))
	fmt.Printf("  Last Modified:    %s\n", formatTime(p.UpdatedTime))
	if len(p.Images) > 0 {
		fmt.Println("  Images:")
		for _, img := range p.Images {
			fmt.Printf("    %-10s %5.0fx%-5.0f %s\n", img.Type, img.Width, img.Height, img.Source)
		}
	}
}

// DisplayAlbums prints a table of albums.
func DisplayAlbums(albums []onedrive.Album) {
	if len(albums) == 0 {
		fmt.Println("No albums found for this account.")
		return
	}

	fmt.Printf("%-57s %6s  %-28s %s\n", "Album Name", "Photos", "Shared With", "ID")
	fmt.Println(strings.Repeat("-", 110))
	for _, a := range albums {
		fmt.Printf("%-57s %6d  %-28s %s\n", truncateName(a.Name), a.Count, a.SharedWith, a.ID)
	}
}

// DisplayAlbum prints detailed metadata for a single album.
func DisplayAlbum(a *onedrive.Album) {
	if a == nil {
		fmt.Println("No album returned.")
		return
	}

	fmt.Println("Album Metadata:")
	fmt.Printf("  Name:             %s\n", a.Name)
	fmt.Printf("  ID:               %s\n", a.ID)
	fmt.Printf("  Description:      %s\n", valueOr(a.Description, "-"))
	fmt.Printf("  Photos:           %d\n", a.Count)
	fmt.Printf("  Shared With:      %s\n", a.SharedWith)
	fmt.Printf("  Link:             %s\n", a.Link)
	fmt.Printf("  Created:          %s\n", formatTime(a.CreatedTime))
	fmt.Printf("  Last Modified:    %s\n", formatTime(a.UpdatedTime))
}

// DisplayDrive prints the storage root.
func DisplayDrive(d *onedrive.Drive) {
	if d == nil {
		fmt.Println("No drive root returned.")
		return
	}

	fmt.Println("Drive Root:")
	fmt.Printf("  Name:             %s\n", d.Name)
	fmt.Printf("  ID:               %s\n", d.ID)
	fmt.Printf("  Items:            %d\n", d.Count)
	fmt.Printf("  Size:             %s\n", formatBytes(d.Size))
	fmt.Printf("  Upload Location:  %s\n", d.UploadLocation)
	fmt.Printf("  Link:             %s\n", d.Link)
}

// DisplayQuota prints the storage quota.
func DisplayQuota(q *onedrive.Quota) {
	if q == nil {
		fmt.Println("No quota returned.")
		return
	}

	fmt.Println("Drive Quota Information:")
	fmt.Printf("  Total Space: %s\n", formatBytes(q.Quota))
	fmt.Printf("  Used Space:  %s\n", formatBytes(q.Used()))
	fmt.Printf("  Free Space:  %s\n", formatBytes(q.Available))
}

// DisplayMe prints the signed-in user's profile.
func DisplayMe(me *onedrive.Me) {
	if me == nil {
		fmt.Println("No profile returned.")
		return
	}
	fmt.Printf("Logged in as: %s (ID: %s, Locale: %s)\n", me.Name, me.ID, me.Locale)
}

// DisplayAuthURL prints the URL the user has to open to sign in.
func DisplayAuthURL(authURL string) {
	fmt.Println("Open the following URL in your browser and grant access:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("Then run 'onedrive-live auth exchange <code>' with the code from the redirect.")
}

// DisplayToken prints an issued token. The CLI does not store it.
func DisplayToken(token *onedrive.AccessToken) {
	if token == nil {
		fmt.Println("The provider did not issue a token.")
		return
	}

	fmt.Println("Token issued:")
	fmt.Printf("  Token Type:       %s\n", token.TokenType)
	fmt.Printf("  Expires In:       %s\n", time.Duration(token.ExpiresIn)*time.Second)
	fmt.Printf("  Scope:            %s\n", token.Scope)
	fmt.Printf("  User ID:          %s\n", valueOr(token.UserID, "-"))
	fmt.Printf("  Access Token:     %s\n", token.AccessToken)
	fmt.Printf("  Refresh Token:    %s\n", valueOr(token.RefreshToken, "-"))
	fmt.Println()
	fmt.Println("Pass the access token with --token or ONEDRIVE_ACCESS_TOKEN.")
}

// NewProgressBar creates and returns a new progress bar configured for file transfers.
// `maxBytes` is the total size of the transfer in bytes.
// `description` is the text displayed next to the progress bar.
func NewProgressBar(maxBytes int64, description string) *progressbar.ProgressBar {
	if description == "" {
		description = "Processing..."
	}
	return progressbar.NewOptions64(
		maxBytes,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr), // Stdout is reserved for command output
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(onedrive.ProgressBarWidth),
		progressbar.OptionThrottle(onedrive.ProgressBarThrottle),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(onedrive.SpinnerType),
		progressbar.OptionClearOnFinish(),
	)
}
