// Package cmd implements the galleryctl command tree. galleryctl is the
// curator-side tool: it normalizes images locally before upload so the server
// never stores oversized originals, then drives the gallery API.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gallery-backend/internal/client"
)

var (
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "galleryctl",
	Short: "Manage gallery artworks and archive entries",
	Long: `galleryctl manages the gallery backend: uploading artwork images,
creating and editing records, and maintaining the archive scrapbook.

Images are resized and re-encoded locally before upload, so the original
files never leave the machine at full resolution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("GALLERY_SERVER", "http://localhost:8080"), "gallery API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("GALLERY_TOKEN"), "session token (from 'galleryctl login')")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(artworkCmd)
	rootCmd.AddCommand(archiveCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func apiClient() *client.Client {
	return client.New(serverURL, token)
}
