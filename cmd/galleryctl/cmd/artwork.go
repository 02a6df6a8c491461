package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gallery-backend/internal/client"
	"gallery-backend/internal/domains/artwork"
	"gallery-backend/internal/domains/upload"
	"gallery-backend/internal/infrastructure/storage"
)

var artworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "Manage artwork records",
}

var artworkAddOpts struct {
	title         string
	titleZh       string
	titleEn       string
	description   string
	descriptionZh string
	descriptionEn string
	year          int
	yearStart     string
	yearEnd       string
	period        string
	size          string
	images        []string
	certificate   string
}

var artworkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Upload images and create an artwork record",
	Long: `Uploads up to four display images (resized to gallery resolution) and an
optional certificate scan, then creates the record pointing at the issued
URLs. If a secondary image fails to upload, the record is still created with
the images that succeeded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(artworkAddOpts.images) == 0 {
			return fmt.Errorf("at least one --image is required")
		}
		if len(artworkAddOpts.images) > 4 {
			return fmt.Errorf("at most 4 images are supported, got %d", len(artworkAddOpts.images))
		}

		ctx := cmd.Context()
		api := apiClient()

		var urls [4]string
		for i, path := range artworkAddOpts.images {
			url, err := uploadNormalized(ctx, api, path, storage.GalleryPolicy, "artworks", "artwork")
			if err != nil {
				// The primary image is the record's anchor; without it there
				// is nothing to create.
				if i == 0 {
					return fmt.Errorf("upload %s: %w", path, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping image %s: %v\n", path, err)
				continue
			}
			urls[i] = url
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s -> %s\n", path, url)
		}

		var certURL string
		if artworkAddOpts.certificate != "" {
			url, err := uploadNormalized(ctx, api, artworkAddOpts.certificate, storage.ArchivePolicy, "artworks", "certificate")
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping certificate %s: %v\n", artworkAddOpts.certificate, err)
			} else {
				certURL = url
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s -> %s\n", artworkAddOpts.certificate, url)
			}
		}

		in := &artwork.Input{
			Title:         artworkAddOpts.title,
			TitleZh:       artworkAddOpts.titleZh,
			TitleEn:       artworkAddOpts.titleEn,
			Description:   artworkAddOpts.description,
			DescriptionZh: artworkAddOpts.descriptionZh,
			DescriptionEn: artworkAddOpts.descriptionEn,
			Year:          artworkAddOpts.year,
			YearStart:     artworkAddOpts.yearStart,
			YearEnd:       artworkAddOpts.yearEnd,
			Period:        artworkAddOpts.period,
			Size:          artworkAddOpts.size,
			ImageURL:      urls[0],
			Image2URL:     urls[1],
			Image3URL:     urls[2],
			Image4URL:     urls[3],
			CertificateURL: certURL,
		}

		created, err := api.CreateArtwork(ctx, in)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created artwork %s (%q, %d)\n", created.ID, created.Title, created.Year)
		return nil
	},
}

var artworkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List artwork records",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := apiClient().ListArtworks(cmd.Context())
		if err != nil {
			return err
		}

		// Newest-first by year, then by creation time, so the freshly added
		// pieces sit at the top.
		sort.Slice(items, func(i, j int) bool {
			if items[i].Year != items[j].Year {
				return items[i].Year > items[j].Year
			}
			return items[i].CreatedAt > items[j].CreatedAt
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tYEAR\tPERIOD\tTITLE")
		for _, a := range items {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", a.ID, a.Year, a.Period, a.Title)
		}
		return w.Flush()
	},
}

var artworkRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an artwork record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient().DeleteArtwork(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

// uploadNormalized reads an image file, resizes and re-encodes it to the given
// policy, and uploads it under a timestamped filename. Returns the issued URL.
func uploadNormalized(ctx context.Context, api *client.Client, path string, policy storage.NormalizePolicy, bucket, kind string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	normalized, err := storage.Normalize(raw, policy)
	if err != nil {
		return "", err
	}

	req := &upload.Request{
		Base64Image: base64.StdEncoding.EncodeToString(normalized),
		Filename:    fmt.Sprintf("%s-%d.jpg", kind, time.Now().UnixMilli()),
		BucketName:  bucket,
	}
	return api.UploadImage(ctx, req)
}

func init() {
	f := artworkAddCmd.Flags()
	f.StringVar(&artworkAddOpts.title, "title", "", "artwork title")
	f.StringVar(&artworkAddOpts.titleZh, "title-zh", "", "Chinese title")
	f.StringVar(&artworkAddOpts.titleEn, "title-en", "", "English title")
	f.StringVar(&artworkAddOpts.description, "description", "", "description")
	f.StringVar(&artworkAddOpts.descriptionZh, "description-zh", "", "Chinese description")
	f.StringVar(&artworkAddOpts.descriptionEn, "description-en", "", "English description")
	f.IntVar(&artworkAddOpts.year, "year", 0, "production year")
	f.StringVar(&artworkAddOpts.yearStart, "year-start", "", "start of the production range")
	f.StringVar(&artworkAddOpts.yearEnd, "year-end", "", "end of the production range")
	f.StringVar(&artworkAddOpts.period, "period", "", "art-historical period")
	f.StringVar(&artworkAddOpts.size, "size", "", "physical dimensions")
	f.StringSliceVar(&artworkAddOpts.images, "image", nil, "image file, repeatable up to 4 times (first is primary)")
	f.StringVar(&artworkAddOpts.certificate, "certificate", "", "certificate scan file")

	artworkCmd.AddCommand(artworkAddCmd)
	artworkCmd.AddCommand(artworkListCmd)
	artworkCmd.AddCommand(artworkRmCmd)
}
