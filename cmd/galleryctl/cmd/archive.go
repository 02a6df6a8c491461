package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gallery-backend/internal/domains/archive"
	"gallery-backend/internal/infrastructure/storage"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archive scrapbook entries",
}

var archiveAddImageOpts struct {
	title string
	notes string
}

var archiveAddImageCmd = &cobra.Command{
	Use:   "add-image <file>",
	Short: "Upload an image and create an archive entry for it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		api := apiClient()

		url, err := uploadNormalized(ctx, api, args[0], storage.ArchivePolicy, "archive", "archive")
		if err != nil {
			return fmt.Errorf("upload %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s -> %s\n", args[0], url)

		item, err := api.CreateArchiveItem(ctx, &archive.Input{
			Type:     archive.TypeImage,
			Title:    archiveAddImageOpts.title,
			ImageURL: url,
			Notes:    archiveAddImageOpts.notes,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created archive item %s\n", item.ID)
		return nil
	},
}

var archiveAddLinkOpts struct {
	title       string
	linkTitle   string
	linkFavicon string
	notes       string
}

var archiveAddLinkCmd = &cobra.Command{
	Use:   "add-link <url>",
	Short: "Create a link archive entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := apiClient().CreateArchiveItem(cmd.Context(), &archive.Input{
			Type:        archive.TypeLink,
			Title:       archiveAddLinkOpts.title,
			LinkURL:     args[0],
			LinkTitle:   archiveAddLinkOpts.linkTitle,
			LinkFavicon: archiveAddLinkOpts.linkFavicon,
			Notes:       archiveAddLinkOpts.notes,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created archive item %s\n", item.ID)
		return nil
	},
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archive entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := apiClient().ListArchive(cmd.Context())
		if err != nil {
			return err
		}

		sort.Slice(items, func(i, j int) bool {
			return items[i].CreatedAt > items[j].CreatedAt
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTITLE\tTARGET")
		for _, item := range items {
			target := item.ImageURL
			if item.Type == archive.TypeLink {
				target = item.LinkURL
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ID, item.Type, item.Title, target)
		}
		return w.Flush()
	},
}

var archiveRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an archive entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient().DeleteArchiveItem(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

var archiveResetYes bool

var archiveResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every archive entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !archiveResetYes {
			return fmt.Errorf("refusing to wipe the archive without --yes")
		}
		count, err := apiClient().ResetArchive(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d archive entries\n", count)
		return nil
	},
}

func init() {
	archiveAddImageCmd.Flags().StringVar(&archiveAddImageOpts.title, "title", "", "display title")
	archiveAddImageCmd.Flags().StringVar(&archiveAddImageOpts.notes, "notes", "", "curator notes")

	archiveAddLinkCmd.Flags().StringVar(&archiveAddLinkOpts.title, "title", "", "display title")
	archiveAddLinkCmd.Flags().StringVar(&archiveAddLinkOpts.linkTitle, "link-title", "", "title of the linked page")
	archiveAddLinkCmd.Flags().StringVar(&archiveAddLinkOpts.linkFavicon, "link-favicon", "", "favicon URL of the linked page")
	archiveAddLinkCmd.Flags().StringVar(&archiveAddLinkOpts.notes, "notes", "", "curator notes")

	archiveResetCmd.Flags().BoolVar(&archiveResetYes, "yes", false, "confirm the wipe")

	archiveCmd.AddCommand(archiveAddImageCmd)
	archiveCmd.AddCommand(archiveAddLinkCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveRmCmd)
	archiveCmd.AddCommand(archiveResetCmd)
}
