package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), "Admin password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		tok, err := apiClient().Login(cmd.Context(), string(password))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Session token (export as GALLERY_TOKEN):")
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}
