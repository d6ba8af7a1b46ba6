package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/spotify-insights/internal/config"
)

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored Spotify login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}
			if a.Auth == nil {
				return errors.New("spotify login not configured: set " + config.EnvClientID + " and " + config.EnvClientSecret)
			}
			if err := a.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out of Spotify. Pages show sample data until the next login.")
			return nil
		},
	}
}
