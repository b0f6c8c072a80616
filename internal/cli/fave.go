package cli

import (
	"context"

	"github.com/spf13/cobra"

	bots "github.com/anatolykoptev/go-twitter-bots"
)

// NewFaveMentionsCmd returns the fave-mentions command.
func NewFaveMentionsCmd() *cobra.Command {
	return newFaveMentionsCmd(newRESTClient)
}

func newFaveMentionsCmd(newClient clientFactory) *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "fave-mentions SCREEN_NAME...",
		Short: "Favorite recent mentions that are not favorited yet",
		Long: `fave-mentions fetches the 75 most recent mentions of each account and
favorites every one that is not among its 100 most recent favorites.
Favorited tweet IDs are printed as they are processed.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), flags.verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &syncWriter{w: cmd.OutOrStdout()}
			return runAccounts(cmd.Context(), &flags, newClient, args, func(ctx context.Context, c *bots.Client) error {
				faved, err := bots.FaveMentions(ctx, c, bots.Options{DryRun: flags.dryRun})
				for _, t := range faved {
					out.Printf("%s\t%s\n", c.ScreenName(), t.ID)
				}
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}
