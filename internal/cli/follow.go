package cli

import (
	"context"

	"github.com/spf13/cobra"

	bots "github.com/anatolykoptev/go-twitter-bots"
)

// NewAutoFollowCmd returns the auto-follow command.
func NewAutoFollowCmd() *cobra.Command {
	return newAutoFollowCmd(newRESTClient)
}

func newAutoFollowCmd(newClient clientFactory) *cobra.Command {
	var (
		flags    commonFlags
		unfollow bool
	)
	cmd := &cobra.Command{
		Use:   "auto-follow SCREEN_NAME...",
		Short: "Follow or unfollow mutual follows of each account",
		Long: `auto-follow acts on the intersection of each account's followers and friends,
that is, accounts that follow it and that it already follows.

By default it sends a follow request to every follower that is also a friend.
With --unfollow it unfollows every friend that also follows it: mutual follows
are dropped, while friends that do not follow back are left alone.

Accounts with a pending outgoing follow request are never touched.`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), flags.verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := bots.FollowBack
			if unfollow {
				action = bots.Unfollow
			}
			out := &syncWriter{w: cmd.OutOrStdout()}
			return runAccounts(cmd.Context(), &flags, newClient, args, func(ctx context.Context, c *bots.Client) error {
				n, err := bots.AutoFollow(ctx, c, action, bots.Options{DryRun: flags.dryRun})
				out.Printf("%s\t%s\t%d\n", c.ScreenName(), action, n)
				return err
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&unfollow, "unfollow", "u", false, "Unfollow friends that also follow the account (mutual follows)")
	return cmd
}
