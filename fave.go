package bots

import (
	"context"
	"fmt"
	"log/slog"

	"bitbucket.org/creachadair/stringset"
)

const (
	mentionsCount  = 75
	favoritesCount = 100
)

// FaveMentions favorites recent mentions that are not among the recent
// favorites, in the order the service returns the mentions.
//
// It returns the mentions favorited this run. The first failing call stops
// the run and is returned together with what was favorited before it.
func FaveMentions(ctx context.Context, c *Client, opts Options) ([]*Tweet, error) {
	favs, err := c.Favorites(ctx, favoritesCount)
	if err != nil {
		return nil, fmt.Errorf("favorites: %w", err)
	}
	mentions, err := c.MentionsTimeline(ctx, mentionsCount)
	if err != nil {
		return nil, fmt.Errorf("mentions: %w", err)
	}

	var faved []*Tweet
	for _, m := range mentionsToFave(mentions, favs) {
		if opts.DryRun {
			slog.Info("dry run", slog.String("action", "fave"), slog.String("id", m.ID))
			faved = append(faved, m)
			continue
		}
		if _, err := c.CreateFavorite(ctx, m.ID); err != nil {
			return faved, fmt.Errorf("fave %s: %w", m.ID, err)
		}
		slog.Debug("faved", slog.String("id", m.ID), slog.String("text", m.Text))
		faved = append(faved, m)
	}

	slog.Info("fave mentions finished",
		slog.String("user", c.ScreenName()),
		slog.Int("mentions", len(mentions)),
		slog.Int("faved", len(faved)),
		slog.Bool("dry_run", opts.DryRun))
	return faved, nil
}

// mentionsToFave filters out mentions already present in favs.
func mentionsToFave(mentions, favs []*Tweet) []*Tweet {
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ID)
	}
	seen := stringset.New(ids...)
	var out []*Tweet
	for _, m := range mentions {
		if !seen.Contains(m.ID) {
			out = append(out, m)
		}
	}
	return out
}
