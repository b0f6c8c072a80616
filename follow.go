package bots

import (
	"context"
	"fmt"
	"log/slog"

	"bitbucket.org/creachadair/stringset"
)

// FollowAction selects the graph reconciliation to run.
type FollowAction int

const (
	FollowBack FollowAction = iota
	Unfollow
)

func (a FollowAction) String() string {
	if a == Unfollow {
		return "unfollow"
	}
	return "follow"
}

// Options controls a reconciliation run.
type Options struct {
	// DryRun logs the planned actions without issuing mutating calls.
	DryRun bool
}

// GraphSnapshot is the social graph fetched for one reconciliation run.
type GraphSnapshot struct {
	Followers       []string
	Friends         []string
	PendingOutgoing []string
}

// FetchGraph fetches followers, friends and pending outgoing requests, in
// that order, one request each.
func FetchGraph(ctx context.Context, c *Client) (*GraphSnapshot, error) {
	followers, err := c.FollowerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("follower ids: %w", err)
	}
	friends, err := c.FriendIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("friend ids: %w", err)
	}
	outgoing, err := c.OutgoingFriendshipIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("outgoing friendships: %w", err)
	}
	return &GraphSnapshot{
		Followers:       followers,
		Friends:         friends,
		PendingOutgoing: outgoing,
	}, nil
}

// Candidates returns, in iteration order, the IDs the action applies to.
//
// FollowBack walks followers and keeps those already in friends; Unfollow
// walks friends and keeps those in followers. Both skip pending outgoing
// requests. The FollowBack selection is an intersection, not the set of
// followers who are not followed yet.
func (s *GraphSnapshot) Candidates(action FollowAction) []string {
	independent, dependent := s.Friends, s.Followers
	if action == Unfollow {
		independent, dependent = s.Followers, s.Friends
	}

	in := stringset.New(independent...)
	ignore := stringset.New(s.PendingOutgoing...)
	var out []string
	for _, id := range dependent {
		if in.Contains(id) && !ignore.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// AutoFollow reconciles the account's friends against its followers.
//
// It returns the number of completed actions. The first failing call is
// returned and stops the run; actions already taken are not rolled back.
func AutoFollow(ctx context.Context, c *Client, action FollowAction, opts Options) (int, error) {
	snap, err := FetchGraph(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", action, err)
	}
	slog.Debug("graph fetched",
		slog.String("user", c.ScreenName()),
		slog.String("action", action.String()),
		slog.Int("friends", len(snap.Friends)),
		slog.Int("followers", len(snap.Followers)),
		slog.Int("pending", len(snap.PendingOutgoing)))

	method := c.CreateFriendship
	if action == Unfollow {
		method = c.DestroyFriendship
	}

	done := 0
	for _, id := range snap.Candidates(action) {
		if opts.DryRun {
			slog.Info("dry run", slog.String("action", action.String()), slog.String("id", id))
			done++
			continue
		}
		if err := method(ctx, id); err != nil {
			return done, fmt.Errorf("%s %s: %w", action, id, err)
		}
		slog.Debug(action.String(), slog.String("user", c.ScreenName()), slog.String("id", id))
		done++
	}

	slog.Info("auto follow finished",
		slog.String("user", c.ScreenName()),
		slog.String("action", action.String()),
		slog.Int("count", done),
		slog.Bool("dry_run", opts.DryRun))
	return done, nil
}
