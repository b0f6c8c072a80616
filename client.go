package bots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Client is an authenticated client bound to one account.
type Client struct {
	svc        Service
	screenName string
	cfg        *Config

	mu          sync.Mutex
	lastTweet   timelineFact
	lastReply   timelineFact
	lastRetweet timelineFact
}

// timelineFact is a value derived from the user timeline, computed at most once.
type timelineFact struct {
	done bool
	id   string
	err  error
}

// NewClient creates a client that talks to the REST API with the
// credentials in cfg.Config. No request is made during construction.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Config == nil {
		return nil, errors.New("client config: nil Config")
	}
	if creds := cfg.Config.Credentials; !creds.Complete() {
		return nil, fmt.Errorf("%w for %s: missing %s", ErrIncompleteCredentials, cfg.Config.ScreenName, strings.Join(creds.missing(), ", "))
	}
	cfg.defaults()

	profile := browserProfileFor(cfg.Config.ScreenName)
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = profile.UserAgent
	}

	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(restHeaderOrder),
		stealth.WithProfile(profile.TLSProfile),
	}
	if cfg.Proxy != "" {
		opts = append(opts, stealth.WithProxy(cfg.Proxy))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}

	svc := &restService{
		doer:      bc,
		creds:     cfg.Config.Credentials,
		base:      cfg.APIBase,
		userAgent: userAgent,
		proxy:     cfg.Proxy,
		jitter:    !cfg.DisableJitter,
		metrics:   cfg.MetricsHook,
		now:       time.Now,
		nonce:     generateNonce,
	}

	slog.Debug("client ready",
		slog.String("user", cfg.Config.ScreenName),
		slog.String("app", cfg.Config.App),
		slog.String("credentials", cfg.Config.Credentials.String()))
	return New(cfg.Config, svc), nil
}

// New wraps an existing Service for the account described by cfg.
func New(cfg *Config, svc Service) *Client {
	return &Client{
		svc:        svc,
		screenName: cfg.ScreenName,
		cfg:        cfg,
	}
}

// ScreenName returns the account this client operates on.
func (c *Client) ScreenName() string { return c.screenName }

// Config returns the resolved config the client was built from.
func (c *Client) Config() *Config { return c.cfg }

// FollowerIDs returns the IDs of accounts following this account.
func (c *Client) FollowerIDs(ctx context.Context) ([]string, error) {
	return c.svc.FollowerIDs(ctx)
}

// FriendIDs returns the IDs of accounts this account follows.
func (c *Client) FriendIDs(ctx context.Context) ([]string, error) {
	return c.svc.FriendIDs(ctx)
}

// OutgoingFriendshipIDs returns the IDs with a pending follow request from this account.
func (c *Client) OutgoingFriendshipIDs(ctx context.Context) ([]string, error) {
	return c.svc.OutgoingFriendshipIDs(ctx)
}

// CreateFriendship follows userID.
func (c *Client) CreateFriendship(ctx context.Context, userID string) error {
	return c.svc.CreateFriendship(ctx, userID)
}

// DestroyFriendship unfollows userID.
func (c *Client) DestroyFriendship(ctx context.Context, userID string) error {
	return c.svc.DestroyFriendship(ctx, userID)
}

// MentionsTimeline returns up to count recent mentions of this account.
func (c *Client) MentionsTimeline(ctx context.Context, count int) ([]*Tweet, error) {
	return c.svc.MentionsTimeline(ctx, count)
}

// Favorites returns up to count tweets this account recently favorited.
func (c *Client) Favorites(ctx context.Context, count int) ([]*Tweet, error) {
	return c.svc.Favorites(ctx, count)
}

// CreateFavorite favorites tweetID and returns the favorited tweet.
func (c *Client) CreateFavorite(ctx context.Context, tweetID string) (*Tweet, error) {
	return c.svc.CreateFavorite(ctx, tweetID)
}

// UserTimeline fetches the account's own recent tweets, newest first.
func (c *Client) UserTimeline(ctx context.Context) ([]*Tweet, error) {
	return c.svc.UserTimeline(ctx, c.screenName)
}

// LastTweetID returns the ID of the account's most recent tweet.
//
// The value is computed from the user timeline on the first call and cached
// for the lifetime of the client, including an ErrNoMatchFound outcome.
// A failed timeline fetch is not cached.
func (c *Client) LastTweetID(ctx context.Context) (string, error) {
	return c.timelineFact(ctx, &c.lastTweet, "tweet", func(*Tweet) bool { return true })
}

// LastReplyID returns the ID of the most recent tweet that is a reply.
// Cached like LastTweetID.
func (c *Client) LastReplyID(ctx context.Context) (string, error) {
	return c.timelineFact(ctx, &c.lastReply, "reply", (*Tweet).IsReply)
}

// LastRetweetID returns the ID of the most recent tweet marked as retweeted.
// Cached like LastTweetID.
func (c *Client) LastRetweetID(ctx context.Context) (string, error) {
	return c.timelineFact(ctx, &c.lastRetweet, "retweet", func(t *Tweet) bool { return t.Retweeted })
}

func (c *Client) timelineFact(ctx context.Context, f *timelineFact, kind string, match func(*Tweet) bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f.done {
		return f.id, f.err
	}

	tl, err := c.UserTimeline(ctx)
	if err != nil {
		return "", err
	}

	f.done = true
	for _, t := range tl {
		if match(t) {
			f.id = t.ID
			slog.Debug("timeline lookup cached", slog.String("user", c.screenName), slog.String("kind", kind), slog.String("id", f.id))
			return f.id, nil
		}
	}
	f.err = fmt.Errorf("%w: no %s in timeline of %s", ErrNoMatchFound, kind, c.screenName)
	return "", f.err
}
