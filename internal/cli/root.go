// Package cli builds the cobra commands behind the fave-mentions and
// auto-follow binaries.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	bots "github.com/anatolykoptev/go-twitter-bots"
)

// maxConcurrentAccounts bounds how many screen names run at once.
const maxConcurrentAccounts = 4

const envPrefix = "BOTS_"

// clientFactory builds the client for one resolved account.
type clientFactory func(cfg *bots.Config) (*bots.Client, error)

func newRESTClient(cfg *bots.Config) (*bots.Client, error) {
	return bots.NewClient(bots.ClientConfig{Config: cfg})
}

// commonFlags are shared by both commands.
type commonFlags struct {
	configPath     string
	key            string
	secret         string
	consumerKey    string
	consumerSecret string
	dryRun         bool
	verbosity      int
}

func (f *commonFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Config file (default: botrc, bots.yaml or bots.json in ., ~ or ~/bots)")
	fl.StringVar(&f.key, "key", "", "Access token key")
	fl.StringVar(&f.secret, "secret", "", "Access token secret")
	fl.StringVar(&f.consumerKey, "consumer-key", "", "Consumer key")
	fl.StringVar(&f.consumerSecret, "consumer-secret", "", "Consumer secret")
	fl.BoolVarP(&f.dryRun, "dry-run", "n", false, "Log planned actions without executing them")
	fl.CountVarP(&f.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
}

// overrides merges BOTS_* environment values with flags. Flags win.
func (f *commonFlags) overrides() (map[string]any, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	out := k.Raw()

	for key, val := range map[string]string{
		"key":             f.key,
		"secret":          f.secret,
		"consumer_key":    f.consumerKey,
		"consumer_secret": f.consumerSecret,
	} {
		if val != "" {
			out[key] = val
		}
	}
	return out, nil
}

// setupLogger installs a text slog handler on w. 0 = warn, 1 = info, 2+ = debug.
func setupLogger(w io.Writer, verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// accountFunc runs one command against one account's client.
type accountFunc func(ctx context.Context, c *bots.Client) error

// runAccounts resolves every screen name and runs fn on its own client.
// The first failure cancels the remaining accounts and is returned.
func runAccounts(ctx context.Context, flags *commonFlags, newClient clientFactory, names []string, fn accountFunc) error {
	overrides, err := flags.overrides()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAccounts)
	for _, name := range names {
		g.Go(func() error {
			cfg, err := bots.Resolve(bots.ResolveOptions{
				Path:       flags.configPath,
				ScreenName: name,
				Overrides:  overrides,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			c, err := newClient(cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("account ready", slog.String("screen_name", name), slog.String("config", cfg.Path))
			if err := fn(gctx, c); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// syncWriter serializes writes from concurrent accounts.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}
