package bots

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Credential and structural keys. They are never copied into Config settings.
const (
	keyApps           = "apps"
	keyUsers          = "users"
	keyApp            = "app"
	keyConsumerKey    = "consumer_key"
	keyConsumerSecret = "consumer_secret"
	keyAccessKey      = "key"
	keyAccessSecret   = "secret"
)

var reservedKeys = []string{
	keyApps, keyUsers, keyConsumerKey, keyConsumerSecret, keyAccessKey, keyAccessSecret, keyApp,
}

func isReserved(key string) bool {
	return slices.Contains(reservedKeys, key)
}

// ResolveOptions selects the config source and the account to resolve.
type ResolveOptions struct {
	// Path is an explicit config file, tried before the default locations.
	Path string

	// ScreenName is the account whose user and app sections are used.
	ScreenName string

	// Overrides win over every key in the file, credentials included.
	// Nil values are ignored.
	Overrides map[string]any
}

// Config is the resolved configuration for one account.
type Config struct {
	ScreenName  string
	App         string
	Path        string
	Credentials Credentials

	settings map[string]any
}

// Settings returns a copy of the flattened, non-credential settings.
func (c *Config) Settings() map[string]any {
	return maps.Clone(c.settings)
}

// Get returns a single setting.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.settings[key]
	return v, ok
}

// String returns a setting as a string, or "" if it is absent.
func (c *Config) String(key string) string {
	v, ok := c.settings[key]
	if !ok {
		return ""
	}
	return stringValue(v)
}

// Resolve locates, parses and merges the config for opts.ScreenName.
func Resolve(opts ResolveOptions) (*Config, error) {
	path, err := FindConfigFile(opts.Path)
	if err != nil {
		return nil, err
	}
	return ResolveFile(path, opts.ScreenName, opts.Overrides)
}

// ResolveFile parses the config at path and resolves it for screenName.
func ResolveFile(path, screenName string, overrides map[string]any) (*Config, error) {
	raw, err := loadRaw(path, overrides)
	if err != nil {
		return nil, err
	}
	cfg, err := resolveRaw(raw, screenName, overrides)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	slog.Debug("config resolved",
		slog.String("path", path),
		slog.String("user", screenName),
		slog.String("app", cfg.App),
		slog.Int("settings", len(cfg.settings)))
	return cfg, nil
}

// loadRaw parses the file and merges the overrides on top of it.
func loadRaw(path string, overrides map[string]any) (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrConfigNotFound, path, err)
	}
	if ov := compactOverrides(overrides); len(ov) > 0 {
		if err := k.Load(confmap.Provider(ov, ""), nil); err != nil {
			return nil, fmt.Errorf("load overrides: %w", err)
		}
	}
	return k.Raw(), nil
}

// resolveRaw extracts the app/user scopes, flattens settings, and pulls
// credentials from a merged raw mapping.
func resolveRaw(raw map[string]any, screenName string, overrides map[string]any) (*Config, error) {
	userConf := asMap(asMap(raw[keyUsers])[screenName])
	app := stringValue(userConf[keyApp])
	appConf := asMap(asMap(raw[keyApps])[app])

	settings := make(map[string]any)
	for _, scope := range []map[string]any{raw, appConf, userConf} {
		for k, v := range scope {
			if !isReserved(k) {
				settings[k] = v
			}
		}
	}

	// Overrides were merged into the root scope on load; reapply them so they
	// win over the app and user scopes as well.
	ov := compactOverrides(overrides)
	for k, v := range ov {
		if !isReserved(k) {
			settings[k] = v
		}
	}

	creds := Credentials{
		ConsumerKey:    firstNonEmpty(ov[keyConsumerKey], appConf[keyConsumerKey]),
		ConsumerSecret: firstNonEmpty(ov[keyConsumerSecret], appConf[keyConsumerSecret]),
		AccessKey:      firstNonEmpty(ov[keyAccessKey], userConf[keyAccessKey]),
		AccessSecret:   firstNonEmpty(ov[keyAccessSecret], userConf[keyAccessSecret]),
	}
	if missing := creds.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w for %s: missing %s", ErrIncompleteCredentials, screenName, strings.Join(missing, ", "))
	}

	return &Config{
		ScreenName:  screenName,
		App:         app,
		Credentials: creds,
		settings:    settings,
	}, nil
}

func compactOverrides(overrides map[string]any) map[string]any {
	out := make(map[string]any, len(overrides))
	for k, v := range overrides {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	}
	return map[string]any{}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}

func firstNonEmpty(vals ...any) string {
	for _, v := range vals {
		if s := stringValue(v); s != "" {
			return s
		}
	}
	return ""
}
