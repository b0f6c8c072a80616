package bots

// ClientConfig holds all configuration for the authenticated client.
type ClientConfig struct {
	// Config is the resolved account config. Required.
	Config *Config

	// APIBase overrides the REST base URL.
	// Default: https://api.twitter.com/1.1
	APIBase string

	// Proxy is the proxy URL for all requests.
	// Default: the "proxy" setting of Config.
	Proxy string

	// UserAgent overrides the User-Agent header.
	// Default: the "user_agent" setting, then the browser profile's UA.
	UserAgent string

	// DisableJitter turns off the anti-fingerprint delay before each request.
	DisableJitter bool

	// MetricsHook is called on each API request for external metrics collection.
	// endpoint is the operation name, success and rateLimited indicate the outcome.
	MetricsHook func(endpoint string, success, rateLimited bool)
}

// defaults fills in zero-value config fields from the resolved settings.
func (cfg *ClientConfig) defaults() {
	if cfg.APIBase == "" {
		cfg.APIBase = cfg.Config.String("api_base")
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.Proxy == "" {
		cfg.Proxy = cfg.Config.String("proxy")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = cfg.Config.String("user_agent")
	}
}
