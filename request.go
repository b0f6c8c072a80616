package bots

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// httpDoer is the subset of *stealth.BrowserClient used by restService.
type httpDoer interface {
	DoWithHeaderOrder(method, url string, headers map[string]string, body io.Reader, order []string) ([]byte, map[string]string, int, error)
}

// restService implements Service over Twitter REST v1.1 with OAuth 1.0a.
type restService struct {
	doer      httpDoer
	creds     Credentials
	base      string
	userAgent string
	proxy     string
	jitter    bool
	metrics   func(endpoint string, success, rateLimited bool)

	now   func() time.Time
	nonce func() string
}

// call signs and executes a single request. There is no retry: the first
// failure is returned as a *ServiceError.
func (s *restService) call(ctx context.Context, operation string, params url.Values) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.jitter {
		if err := stealth.DefaultJitter.Sleep(ctx); err != nil {
			return nil, err
		}
	}

	ep, err := endpointFor(operation)
	if err != nil {
		return nil, err
	}
	baseURL := ep.URL(s.base)
	authz := authorizationHeader(s.creds, ep.Method, baseURL, params, s.nonce(), s.now().Unix())

	reqURL := baseURL
	if len(params) > 0 {
		reqURL += "?" + encodeParams(params)
	}

	body, respHdrs, status, err := s.doer.DoWithHeaderOrder(ep.Method, reqURL, restHeaders(authz, s.userAgent), nil, restHeaderOrder)
	if err != nil {
		s.recordAPICall(operation, false, false)
		if s.proxy != "" && isProxyError(err) {
			slog.Warn("proxy error", slog.String("endpoint", operation), slog.String("proxy", stealth.MaskProxy(s.proxy)), slog.Any("error", err))
		}
		return nil, &ServiceError{Endpoint: operation, Message: err.Error(), err: err}
	}

	if status < 200 || status > 299 || classifyError(body) != errNone {
		se := newServiceError(operation, status, body, respHdrs)
		s.recordAPICall(operation, false, se.RateLimited())
		slog.Warn("request failed",
			slog.String("endpoint", operation),
			slog.Int("status", status),
			slog.Int("code", se.Code),
			slog.String("class", se.class.String()))
		return nil, se
	}

	s.recordAPICall(operation, true, false)
	return body, nil
}

// recordAPICall calls the metrics hook if configured.
func (s *restService) recordAPICall(endpoint string, success, rateLimited bool) {
	if s.metrics != nil {
		s.metrics(endpoint, success, rateLimited)
	}
}

// isProxyError returns true if the error looks like a proxy connectivity failure.
func isProxyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "proxy") ||
		strings.Contains(msg, "SOCKS") ||
		strings.Contains(msg, "tunnel") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host")
}
