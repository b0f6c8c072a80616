package bots

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrConfigNotFound is returned when no config file could be located or parsed.
	ErrConfigNotFound = errors.New("config not found")

	// ErrIncompleteCredentials is returned when any of the four OAuth values is missing.
	ErrIncompleteCredentials = errors.New("incomplete credentials")

	// ErrNoMatchFound is returned by lazy timeline lookups with no qualifying tweet.
	ErrNoMatchFound = errors.New("no matching tweet found")
)

// errorClass categorizes Twitter API error responses.
type errorClass int

const (
	errNone          errorClass = iota
	errRateLimited              // 88: rate limit exceeded
	errInvalidToken             // 89: invalid or expired token
	errAuth                     // 32: could not authenticate
	errSuspended                // 64: account suspended
	errLocked                   // 326: account locked
	errFollowLimit              // 161: unable to follow more people
	errNotAuthorized            // 179, 220: not authorized
	errDuplicate                // 139, 160: already favorited / follow already requested
	errNotFound                 // 34, 50, 144: user or status missing
)

func (c errorClass) String() string {
	switch c {
	case errRateLimited:
		return "rate_limited"
	case errInvalidToken:
		return "invalid_token"
	case errAuth:
		return "auth"
	case errSuspended:
		return "suspended"
	case errLocked:
		return "locked"
	case errFollowLimit:
		return "follow_limit"
	case errNotAuthorized:
		return "not_authorized"
	case errDuplicate:
		return "duplicate"
	case errNotFound:
		return "not_found"
	}
	return "none"
}

// apiError is a single entry of a v1.1 "errors" array.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// parseAPIErrors extracts the "errors" array from a response body.
func parseAPIErrors(body []byte) []apiError {
	var errResp struct {
		Errors []apiError `json:"errors"`
	}
	if json.Unmarshal(body, &errResp) != nil {
		return nil
	}
	return errResp.Errors
}

// classifyError inspects a response body for known Twitter error codes.
func classifyError(body []byte) errorClass {
	for _, e := range parseAPIErrors(body) {
		if c := classifyCode(e.Code); c != errNone {
			return c
		}
	}
	return errNone
}

func classifyCode(code int) errorClass {
	switch code {
	case 88:
		return errRateLimited
	case 89:
		return errInvalidToken
	case 32:
		return errAuth
	case 64:
		return errSuspended
	case 326:
		return errLocked
	case 161:
		return errFollowLimit
	case 179, 220:
		return errNotAuthorized
	case 139, 160:
		return errDuplicate
	case 34, 50, 144:
		return errNotFound
	}
	return errNone
}

// ServiceError is any failure reported by the social-network service,
// including transport failures (Status 0).
type ServiceError struct {
	Endpoint string
	Status   int
	Code     int
	Message  string
	// RateLimitReset is set when the service reported a rate limit.
	RateLimitReset time.Time

	class errorClass
	err   error
}

func (e *ServiceError) Error() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s: %v", e.Endpoint, e.err)
	case e.Code != 0:
		return fmt.Sprintf("%s HTTP %d: code %d: %s", e.Endpoint, e.Status, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s HTTP %d: %s", e.Endpoint, e.Status, e.Message)
	}
}

func (e *ServiceError) Unwrap() error { return e.err }

// RateLimited reports whether the service rejected the call for rate limiting.
func (e *ServiceError) RateLimited() bool {
	return e.Status == 429 || e.class == errRateLimited
}

// newServiceError builds a ServiceError from a non-2xx (or error-bearing) response.
func newServiceError(endpoint string, status int, body []byte, headers map[string]string) *ServiceError {
	se := &ServiceError{
		Endpoint: endpoint,
		Status:   status,
		class:    classifyError(body),
	}
	if errs := parseAPIErrors(body); len(errs) > 0 {
		se.Code = errs[0].Code
		se.Message = errs[0].Message
	} else {
		se.Message = truncateBytes(body, 200)
	}
	if se.RateLimited() {
		se.RateLimitReset = parseRateLimitReset(headers["x-rate-limit-reset"])
	}
	return se
}

// parseRateLimitReset parses the X-Rate-Limit-Reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
