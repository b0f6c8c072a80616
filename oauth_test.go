package bots

import (
	"net/url"
	"strings"
	"testing"
)

// Reference request from Twitter's "Creating a signature" documentation.
func TestOAuthSignature(t *testing.T) {
	params := url.Values{
		"status":                 {"Hello Ladies + Gentlemen, a signed OAuth request!"},
		"include_entities":       {"true"},
		"oauth_consumer_key":     {"xvz1evFS4wEEPTGEFPHBog"},
		"oauth_nonce":            {"kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg"},
		"oauth_signature_method": {"HMAC-SHA1"},
		"oauth_timestamp":        {"1318622958"},
		"oauth_token":            {"370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb"},
		"oauth_version":          {"1.0"},
	}
	sig := oauthSignature("post", "https://api.twitter.com/1.1/statuses/update.json", params,
		"kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw", "LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE")
	if sig != "hCtSmYh+iHYCEqBWrE7C7hYmtUk=" {
		t.Fatalf("unexpected signature %s", sig)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	creds := Credentials{
		ConsumerKey:    "xvz1evFS4wEEPTGEFPHBog",
		ConsumerSecret: "kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw",
		AccessKey:      "370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb",
		AccessSecret:   "LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE",
	}
	params := url.Values{
		"status":           {"Hello Ladies + Gentlemen, a signed OAuth request!"},
		"include_entities": {"true"},
	}
	h := authorizationHeader(creds, "POST", "https://api.twitter.com/1.1/statuses/update.json", params,
		"kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg", 1318622958)

	if !strings.HasPrefix(h, "OAuth oauth_consumer_key=") {
		t.Fatalf("unexpected header prefix: %s", h)
	}
	if !strings.Contains(h, `oauth_signature="hCtSmYh%2BiHYCEqBWrE7C7hYmtUk%3D"`) {
		t.Fatalf("signature missing from header: %s", h)
	}
	if strings.Contains(h, "status=") {
		t.Fatal("request params must not be copied into the header")
	}
	if len(params) != 2 {
		t.Fatal("caller params must not be mutated")
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"abc-._~", "abc-._~"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"!", "%21"},
		{"é", "%C3%A9"},
	}
	for _, tt := range tests {
		if got := percentEncode(tt.in); got != tt.want {
			t.Fatalf("percentEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeParams_SortsByKeyThenValue(t *testing.T) {
	got := encodeParams(url.Values{"a-b": {"1"}, "a": {"2", "1"}})
	if got != "a=1&a=2&a-b=1" {
		t.Fatalf("unexpected encoding %s", got)
	}
}

func TestGenerateNonce(t *testing.T) {
	n := generateNonce()
	if len(n) != 32 {
		t.Fatalf("expected 32 char hex, got %d chars", len(n))
	}
	if n == generateNonce() {
		t.Fatal("expected different nonces")
	}
}
